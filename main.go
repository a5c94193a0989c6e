package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyleking/termkit/internal/app"
	"github.com/kyleking/termkit/internal/browser"
	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/config"
	"github.com/kyleking/termkit/internal/haptics"
	"github.com/kyleking/termkit/internal/icons"
	"github.com/kyleking/termkit/internal/logging"
	"github.com/kyleking/termkit/internal/platform"
	"github.com/kyleking/termkit/internal/theme"
	"github.com/kyleking/termkit/internal/watcher"
)

var version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
		platformTag string
		schemeTag   string
	)

	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&platformTag, "platform", "", "Override the host platform tag (ios, android, web)")
	flag.StringVar(&schemeTag, "scheme", "", "Pin the appearance scheme (light, dark)")
	flag.Parse()

	if showVersion {
		fmt.Printf("termkit %s\n", version)
		os.Exit(0)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		FilePath:   cfg.Log.File,
		Level:      logging.ParseLevel(cfg.Log.Level),
		JSON:       cfg.Log.Format == "json",
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	registry, err := loadRegistry(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading theme: %v\n", err)
		os.Exit(1)
	}

	identity := resolveIdentity(cfg, platformTag)
	detector := theme.NewDetector(resolveScheme(cfg, schemeTag))
	resolver := theme.NewResolver(detector, registry)

	caps := capability.NewRegistry()
	register(caps, capability.RenderIcon, icons.Variant())
	register(caps, capability.TriggerHaptic, haptics.Variant())
	register(caps, capability.OpenLink, browser.Variant())

	var reloads <-chan string

	if cfg.ThemeFile != "" {
		w, err := watcher.New(cfg.ThemeFile)
		if err != nil {
			logging.Warn("theme watch unavailable", "error", err)
		} else {
			defer w.Stop()
			reloads = w.Reloads()
		}
	}

	model, err := app.New(detector, resolver, caps, identity, reloads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.Info("starting termkit",
		"version", version,
		"platform", string(identity),
		"scheme", detector.Scheme().String(),
		"palette", registry.Name())

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return config.Load(cwd)
}

func loadRegistry(cfg *config.Config) (*theme.Registry, error) {
	if cfg.ThemeFile != "" {
		return theme.LoadRegistry(cfg.ThemeFile)
	}

	registry, ok := theme.Builtin(cfg.Palette)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", cfg.Palette)
	}

	return registry, nil
}

func resolveIdentity(cfg *config.Config, flagTag string) platform.Identity {
	if flagTag != "" {
		return platform.Parse(flagTag)
	}

	if cfg.Platform != "" {
		return platform.Parse(cfg.Platform)
	}

	return platform.Current()
}

func resolveScheme(cfg *config.Config, flagTag string) theme.Scheme {
	for _, tag := range []string{flagTag, cfg.Scheme} {
		if tag == "" {
			continue
		}

		if s, ok := theme.ParseScheme(tag); ok {
			return s
		}
	}

	return theme.DetectScheme()
}

func register(caps *capability.Registry, name string, v capability.Variant) {
	// Built-in variants always carry a fallback; a failure here is a
	// programming error worth dying on before the UI starts.
	if err := caps.Register(name, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
