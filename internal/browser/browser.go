// Package browser implements the open-link capability. Opening a link is a
// side effect delegated to the host environment: the request is considered
// successful once the host accepts it, not once navigation completes.
package browser

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"

	ghbrowser "github.com/cli/go-gh/v2/pkg/browser"

	"github.com/atotto/clipboard"
	"github.com/kyleking/termkit/internal/capability"
	"github.com/kyleking/termkit/internal/platform"
)

// execCommand builds the command used to hand a URI to the OS opener.
// Overridden in tests to avoid actually opening browsers.
var execCommand = func(name string, args ...string) cmdRunner {
	return exec.Command(name, args...)
}

// cmdRunner is the slice of exec.Cmd this package needs: accept-and-go.
type cmdRunner interface {
	Start() error
}

// browse hands a URI to the user's configured launcher ($BROWSER or the gh
// config), falling back to the OS default. Overridden in tests.
var browse = func(url string) error {
	return ghbrowser.New("", io.Discard, io.Discard).Browse(url)
}

// writeClipboard copies a URI for hosts that cannot spawn a browser.
// Overridden in tests.
var writeClipboard = clipboard.WriteAll

// Open hands the URI directly to the OS opener. The call returns as soon as
// the host accepts the request.
func Open(url string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name = "open"
		args = []string{url}
	case "windows":
		name = "cmd"
		args = []string{"/c", "start", url}
	default:
		name = "xdg-open"
		args = []string{url}
	}

	return execCommand(name, args...).Start()
}

func linkArg(args any) (string, error) {
	url, ok := args.(string)
	if !ok {
		return "", fmt.Errorf("open-link expects a string URI, got %T", args)
	}

	return url, nil
}

func openNative(args any) (any, error) {
	url, err := linkArg(args)
	if err != nil {
		return nil, err
	}

	return nil, Open(url)
}

func openCopy(args any) (any, error) {
	url, err := linkArg(args)
	if err != nil {
		return nil, err
	}

	// A web-embedded terminal has no local browser to hand off to; copying
	// the URI is the closest accepted-by-host equivalent.
	return nil, writeClipboard(url)
}

func openLauncher(args any) (any, error) {
	url, err := linkArg(args)
	if err != nil {
		return nil, err
	}

	return nil, browse(url)
}

// Variant returns the open-link dispatch table: native OS hand-off for the
// mobile identities, clipboard copy for web, launcher-respecting open for
// everything else.
func Variant() capability.Variant {
	return capability.Variant{
		PerPlatform: map[platform.Identity]capability.HandlerFunc{
			platform.IOS:     openNative,
			platform.Android: openNative,
			platform.Web:     openCopy,
		},
		Fallback: openLauncher,
	}
}
