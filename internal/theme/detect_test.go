package theme

import "testing"

func TestParseScheme(t *testing.T) {
	tests := []struct {
		tag    string
		want   Scheme
		wantOK bool
	}{
		{"light", Light, true},
		{"dark", Dark, true},
		{"DARK", Dark, true},
		{" light ", Light, true},
		{"", Light, false},
		{"solarized", Light, false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseScheme(tt.tag)
			if ok != tt.wantOK {
				t.Fatalf("ParseScheme(%q) ok = %v, want %v", tt.tag, ok, tt.wantOK)
			}

			if ok && got != tt.want {
				t.Errorf("ParseScheme(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestDetectScheme_EnvOverride(t *testing.T) {
	t.Setenv(SchemeEnvVar, "dark")

	if got := DetectScheme(); got != Dark {
		t.Errorf("expected env override to force Dark, got %v", got)
	}

	t.Setenv(SchemeEnvVar, "light")

	if got := DetectScheme(); got != Light {
		t.Errorf("expected env override to force Light, got %v", got)
	}
}

func TestDetectScheme_UnrecognizedEnvFallsThrough(t *testing.T) {
	t.Setenv(SchemeEnvVar, "mauve")

	// An unrecognized tag is ignored; detection falls through to the
	// terminal probe, which defaults to Light off a real terminal.
	got := DetectScheme()
	if got != Light && got != Dark {
		t.Errorf("expected a valid scheme, got %v", got)
	}
}

func TestSchemeString(t *testing.T) {
	if Light.String() != "light" || Dark.String() != "dark" {
		t.Error("unexpected Scheme string values")
	}
}
