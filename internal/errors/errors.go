// Package errors defines the typed errors surfaced by the resolution core.
package errors

import (
	"fmt"
	"strings"
)

// MissingTokenError indicates a color token that is absent from the registry
// for every scheme. This is a configuration mistake and always propagates.
type MissingTokenError struct {
	Token       string
	Palette     string
	Suggestions []string
}

func (e *MissingTokenError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("color token %q is not defined in palette %q", e.Token, e.Palette)
	}

	return fmt.Sprintf("color token %q is not defined in palette %q (did you mean %s?)",
		e.Token, e.Palette, strings.Join(e.Suggestions, ", "))
}

// CoverageError indicates a token defined for one scheme but not the other.
type CoverageError struct {
	Token  string
	Scheme string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("color token %q has no value for the %s scheme", e.Token, e.Scheme)
}

// RegistryFileError wraps a failure to read or parse a palette file.
type RegistryFileError struct {
	Path string
	Err  error
}

func (e *RegistryFileError) Error() string {
	return fmt.Sprintf("palette file %s: %v", e.Path, e.Err)
}

func (e *RegistryFileError) Unwrap() error {
	return e.Err
}

// UnknownCapabilityError indicates an invoke of a capability name that was
// never registered. A missing platform variant is never an error: the
// fallback implementation runs instead.
type UnknownCapabilityError struct {
	Name string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("capability %q is not registered", e.Name)
}

// InvalidVariantError indicates a capability variant registered without the
// mandatory fallback implementation.
type InvalidVariantError struct {
	Name string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("capability %q registered without a fallback implementation", e.Name)
}
