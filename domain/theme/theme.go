// Package theme models the light/dark/system colour scheme preference.
package theme

import (
	"fmt"
	"strings"

	"synthml/domain/core"
)

// Theme is the visitor's colour scheme choice.
type Theme string

const (
	Light  Theme = "light"
	Dark   Theme = "dark"
	System Theme = "system"
)

// Default applies until a visitor picks something else.
const Default = Light

// All lists the choices in the order the picker shows them.
func All() []Theme {
	return []Theme{Light, Dark, System}
}

// Parse accepts the three literal values, ignoring case and whitespace.
func Parse(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark, System:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrInvalidTheme, s)
}

// Label is the picker caption.
func (t Theme) Label() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	case System:
		return "System"
	}
	panic(fmt.Sprintf("theme: unmapped theme %q", string(t)))
}

// Resolve reports whether the page should render dark. System defers to
// the client's reported colour scheme.
func Resolve(t Theme, systemPrefersDark bool) bool {
	switch t {
	case Dark:
		return true
	case System:
		return systemPrefersDark
	default:
		return false
	}
}

// PrefersDark reads a Sec-CH-Prefers-Color-Scheme header value.
func PrefersDark(hint string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), "dark")
}
