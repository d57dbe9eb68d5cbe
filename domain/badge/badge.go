// Package badge maps the dashboard's closed status and category enums to a
// display label and a style class. Every mapping is an exhaustive switch:
// an unmapped value reaching Badge is a programming error and panics.
// Values read from outside the binary go through the Parse functions first.
package badge

import (
	"fmt"
	"strings"

	"synthml/domain/core"
)

// Badge is a rendered status pill.
type Badge struct {
	Label string `json:"label"`
	Class string `json:"class"`
}

// Tones shared by most enums.
const (
	classGreen   = "bg-green-100 text-green-800"
	classRed     = "bg-red-100 text-red-800"
	classYellow  = "bg-yellow-100 text-yellow-800"
	classBlue    = "bg-blue-100 text-blue-800"
	classGray    = "bg-gray-100 text-gray-800"
	classPurple  = "bg-purple-100 text-purple-800"
	classIndigo  = "bg-indigo-100 text-indigo-800"
	classEmerald = "bg-emerald-100 text-emerald-800"
	classAmber   = "bg-amber-100 text-amber-800"
)

// Capitalize upper-cases the first letter, as badges label raw enum values.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func unmapped(kind, value string) string {
	return fmt.Sprintf("badge: unmapped %s %q", kind, value)
}

// parse matches raw against values case-insensitively.
func parse[T ~string](kind, raw string, values []T) (T, error) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for _, v := range values {
		if string(v) == want {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", core.ErrInvalidStatus, kind, raw)
}
