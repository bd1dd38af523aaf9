// pattern: Functional Core

package geometry

import (
	"strconv"
	"strings"
)

// DefaultSpacing is the step table used when a host does not supply its own.
// Keys 1..8 map to pixel spacing; key 3 (9px) is the default gap.
var DefaultSpacing = Spacing{
	Steps:      []float64{3, 6, 9, 12, 15, 18, 24, 32},
	DefaultKey: 3,
}

// Spacing is an ordered table of allowed spacing steps. Key k maps to
// Steps[k-1].
type Spacing struct {
	Steps      []float64
	DefaultKey int
}

// Step returns the value for key, or the default step when key is out of range.
func (s Spacing) Step(key int) float64 {
	if key < 1 || key > len(s.Steps) {
		return s.defaultStep()
	}
	return s.Steps[key-1]
}

// Resolve parses a declared gap attribute. Empty, unparsable and
// out-of-range values resolve to the default step.
func (s Spacing) Resolve(attr string) float64 {
	key, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil {
		return s.defaultStep()
	}
	return s.Step(key)
}

// MinMargin is the step one below the default, used as the clamp margin.
// A table whose default is its first step has no margin.
func (s Spacing) MinMargin() float64 {
	k := s.defaultKey() - 1
	if k < 1 || k > len(s.Steps) {
		return 0
	}
	return s.Steps[k-1]
}

// Valid reports whether the table has steps, a default key inside it, and
// non-negative, non-decreasing values.
func (s Spacing) Valid() bool {
	if len(s.Steps) == 0 || s.DefaultKey < 1 || s.DefaultKey > len(s.Steps) {
		return false
	}
	for i, v := range s.Steps {
		if v < 0 || (i > 0 && v < s.Steps[i-1]) {
			return false
		}
	}
	return true
}

func (s Spacing) defaultKey() int {
	if s.DefaultKey < 1 || s.DefaultKey > len(s.Steps) {
		return DefaultSpacing.DefaultKey
	}
	return s.DefaultKey
}

func (s Spacing) defaultStep() float64 {
	k := s.defaultKey()
	if k > len(s.Steps) {
		return DefaultSpacing.Steps[DefaultSpacing.DefaultKey-1]
	}
	return s.Steps[k-1]
}
