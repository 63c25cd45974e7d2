package align

import (
	"fmt"
	"strings"
)

// Mode selects an alignment policy.
type Mode int

const (
	// ModeLeft strips all leading whitespace from each line.
	ModeLeft Mode = iota

	// ModeLeftmost removes the smallest indentation
	// across all non-blank lines.
	ModeLeftmost

	// ModeMark removes everything up to and including
	// the first marker character on the indicator line,
	// and the same number of characters from all other lines.
	ModeMark
)

var _modeNames = map[Mode]string{
	ModeLeft:     "left",
	ModeLeftmost: "leftmost",
	ModeMark:     "mark",
}

// Modes returns all supported modes in declaration order.
func Modes() []Mode {
	return []Mode{ModeLeft, ModeLeftmost, ModeMark}
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if name, ok := _modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if _, ok := _modeNames[m]; !ok {
		return nil, fmt.Errorf("unknown mode: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Names are matched case-insensitively.
func (m *Mode) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for mode, modeName := range _modeNames {
		if modeName == name {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q: expected left, leftmost, or mark", string(b))
}
