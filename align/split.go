package align

import (
	"runtime"
	"strings"
)

// DefaultNewline is the line terminator used when none is specified.
// It follows the host platform's convention.
var DefaultNewline = hostNewline(runtime.GOOS)

func hostNewline(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Split splits input into lines separated by newline.
// If newline is empty, [DefaultNewline] is used.
//
// The last segment is dropped if it contains only whitespace.
// Other blank segments, including the header segment
// before the first line break, are retained.
//
// Split returns an [*InvalidInputError] if input is empty
// or contains only whitespace.
func Split(input, newline string) ([]string, error) {
	if isBlank(input) {
		return nil, &InvalidInputError{Reason: "text must not be empty or whitespace"}
	}
	if newline == "" {
		newline = DefaultNewline
	}

	lines := strings.Split(input, newline)
	if last := len(lines) - 1; isBlank(lines[last]) {
		lines = lines[:last]
	}
	return lines, nil
}

// lineSet returns the lines of input that are subject to alignment:
// everything but the header line and a whitespace-only footer line.
func lineSet(input, newline string) ([]string, error) {
	lines, err := Split(input, newline)
	if err != nil {
		return nil, err
	}

	// Input is not blank, so at least one segment survives.
	return lines[1:], nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
