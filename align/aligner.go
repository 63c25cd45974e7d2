package align

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Aligner aligns text according to a [Mode].
//
// An Aligner holds only configuration.
// It may be used concurrently and reused across calls.
type Aligner struct {
	// Mode is the alignment policy.
	Mode Mode

	// Mark is the marker character for [ModeMark].
	// It is ignored by the other modes.
	Mark rune

	// Newline is the line terminator used to split the input
	// and to terminate each line of the output.
	// Defaults to [DefaultNewline].
	Newline string // optional
}

// Align aligns input and returns the result.
//
// The first line of input is a header and is discarded,
// as is a trailing whitespace-only line.
// Errors are [*InvalidInputError] or [*MarkerNotFoundError].
func (a *Aligner) Align(input string) (*Result, error) {
	newline := a.Newline
	if newline == "" {
		newline = DefaultNewline
	}

	lines, err := lineSet(input, newline)
	if err != nil {
		return nil, err
	}

	res := Result{
		Original: input,
		Mode:     a.Mode,
	}
	switch a.Mode {
	case ModeLeft:
		lines = alignLeft(lines)

	case ModeLeftmost:
		lines = alignLeftmost(lines)

	case ModeMark:
		lines, err = alignMark(a.Mark, lines)
		if err != nil {
			return nil, err
		}
		res.Mark = a.Mark

	default:
		return nil, fmt.Errorf("unknown mode: %v", a.Mode)
	}

	res.Value = joinLines(lines, newline)
	res.newline = newline
	return &res, nil
}

func alignLeft(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}
	return out
}

func alignLeftmost(lines []string) []string {
	indent := -1
	for _, line := range lines {
		// A blank line says nothing about the block's indentation.
		if isBlank(line) {
			continue
		}

		if n := leadingSpace(line); indent < 0 || n < indent {
			indent = n
		}
	}
	indent = max(indent, 0)

	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			continue
		}
		out[i] = dropRunes(line, indent)
	}
	return out
}

func alignMark(mark rune, lines []string) ([]string, error) {
	if len(lines) == 0 {
		return nil, &InvalidInputError{
			Reason: "mark alignment requires an indicator line after the header",
		}
	}

	indicator := lines[0]
	idx := strings.IndexRune(indicator, mark)
	if idx < 0 {
		return nil, &MarkerNotFoundError{Mark: mark, Line: indicator}
	}
	indent := utf8.RuneCountInString(indicator[:idx]) + 1

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = dropRunes(line, indent)
	}
	return out, nil
}

// leadingSpace reports the number of whitespace runes
// at the start of s.
func leadingSpace(s string) int {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	return utf8.RuneCountInString(s[:len(s)-len(trimmed)])
}

// dropRunes removes the first n runes of s.
// If s has fewer than n runes, the result is empty.
func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}

func joinLines(lines []string, newline string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(newline)
	}
	return sb.String()
}
