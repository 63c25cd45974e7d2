package align

import "strings"

// Result is the outcome of aligning a block of text.
// It is not modified after it is returned.
type Result struct {
	// Value is the aligned text.
	// Every line, including the last, ends with a line terminator.
	Value string

	// Original is the input text, unmodified.
	Original string

	// Mode is the mode that produced this result.
	Mode Mode

	// Mark is the marker character used to align the text.
	// It is set only for ModeMark.
	Mark rune

	newline string
}

// String returns the aligned text.
func (r *Result) String() string {
	return r.Value
}

// MarkCharacter reports the marker character used for alignment.
// ok is false if the result was not produced in [ModeMark].
func (r *Result) MarkCharacter() (mark rune, ok bool) {
	return r.Mark, r.Mode == ModeMark
}

// Lines returns the aligned lines without their terminators.
func (r *Result) Lines() []string {
	if r.Value == "" {
		return nil
	}
	newline := r.newline
	if newline == "" {
		newline = DefaultNewline
	}
	return strings.Split(strings.TrimSuffix(r.Value, newline), newline)
}
