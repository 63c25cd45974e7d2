package align

import "go.abhg.dev/textalign/internal/must"

// ToLeft strips all leading whitespace from every line of input.
// See [ModeLeft].
func ToLeft(input string) (*Result, error) {
	return (&Aligner{Mode: ModeLeft}).Align(input)
}

// ToLeftmost dedents input by the smallest indentation
// of its non-blank lines.
// See [ModeLeftmost].
func ToLeftmost(input string) (*Result, error) {
	return (&Aligner{Mode: ModeLeftmost}).Align(input)
}

// ToMark dedents input to just past the first occurrence of mark
// on the first content line.
// See [ModeMark].
func ToMark(mark rune, input string) (*Result, error) {
	return (&Aligner{Mode: ModeMark, Mark: mark}).Align(input)
}

// Left is like [ToLeft] but returns only the aligned text.
// It panics if the input is invalid.
func Left(s string) string {
	res, err := ToLeft(s)
	must.NotFailf(err, "align left")
	return res.Value
}

// Leftmost is like [ToLeftmost] but returns only the aligned text.
// It panics if the input is invalid.
//
//	usage := align.Leftmost(`
//		Usage:
//		  textalign leftmost [FILE]
//	`)
func Leftmost(s string) string {
	res, err := ToLeftmost(s)
	must.NotFailf(err, "align leftmost")
	return res.Value
}

// Mark is like [ToMark] but returns only the aligned text.
// It panics if the input is invalid or the marker is missing.
func Mark(s string, mark rune) string {
	res, err := ToMark(mark, s)
	must.NotFailf(err, "align to mark %q", mark)
	return res.Value
}
