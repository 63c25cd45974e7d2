package main

import (
	"strings"

	"go.abhg.dev/textalign/align"
	"go.abhg.dev/textalign/internal/must"
)

// Help texts are Go string literals, which always use "\n".
var _helpAligner = align.Aligner{
	Mode:    align.ModeLeftmost,
	Newline: "\n",
}

// helpText dedents a help text literal.
// The result has no trailing newline.
func helpText(s string) string {
	res, err := _helpAligner.Align(s)
	must.NotFailf(err, "align help text")
	return strings.TrimSuffix(res.Value, "\n")
}
