// Package align normalizes the indentation of multi-line text blocks,
// typically string literals embedded in source code.
//
// Input is expected to start with a line break:
// the text before the first line break is the header line
// and is never part of the output.
// A trailing whitespace-only line, usually the indentation
// before a closing delimiter, is dropped as well.
//
//	const usage = `
//		Usage:
//		  textalign mode [FILE]
//	`
//
// Three alignment modes are supported.
//
//   - [ModeLeft] strips all leading whitespace from every line.
//     Use [ToLeft] or [Left].
//   - [ModeLeftmost] removes the smallest indentation
//     shared by all non-blank lines,
//     preserving relative indentation.
//     Use [ToLeftmost] or [Leftmost].
//   - [ModeMark] removes everything up to and including
//     a marker character on the first content line,
//     and the same number of characters from every other line.
//     Use [ToMark] or [Mark].
//
// Columns are counted in runes.
// Tabs are not expanded.
//
// Every line of the aligned text is followed by a line terminator,
// including the last one.
package align
