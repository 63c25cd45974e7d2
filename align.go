package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/textalign/align"
	"go.abhg.dev/textalign/internal/config"
	"go.abhg.dev/textalign/internal/must"
	"go.abhg.dev/textalign/internal/silog"
)

var (
	// _stdin is the source of input when no file is given.
	_stdin io.Reader = os.Stdin

	_isTerminal = isatty.IsTerminal // for testing
)

type inputArgs struct {
	File string `arg:"" optional:"" default:"-" help:"File to align; reads standard input if absent or '-'"`
}

// read returns the contents of the input file or standard input.
func (args *inputArgs) read(log *silog.Logger) (string, error) {
	if args.File == "" || args.File == "-" {
		if f, ok := _stdin.(interface{ Fd() uintptr }); ok && _isTerminal(f.Fd()) {
			log.Warn("Reading from terminal. Press Ctrl-D to finish.")
		}

		b, err := io.ReadAll(_stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(args.File)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// alignRequest is a single invocation of an aligner from the command line.
type alignRequest struct {
	Aligner *align.Aligner
	Input   *inputArgs
	Options *globalOptions
}

// runAlign aligns the requested input and writes the aligned text
// to the context's standard output.
func runAlign(kctx *kong.Context, log *silog.Logger, req *alignRequest) (*align.Result, error) {
	newline, err := config.ParseNewline(req.Options.Newline)
	if err != nil {
		return nil, err
	}
	req.Aligner.Newline = newline

	input, err := req.Input.read(log)
	if err != nil {
		return nil, err
	}

	if !req.Options.Header {
		// Every line of the input is content,
		// so give the aligner an empty header to discard.
		if newline == "" {
			newline = align.DefaultNewline
		}
		input = newline + input
	}

	res, err := req.Aligner.Align(input)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", req.Aligner.Mode, err)
	}

	log.Debug("Aligned text",
		"mode", res.Mode,
		"lines", len(res.Lines()),
		"header", req.Options.Header)

	if _, err := io.WriteString(kctx.Stdout, res.Value); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return res, nil
}

type alignCmd struct {
	inputArgs

	Mode align.Mode `short:"M" default:"${defaultMode}" predictor:"modes" help:"Alignment mode: left, leftmost, or mark"`
	Mark string     `short:"m" default:"${defaultMark}" predictor:"marks" help:"Marker character for mark alignment"`
}

func (*alignCmd) Help() string {
	return helpText(`
		Aligns the input with the given mode.
		The default mode and marker are read from the configuration file:

			mode: mark
			mark: ">"

		Equivalent to running the left, leftmost, or mark command.
	`)
}

func (cmd *alignCmd) Validate() error {
	if cmd.Mode != align.ModeMark {
		return nil
	}
	return validateMark(cmd.Mark)
}

func (cmd *alignCmd) Run(kctx *kong.Context, log *silog.Logger, opts *globalOptions) error {
	aligner := align.Aligner{Mode: cmd.Mode}
	if cmd.Mode == align.ModeMark {
		mark := []rune(cmd.Mark)
		must.Bef(len(mark) == 1, "mark should have been validated: %q", cmd.Mark)
		aligner.Mark = mark[0]
	}

	_, err := runAlign(kctx, log, &alignRequest{
		Aligner: &aligner,
		Input:   &cmd.inputArgs,
		Options: opts,
	})
	return err
}

type leftCmd struct {
	inputArgs
}

func (*leftCmd) Help() string {
	return helpText(`
		Strips all leading whitespace from every line of the input.
		Lines are aligned independently of each other.
	`)
}

func (cmd *leftCmd) Run(kctx *kong.Context, log *silog.Logger, opts *globalOptions) error {
	_, err := runAlign(kctx, log, &alignRequest{
		Aligner: &align.Aligner{Mode: align.ModeLeft},
		Input:   &cmd.inputArgs,
		Options: opts,
	})
	return err
}

type leftmostCmd struct {
	inputArgs
}

func (*leftmostCmd) Help() string {
	return helpText(`
		Removes the smallest indentation shared by all non-blank lines.
		The least indented line becomes flush left,
		and all other lines keep their indentation relative to it.
	`)
}

func (cmd *leftmostCmd) Run(kctx *kong.Context, log *silog.Logger, opts *globalOptions) error {
	_, err := runAlign(kctx, log, &alignRequest{
		Aligner: &align.Aligner{Mode: align.ModeLeftmost},
		Input:   &cmd.inputArgs,
		Options: opts,
	})
	return err
}

type markCmd struct {
	inputArgs

	Mark     string `short:"m" default:"${defaultMark}" predictor:"marks" help:"Marker character to align to"`
	ShowMark bool   `help:"Report the marker character after aligning"`
}

func (*markCmd) Help() string {
	return helpText(`
		Aligns to a marker character on the first line of the input.
		The marker and everything to its left are removed
		from the first line, and the same number of characters
		is removed from every other line.
		Lines shorter than that become empty.

		For example, with the default marker:

			    |Hello
			     World
			  !

		Becomes:

			Hello
			World
	`)
}

func (cmd *markCmd) Validate() error {
	return validateMark(cmd.Mark)
}

func validateMark(mark string) error {
	if n := len([]rune(mark)); n != 1 {
		return fmt.Errorf("--mark must be a single character, got %q", mark)
	}
	return nil
}

func (cmd *markCmd) Run(kctx *kong.Context, log *silog.Logger, opts *globalOptions) error {
	mark := []rune(cmd.Mark)
	must.Bef(len(mark) == 1, "mark should have been validated: %q", cmd.Mark)

	res, err := runAlign(kctx, log, &alignRequest{
		Aligner: &align.Aligner{
			Mode: align.ModeMark,
			Mark: mark[0],
		},
		Input:   &cmd.inputArgs,
		Options: opts,
	})
	if err != nil {
		return err
	}

	if used, ok := res.MarkCharacter(); ok && cmd.ShowMark {
		log.Infof("Mark character was: %c", used)
	}
	return nil
}
