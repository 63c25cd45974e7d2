// textalign normalizes the indentation of multi-line text blocks.
package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"go.abhg.dev/komplete"
	"go.abhg.dev/textalign/align"
	"go.abhg.dev/textalign/internal/config"
	"go.abhg.dev/textalign/internal/must"
	"go.abhg.dev/textalign/internal/silog"
)

func main() {
	logger := silog.New(os.Stderr, &silog.Options{
		Level: silog.LevelInfo,
	})

	configPath := os.Getenv("TEXTALIGN_CONFIG")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatalf("textalign: load config: %v", err)
	}

	var cmd mainCmd
	parser, err := newParser(&cmd, logger, cfg)
	must.NotFailf(err, "build command line parser")

	komplete.Run(parser, _completionPredictors...)

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		logger.Fatalf("textalign: %v", err)
	}

	if err := kctx.Run(); err != nil {
		logger.Fatalf("textalign: %v", err)
	}
}

// _completionPredictors are the named predictors
// referenced by predictor tags in the command grammar.
var _completionPredictors = []komplete.Option{
	komplete.WithPredictor("modes", komplete.PredictFunc(predictModes)),
	komplete.WithPredictor("marks", komplete.PredictFunc(predictMarks)),
}

// newParser builds the command line parser for cmd
// with defaults taken from cfg.
func newParser(cmd *mainCmd, logger *silog.Logger, cfg *config.Config, opts ...kong.Option) (*kong.Kong, error) {
	opts = append([]kong.Option{
		kong.Name("textalign"),
		kong.Description("textalign normalizes the indentation of multi-line text blocks."),
		kong.Bind(logger, &cmd.globalOptions),
		kong.Vars{
			"defaultMode":    cfg.Mode.String(),
			"defaultMark":    cfg.Mark,
			"defaultNewline": cfg.Newline,
			"defaultHeader":  strconv.FormatBool(*cfg.Header),
		},
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, opts...)
	return kong.New(cmd, opts...)
}

type globalOptions struct {
	Newline string `enum:"lf,crlf,native" default:"${defaultNewline}" env:"TEXTALIGN_NEWLINE" help:"Line terminator of the input and output (${enum})"`
	Header  bool   `negatable:"" default:"${defaultHeader}" help:"Discard the first line of input as a header"`
}

type mainCmd struct {
	globalOptions

	// Flags with side effects whose values are never accesssed directly.
	Verbose bool        `short:"v" help:"Enable verbose output" env:"TEXTALIGN_VERBOSE"`
	Version versionFlag `help:"Print version information and quit"`

	Align    alignCmd    `cmd:"" aliases:"a" group:"Align" help:"Align using the configured mode"`
	Left     leftCmd     `cmd:"" aliases:"l" group:"Align" help:"Strip all leading whitespace"`
	Leftmost leftmostCmd `cmd:"" aliases:"lm" group:"Align" help:"Dedent to the least indented line"`
	Mark     markCmd     `cmd:"" aliases:"m" group:"Align" help:"Dedent to a marker character on the first line"`

	Shell struct {
		Completion shellCompletionCmd `cmd:"" help:"Generate shell completion script"`
	} `cmd:"" group:"Shell"`
}

func (cmd *mainCmd) AfterApply(logger *silog.Logger) error {
	if cmd.Verbose {
		logger.SetLevel(silog.LevelDebug)
	}
	return nil
}

func predictModes(komplete.Args) []string {
	modes := align.Modes()
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = m.String()
	}
	return names
}

// predictMarks suggests commonly used marker characters.
func predictMarks(komplete.Args) []string {
	return []string{"|", ">", "#", ":"}
}
