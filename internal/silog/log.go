// Package silog is the command line logger for textalign.
// It wraps a [silog.Handler] with printf-style methods
// and a fatal level that stops the program.
package silog

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"go.abhg.dev/log/silog"
	"go.abhg.dev/textalign/internal/must"
)

// Options defines options for the logger.
type Options struct {
	// Level is the minimum log level to log.
	// The default is LevelInfo.
	Level Level

	// OnFatal is called after a fatal message is logged.
	// It must stop control flow.
	//
	// If unset, the program exits with a non-zero status code.
	OnFatal func() // optional
}

// Logger provides structured and printf-style logging.
type Logger struct {
	sl      *slog.Logger   // required
	lvl     *slog.LevelVar // required
	onFatal func()         // required
}

// Nop returns a logger that discards all messages.
func Nop() *Logger {
	return New(io.Discard, nil)
}

// New creates a new logger that writes to the given writer.
func New(w io.Writer, opts *Options) *Logger {
	opts = cmp.Or(opts, &Options{Level: LevelInfo})
	must.Bef(opts.Level >= LevelDebug && opts.Level <= LevelError,
		"level must be between debug and error, got %v", opts.Level)

	var lvl slog.LevelVar
	lvl.Set(opts.Level.Level())

	handler := silog.NewHandler(w, &silog.HandlerOptions{
		Level:       &lvl,
		Style:       newStyle(w),
		ReplaceAttr: dropTime,
	})

	onFatal := opts.OnFatal
	if onFatal == nil {
		onFatal = exitOnFatal
	}

	return &Logger{
		sl:      slog.New(handler),
		lvl:     &lvl,
		onFatal: onFatal,
	}
}

// newStyle picks a colored style for terminals
// and a plain one for everything else.
func newStyle(w io.Writer) *silog.Style {
	var isTTY bool
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		isTTY = isatty.IsTerminal(f.Fd())
	}

	renderer := lipgloss.NewRenderer(w)
	if !isTTY {
		style := silog.PlainStyle(renderer)
		style.LevelLabels[LevelFatal.Level()] = renderer.NewStyle().SetString("FTL")
		return style
	}

	style := silog.DefaultStyle(renderer)
	style.LevelLabels[LevelFatal.Level()] = renderer.NewStyle().
		SetString("FTL").
		Foreground(lipgloss.Color("9")).
		Bold(true)
	return style
}

// dropTime removes timestamps from log messages.
func dropTime(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) == 0 && attr.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return attr
}

// Level returns the current log level of the logger.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelFatal + 1
	}
	return Level(l.lvl.Level())
}

// SetLevel changes the log level of the logger.
func (l *Logger) SetLevel(lvl Level) {
	if l == nil {
		return
	}
	l.lvl.Set(lvl.Level())
}

// Log logs a message at the given level with the given key-value pairs.
func (l *Logger) Log(lvl Level, msg string, kvs ...any) {
	if l == nil {
		if lvl >= LevelFatal {
			_osExit(1)
		}
		return
	}

	l.sl.Log(context.Background(), lvl.Level(), msg, kvs...)
	if lvl >= LevelFatal {
		l.onFatal()
		panic("unreachable: onFatal should stop control flow")
	}
}

// Logf logs a message at the given level with the given format and arguments.
func (l *Logger) Logf(lvl Level, format string, args ...any) {
	l.Log(lvl, fmt.Sprintf(format, args...))
}

// Debug posts a structured log message with the level [LevelDebug].
func (l *Logger) Debug(msg string, kvs ...any) { l.Log(LevelDebug, msg, kvs...) }

// Info posts a structured log message with the level [LevelInfo].
func (l *Logger) Info(msg string, kvs ...any) { l.Log(LevelInfo, msg, kvs...) }

// Warn posts a structured log message with the level [LevelWarn].
func (l *Logger) Warn(msg string, kvs ...any) { l.Log(LevelWarn, msg, kvs...) }

// Error posts a structured log message with the level [LevelError].
func (l *Logger) Error(msg string, kvs ...any) { l.Log(LevelError, msg, kvs...) }

// Fatal posts a structured log message with the level [LevelFatal]
// and stops the program.
func (l *Logger) Fatal(msg string, kvs ...any) { l.Log(LevelFatal, msg, kvs...) }

// Debugf posts a printf-style log message with the level [LevelDebug].
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof posts a printf-style log message with the level [LevelInfo].
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf posts a printf-style log message with the level [LevelWarn].
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarn, format, args...) }

// Errorf posts a printf-style log message with the level [LevelError].
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Fatalf posts a printf-style log message with the level [LevelFatal]
// and stops the program.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

var _osExit = os.Exit // for testing

func exitOnFatal() { _osExit(1) }
