package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// cliLogger implements figmatokens.Logger with colored terminal output.
type cliLogger struct {
	out io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.out, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.out, "✗ "+format+"\n", args...)
}

// jsonLogger implements figmatokens.Logger with one JSON object per line, for CI logs.
type jsonLogger struct {
	zlog zerolog.Logger
}

func newJSONLogger(w io.Writer) *jsonLogger {
	return &jsonLogger{zlog: zerolog.New(w).With().Timestamp().Str("app", "figma-tokens").Logger()}
}

func (l *jsonLogger) Infof(format string, args ...any) {
	l.zlog.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *jsonLogger) Warnf(format string, args ...any) {
	l.zlog.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *jsonLogger) Errorf(format string, args ...any) {
	l.zlog.Error().Msg(fmt.Sprintf(format, args...))
}
