package logging

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	zl      *zerolog.Logger
	Verbose bool
}

// New writes human-readable lines to writer. Verbose enables debug output;
// otherwise only warnings and errors are shown. Every line carries the id
// of the run.
func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Logger{}
	}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05", NoColor: !isTerminal(writer)}
	zl := zerolog.New(console).Level(level).With().
		Timestamp().
		Str("run", uuid.NewString()[:8]).
		Logger()
	return Logger{zl: &zl, Verbose: verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.zl == nil {
		return
	}
	l.zl.Info().Msgf(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.zl == nil {
		return
	}
	l.zl.Warn().Msgf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.zl == nil {
		return
	}
	l.zl.Debug().Msgf(format, args...)
}

// Move logs a single planned or executed move at debug level.
func (l Logger) Move(source, destination string) {
	if !l.Verbose || l.zl == nil {
		return
	}
	l.zl.Debug().Str("source", source).Str("destination", destination).Msg("move")
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
