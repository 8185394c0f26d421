// Package logging sets up the zerolog logger of sintaxis: a console on the
// given writer, at the level asked with -v, and a log file in the XDG state
// directory that always records from info up.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FileLevel is the lowest level written to the log file.
const FileLevel = zerolog.InfoLevel

// MaxFileSize is the size over which the log file is started again.
const MaxFileSize = 1 << 20

// consoleLevels indexes the console level by verbosity.
var consoleLevels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
	zerolog.TraceLevel,
}

// current is the open log file, closed when the logger is set up again.
var current *os.File

// ConsoleLevel returns the console level for a -v count.
func ConsoleLevel(verbosity int) zerolog.Level {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(consoleLevels) {
		return consoleLevels[len(consoleLevels)-1]
	}
	return consoleLevels[verbosity]
}

// minLevel is a zerolog.LevelWriter that drops events below min.
type minLevel struct {
	w   io.Writer
	min zerolog.Level
}

func (m minLevel) Write(p []byte) (int, error) {
	return m.w.Write(p)
}

func (m minLevel) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < m.min {
		return len(p), nil
	}
	return m.w.Write(p)
}

// SetupLogger configures the global logger. The console writes to w from
// the level of verbosity up; the log file gets FileLevel and up whatever
// the verbosity.
func SetupLogger(verbosity int, w io.Writer) {
	console := ConsoleLevel(verbosity)

	writers := []io.Writer{minLevel{
		w:   zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen},
		min: console,
	}}

	if current != nil {
		current.Close()
		current = nil
	}

	path := LogFilePath()
	f, fileErr := openLogFile(path)
	if fileErr == nil {
		current = f
		writers = append(writers, minLevel{w: f, min: FileLevel})
	}

	zerolog.SetGlobalLevel(min(console, FileLevel))

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("No log file, logging to console only")
	}

	log.Debug().Int("verbosity", verbosity).Str("console", console.String()).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns the path to the log file, under XDG_STATE_HOME.
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, "sintaxis", "sintaxis.log")
}

// openLogFile opens the log file for appending, creating its directory. A
// file over MaxFileSize is truncated.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	flags := os.O_CREATE | os.O_APPEND | os.O_WRONLY
	if info, err := os.Stat(path); err == nil && info.Size() > MaxFileSize {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}

// LogOperationStart logs the start of an operation at debug level and
// returns the function that logs its end with the elapsed time.
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
