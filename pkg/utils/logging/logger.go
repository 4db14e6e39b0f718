package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/clog/hooks"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
)

const (
	DefaultFormat = "text"
	DefaultLevel  = "info"
	DefaultOutput = "stderr"
)

var (
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	mutex   sync.Mutex
	logFile *os.File
)

func init() {
	_ = Configure(DefaultFormat, DefaultLevel, DefaultOutput)
}

// Default returns the default logger
func Default() *slog.Logger {
	mutex.Lock()
	defer mutex.Unlock()
	return defaultLogger
}

// Configure replaces the default logger. Format and level are validated before a log file is created, and a log file opened by a previous call is closed.
func Configure(logFormat, logLevel, logOutput string) error {
	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	if logFormat != "text" && logFormat != "json" {
		return goerr.Wrap(types.ErrInvalidOption, "invalid log format, should be 'json' or 'text'", goerr.V("value", logFormat))
	}

	w, fd, err := openOutput(logOutput)
	if err != nil {
		return err
	}

	mutex.Lock()
	defer mutex.Unlock()

	prev := logFile
	defaultLogger = slog.New(newHandler(logFormat, level, w))
	logFile = fd

	if prev != nil {
		if err := prev.Close(); err != nil {
			return goerr.Wrap(err, "failed to close previous log file", goerr.V("path", prev.Name()))
		}
	}

	return nil
}

// Close closes the log file if one is open and restores the default logger writing to stderr
func Close() error {
	return Configure(DefaultFormat, DefaultLevel, DefaultOutput)
}

func parseLevel(logLevel string) (slog.Level, error) {
	levelMap := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	level, ok := levelMap[logLevel]
	if !ok {
		return 0, goerr.Wrap(types.ErrInvalidOption, "invalid log level", goerr.V("value", logLevel))
	}
	return level, nil
}

// openOutput returns the writer for logOutput. The returned file is nil unless a log file was created.
func openOutput(logOutput string) (io.Writer, *os.File, error) {
	switch logOutput {
	case "stdout", "-":
		return os.Stdout, nil, nil
	case "stderr":
		return os.Stderr, nil, nil
	}

	fd, err := os.Create(filepath.Clean(logOutput))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", logOutput))
	}
	return fd, fd, nil
}

func newHandler(logFormat string, level slog.Level, w io.Writer) slog.Handler {
	filter := masq.New(
		// Mask value with `masq:"secret"` tag
		masq.WithTag("secret"),
		masq.WithType[types.SentryDSN](masq.MaskWithSymbol('*', 16)),
	)

	if logFormat == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource:   true,
			Level:       level,
			ReplaceAttr: filter,
		})
	}

	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithSource(true),
		clog.WithColorMap(&clog.ColorMap{
			Level: map[slog.Level]*color.Color{
				slog.LevelDebug: color.New(color.FgGreen, color.Bold),
				slog.LevelInfo:  color.New(color.FgCyan, color.Bold),
				slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
				slog.LevelError: color.New(color.FgRed, color.Bold),
			},
			LevelDefault: color.New(color.FgBlue, color.Bold),
			Time:         color.New(color.FgWhite),
			Message:      color.New(color.FgHiWhite),
			AttrKey:      color.New(color.FgHiCyan),
			AttrValue:    color.New(color.FgHiWhite),
		}),
		clog.WithAttrHook(hooks.GoErr()),
		clog.WithReplaceAttr(filter),
	)
}
