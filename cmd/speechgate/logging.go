package main

import (
	"io"
	"log/slog"

	"github.com/tailored-agentic-units/speechgate/observability"
)

// setupLogging registers the log observer chosen by the flags and returns its
// name with a flush for buffered sinks.
func setupLogging(useZap, verbose bool, stderr io.Writer) (string, func(), error) {
	if useZap {
		level := "info"
		if verbose {
			level = "debug"
		}
		logger, err := observability.NewZapLogger(level)
		if err != nil {
			return "", nil, err
		}
		obs := observability.NewZapObserver(logger)
		observability.RegisterObserver("zap", obs)
		return "zap", func() { _ = obs.Sync() }, nil
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))
	return "slog", func() {}, nil
}

// exiter flushes logs before leaving the process; os.Exit skips deferred calls.
type exiter struct {
	flush func()
	exit  func(code int)
}

func (e exiter) Exit(code int) {
	e.flush()
	e.exit(code)
}
