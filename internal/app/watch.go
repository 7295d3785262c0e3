package app

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pipt-tools/piptcfg/internal/config"
)

// watchDebounce coalesces bursty editor/atomic-write events into one check.
const watchDebounce = 200 * time.Millisecond

func watchCmd(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	configPath := fs.String("config", "./case.pipt", "path to .pipt file")
	logLevel := fs.String("log-level", "info", "log level (debug|info|warn|error)")
	logFile := fs.String("log-file", "", "append logs to file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		logger *slog.Logger
		closer io.Closer
		err    error
	)
	if *logFile != "" {
		logger, closer, err = newLoggerToSink(*logLevel, "file", *logFile)
	} else {
		logger, err = newLogger(*logLevel)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 2
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkConfig(*configPath, logger, "startup")
	watchConfig(ctx, *configPath, logger, func() {
		checkConfig(*configPath, logger, "change")
	})
	return 0
}

// checkConfig parses and validates path, logging the outcome. Failures do
// not stop the watch loop; the next change gets re-checked.
func checkConfig(path string, logger *slog.Logger, trigger string) {
	f, err := config.Load(path)
	if err != nil {
		logger.Error("config_invalid", slog.Any("err", err), slog.String("trigger", trigger))
		return
	}
	logger.Info("config_ok",
		slog.String("section", f.Kind.String()),
		slog.Int("inversion_keywords", len(f.Inversion)),
		slog.Int("fwdsim_keywords", len(f.Forward)),
		slog.String("trigger", trigger),
	)
}

func watchConfig(ctx context.Context, path string, logger *slog.Logger, check func()) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("watch_disabled", slog.Any("err", err))
		return
	}
	defer w.Close()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := w.Add(dir); err != nil {
		logger.Warn("watch_disabled", slog.Any("err", err))
		return
	}

	logger.Info("watching_config", slog.String("path", path))

	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(watchDebounce)
		} else {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(watchDebounce)
		}
		timerCh = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != base {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			schedule()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("watch_error", slog.Any("err", err))
		case <-timerCh:
			timerCh = nil
			check()
		}
	}
}
