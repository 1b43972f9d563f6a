package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long the input must stay quiet before a rerun.
const settle = 150 * time.Millisecond

// Watch runs the pipeline once, then again whenever the input file changes
// or Reconfigure is called, until ctx is done. Generation happens on the
// first run only; later runs read whatever the file holds. Run errors are
// logged and do not stop the loop. onRun, if non-nil, receives every result.
func (a *App) Watch(ctx context.Context, onRun func(*RunResult, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("input watcher: %w", err)
	}
	defer w.Close()

	cfg := a.Config()
	res, err := a.run(ctx, cfg, cfg.Generate.Enabled)
	if onRun != nil {
		onRun(res, err)
	}

	// Watch the directory so editors that replace the file are still seen.
	watched := ""
	rewatch := func(input string) error {
		dir := filepath.Dir(input)
		if dir == watched {
			return nil
		}
		if watched != "" {
			_ = w.Remove(watched)
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("input watcher add %s: %w", dir, err)
		}
		watched = dir
		return nil
	}
	if err := rewatch(cfg.Input); err != nil {
		return err
	}
	a.logger.Info("watching input", "path", cfg.Input)

	timer := time.NewTimer(settle)
	timer.Stop()
	pending := false
	rerun := func() {
		cfg := a.Config()
		if err := rewatch(cfg.Input); err != nil {
			a.logger.Warn("input watcher unavailable", "err", err)
		}
		res, err := a.run(ctx, cfg, false)
		if onRun != nil {
			onRun(res, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !sameFile(ev.Name, a.Config().Input) {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				timer.Reset(settle)
				pending = true
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("input watcher error", "err", err)
		case <-a.kick:
			timer.Reset(settle)
			pending = true
		case <-timer.C:
			if pending {
				pending = false
				rerun()
			}
		}
	}
}

func sameFile(a, b string) bool {
	ca, err1 := filepath.Abs(a)
	cb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return ca == cb
}
