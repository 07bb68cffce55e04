package dragdrop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/MohammedMusharraf11/NaukriGraph/internal/intake"
	"github.com/MohammedMusharraf11/NaukriGraph/internal/logger"
)

const DefaultSettle = 500 * time.Millisecond

// Watcher treats a directory as a drop zone. A file appearing in it is a drag
// entering, writes to it are the drag hovering, and once no event has arrived
// for the settle period the pending files are dropped.
type Watcher struct {
	dir        string
	settle     time.Duration
	controller *Controller
	logger     *zap.Logger
}

func NewWatcher(dir string, settle time.Duration, controller *Controller, l *zap.Logger) *Watcher {
	if settle <= 0 {
		settle = DefaultSettle
	}

	return &Watcher{
		dir:        dir,
		settle:     settle,
		controller: controller,
		logger:     logger.WithFields(l, zap.String("dir", dir)),
	}
}

// Wait blocks until a dropped file is accepted and returns it. Rejected drops
// keep the watcher running.
func (w *Watcher) Wait(ctx context.Context) (*intake.Attachment, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return nil, fmt.Errorf("watch %s: %w", w.dir, err)
	}

	w.logger.Info("waiting for a resume to be dropped")

	var (
		pending []string
		timer   *time.Timer
		fire    <-chan time.Time
	)

	arm := func() {
		if timer == nil {
			timer = time.NewTimer(w.settle)
		} else {
			timer.Stop()
			timer.Reset(w.settle)
		}
		fire = timer.C
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil, errors.New("watcher closed")
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil, errors.New("watcher closed")
			}

			switch {
			case ev.Has(fsnotify.Create):
				if !isRegular(ev.Name) {
					continue
				}
				if !slices.Contains(pending, ev.Name) {
					pending = append(pending, ev.Name)
				}
				w.controller.Handle(Event{Type: Enter})
				arm()

			case ev.Has(fsnotify.Write):
				if !slices.Contains(pending, ev.Name) {
					continue
				}
				w.controller.Handle(Event{Type: Over})
				arm()

			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				pending = slices.DeleteFunc(pending, func(p string) bool { return p == ev.Name })
				if len(pending) == 0 && w.controller.State() == Active {
					w.controller.Handle(Event{Type: Leave})
					fire = nil
				}
			}

		case <-fire:
			fire = nil
			files := w.collect(pending)
			pending = nil

			out := w.controller.Handle(Event{Type: Drop, Files: files})
			if out.Attachment != nil {
				return out.Attachment, nil
			}
			if out.Err != nil {
				w.logger.Info("dropped file rejected, still waiting", zap.Error(out.Err))
			}
		}
	}
}

func (w *Watcher) collect(paths []string) []intake.RawFile {
	files := make([]intake.RawFile, 0, len(paths))
	for _, path := range paths {
		raw, err := intake.FromPath(path)
		if err != nil {
			w.logger.Debug("skipping vanished file", zap.String("path", path), zap.Error(err))
			continue
		}
		files = append(files, raw)
	}
	return files
}

func isRegular(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
