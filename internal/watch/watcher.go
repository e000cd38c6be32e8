// Package watch observes a project document for external edits.
//
// The host-application equivalent of this tool receives a "project changed"
// notification and clears the saved original order so a stale snapshot is
// never applied to an unrelated tree. On the command line that notification
// is a file watch: when the document is rewritten by anything other than
// layerctl, the snapshot slot is discarded.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/geodeck/layerctl/internal/engine"
)

// Watcher watches one project document and discards stale snapshots.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	eng         *engine.Engine
	projectPath string
	log         *zap.Logger
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a Watcher for the given project document.
func New(projectPath string, eng *engine.Engine, log *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	abs, err := filepath.Abs(projectPath)
	if err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	return &Watcher{
		watcher:     fsw,
		eng:         eng,
		projectPath: abs,
		log:         log,
		// Editors often save in bursts; collapse them.
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It blocks until the context is canceled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: atomic saves replace the file and
	// would silently detach a file-level watch.
	if err := w.watcher.Add(filepath.Dir(w.projectPath)); err != nil {
		return fmt.Errorf("failed to watch project directory: %w", err)
	}

	w.log.Info("watching project document",
		zap.String("path", w.projectPath),
	)

	defer close(w.doneCh)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	checks := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.projectPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("project document event",
				zap.String("op", event.Op.String()),
			)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(w.debounceDur, func() {
				select {
				case checks <- struct{}{}:
				default:
				}
			})

		case <-checks:
			w.check()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// check runs the engine's status action, which discards the snapshot when
// the document checksum no longer matches the recorded one.
func (w *Watcher) check() {
	st, err := w.eng.Status(&engine.StatusRequest{ProjectPath: w.projectPath})
	if err != nil {
		w.log.Warn("failed to check project document", zap.Error(err))
		return
	}

	if st.SnapshotDiscarded {
		w.log.Info("project changed externally, snapshot discarded",
			zap.String("project", st.ProjectName),
		)
		return
	}
	w.log.Debug("project document unchanged by external tools",
		zap.Bool("snapshotHeld", st.SnapshotHeld),
	)
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}
