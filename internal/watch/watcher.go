// Package watch re-runs a calculation script whenever its file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before the
// callback fires.
const DefaultDebounce = 300 * time.Millisecond

// ScriptWatcher watches a single file. Editors often replace files instead of
// writing in place, so the parent directory is watched and events are
// filtered by name.
type ScriptWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	onError  func(error)
}

// NewScriptWatcher creates a watcher for path. onChange runs once per burst of changes.
func NewScriptWatcher(path string, onChange func()) (*ScriptWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return &ScriptWatcher{
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		onError:  func(error) {},
	}, nil
}

// SetDebounceDelay sets the debounce delay between a change and the callback.
func (sw *ScriptWatcher) SetDebounceDelay(delay time.Duration) {
	sw.debounce = delay
}

// SetErrorHandler receives errors reported by the underlying watcher.
func (sw *ScriptWatcher) SetErrorHandler(f func(error)) {
	if f == nil {
		f = func(error) {}
	}
	sw.onError = f
}

// Watch blocks until ctx is cancelled or the watcher fails to start.
func (sw *ScriptWatcher) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(sw.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(sw.path), err)
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != sw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(sw.debounce, func() {
				if ctx.Err() == nil {
					sw.onChange()
				}
			})
			mu.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			sw.onError(err)
		}
	}
}
