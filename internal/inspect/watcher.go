package inspect

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/Neumenon/benc/benc"
)

// Result is one watch cycle: the re-decoded value or the error that
// stopped it.
type Result struct {
	Value *benc.BValue
	Err   error
}

// Watcher re-decodes a single file whenever it changes and delivers the
// outcome over Results. The parent directory is watched rather than the
// file itself so atomic writes (temp file + rename) and file recreation
// are picked up.
type Watcher struct {
	path string
	opts benc.DecodeOptions
	log  zerolog.Logger

	fsw     *fsnotify.Watcher
	results chan Result
}

// NewWatcher creates a watcher for path. It is not started yet.
func NewWatcher(path string, opts benc.DecodeOptions, log zerolog.Logger) *Watcher {
	return &Watcher{
		path: path,
		opts: opts,
		log:  log,
	}
}

// Start begins watching. The current file content is decoded and
// delivered immediately, then once per change event, until ctx is
// cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watch directory %q: %w", dir, err)
	}

	w.fsw = fsw
	w.results = make(chan Result)
	filename := filepath.Base(w.path)

	go func() {
		defer close(w.results)

		// Initial decode so the caller sees the current state without
		// waiting for a change.
		w.deliver(ctx)

		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != filename {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				w.log.Debug().Str("event", event.Op.String()).Str("file", event.Name).Msg("change detected")
				w.deliver(ctx)

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.log.Warn().Err(err).Msg("watch error")
				select {
				case w.results <- Result{Err: err}:
				case <-ctx.Done():
					return
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// deliver loads, decodes, and sends one result.
func (w *Watcher) deliver(ctx context.Context) {
	var res Result

	input, err := Load(w.path)
	if err != nil {
		res.Err = err
	} else {
		res.Value, res.Err = benc.DecodeWithOptions(input, w.opts)
	}

	select {
	case w.results <- res:
	case <-ctx.Done():
	}
}

// Stop stops watching and closes the Results channel.
func (w *Watcher) Stop() error {
	if w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}

// Results returns the channel receiving watch results.
func (w *Watcher) Results() <-chan Result {
	return w.results
}
