package identity

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"
)

// Event conveys a changed raw location or a read error from a poll.
type Event struct {
	Raw string
	Err error
}

// Watcher polls a location file at a fixed interval and publishes an
// event whenever its content changes. The file is the panel's stand-in
// for browser navigation: the companion bot rewrites it with the active
// deep link, and the panel follows.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	mu   sync.Mutex
	last string
	seen bool
}

// NewWatcher creates a watcher that polls path every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of location events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current read
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	// Prime the last-seen value so startup does not replay the location
	// the application already resolved.
	if raw, err := w.read(); err == nil {
		w.remember(raw)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}

		raw, err := w.read()
		if err != nil {
			if !w.emit(Event{Err: err}) {
				return
			}
			continue
		}
		if !w.changed(raw) {
			continue
		}
		w.remember(raw)
		if !w.emit(Event{Raw: raw}) {
			return
		}
	}
}

func (w *Watcher) read() (string, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (w *Watcher) changed(raw string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.seen || raw != w.last
}

func (w *Watcher) remember(raw string) {
	w.mu.Lock()
	w.last = raw
	w.seen = true
	w.mu.Unlock()
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
