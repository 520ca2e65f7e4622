package identity

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeLocation(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write location file: %v", err)
	}
}

func waitForEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("events channel closed unexpectedly")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
	return Event{}
}

func TestWatcherEmitsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location")
	writeLocation(t, path, "/chatId=1\n")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	// Give the poller a moment to prime its last-seen value before the
	// change lands.
	time.Sleep(50 * time.Millisecond)
	writeLocation(t, path, "/chatId=2\n")
	evt := waitForEvent(t, w)
	if evt.Err != nil {
		t.Fatalf("unexpected error event: %v", evt.Err)
	}
	if evt.Raw != "/chatId=2" {
		t.Fatalf("expected trimmed raw location, got %q", evt.Raw)
	}
}

func TestWatcherDoesNotReplayInitialLocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location")
	writeLocation(t, path, "/chatId=1")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		t.Fatalf("expected no event for the startup location, got %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherIgnoresRewriteOfSameContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location")
	writeLocation(t, path, "/chatId=1")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	writeLocation(t, path, "/chatId=1")
	select {
	case evt := <-w.Events():
		t.Fatalf("expected no event for identical content, got %+v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherReportsReadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "location")
	writeLocation(t, path, "/chatId=1")

	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := os.Remove(path); err != nil {
		t.Fatalf("remove location file: %v", err)
	}
	evt := waitForEvent(t, w)
	if evt.Err == nil {
		t.Fatalf("expected an error event after the file vanished, got %+v", evt)
	}
}

func TestWatcherStopClosesChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location")
	writeLocation(t, path, "/chatId=1")

	w := NewWatcher(path, 10*time.Millisecond)
	w.Stop()
	w.Wait()

	select {
	case _, ok := <-w.Events():
		if ok {
			// A buffered event may drain first; the channel must close
			// right after.
			if _, stillOpen := <-w.Events(); stillOpen {
				t.Fatalf("events channel still open after Stop and Wait")
			}
		}
	case <-time.After(time.Second):
		t.Fatalf("events channel did not close")
	}
}
