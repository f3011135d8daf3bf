package logging

import (
	"os"
	"strings"
	"testing"
)

func TestLoggerWritesToSessionFile(t *testing.T) {
	SetDirectory(t.TempDir())

	l, err := New("queue")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer l.Close()

	l.Debugf("enqueued %q", "greeting")
	l.Infof("fade finished")

	data, err := os.ReadFile(l.LogPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, `[queue] [DEBUG] enqueued "greeting"`) {
		t.Errorf("missing debug entry in:\n%s", content)
	}
	if !strings.Contains(content, "[queue] [INFO] fade finished") {
		t.Errorf("missing info entry in:\n%s", content)
	}
}

func TestLoggersShareSessionFile(t *testing.T) {
	SetDirectory(t.TempDir())

	a, err := New("queue")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	b, err := New("termui")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Close()

	if a.LogPath() != b.LogPath() {
		t.Errorf("components got different session files: %q vs %q", a.LogPath(), b.LogPath())
	}
	if a.SessionID() != b.SessionID() {
		t.Errorf("components got different session IDs")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger

	// The engine holds an optional logger; nil must be a no-op everywhere.
	l.Debugf("ignored")
	l.Infof("ignored")
	l.Warnf("ignored")
	l.Errorf("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
	if l.LogPath() != "" {
		t.Errorf("LogPath on nil logger: %q", l.LogPath())
	}
	if n, err := l.Writer().Write([]byte("x")); err != nil || n != 1 {
		t.Errorf("Writer on nil logger: n=%d err=%v", n, err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	SetDirectory(t.TempDir())

	l, err := New("queue")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}
