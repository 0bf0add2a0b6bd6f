package sounder

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestConsoleClicksOncePerClosure(t *testing.T) {
	var buf bytes.Buffer
	key := NewConsole(&buf)

	if err := key.Down(); err != nil {
		t.Fatalf("Down: %v", err)
	}
	if err := key.Down(); err != nil {
		t.Fatalf("redundant Down: %v", err)
	}
	if got := buf.String(); got != "\a" {
		t.Errorf("expected one bell for repeated Down, got %q", got)
	}

	if err := key.Up(); err != nil {
		t.Fatalf("Up: %v", err)
	}
	if err := key.Up(); err != nil {
		t.Fatalf("redundant Up: %v", err)
	}
	if err := key.Down(); err != nil {
		t.Fatalf("Down after Up: %v", err)
	}
	if got := buf.String(); got != "\a\a" {
		t.Errorf("expected a second bell after reopening, got %q", got)
	}
}

func TestOpenConsoleAndNull(t *testing.T) {
	key, err := Open(Config{Backend: BackendConsole, Out: io.Discard})
	if err != nil {
		t.Fatalf("Open console: %v", err)
	}
	if _, ok := key.(*Console); !ok {
		t.Errorf("expected *Console, got %T", key)
	}

	key, err = Open(Config{Backend: BackendNull})
	if err != nil {
		t.Fatalf("Open null: %v", err)
	}
	if err := key.Down(); err != nil {
		t.Errorf("null Down: %v", err)
	}
	if err := key.Close(); err != nil {
		t.Errorf("null Close: %v", err)
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(Config{Backend: "telepathy"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestOpenGPIOFallsBackToConsole(t *testing.T) {
	// No GPIO on the test machine; Open must warn and degrade rather
	// than fail.
	var warnings []string
	key, err := Open(Config{
		Backend: BackendGPIO,
		GPIOPin: 17,
		Out:     io.Discard,
		Logf: func(format string, args ...any) {
			warnings = append(warnings, format)
		},
	})
	if err != nil {
		t.Fatalf("Open gpio: %v", err)
	}
	if _, ok := key.(*GPIO); ok {
		t.Skip("machine has real GPIO")
	}
	if _, ok := key.(*Console); !ok {
		t.Fatalf("expected console fallback, got %T", key)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "falling back") {
		t.Errorf("expected one fallback warning, got %v", warnings)
	}
}

func TestToneFillsWholeFrames(t *testing.T) {
	src := &tone{freq: DefaultToneHz}
	buf := make([]byte, 1023) // not frame aligned
	n, err := src.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n == 0 || n%4 != 0 {
		t.Errorf("expected a positive whole-frame read, got %d", n)
	}
	// The endless tone never reports EOF.
	if _, err := src.Read(make([]byte, 64)); err != nil {
		t.Errorf("second Read: %v", err)
	}
}
