package morse

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock records requested sleeps without waiting.
type fakeClock struct {
	sleeps []time.Duration
	failAt int // 1-based sleep index to fail on, 0 = never
	err    error
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if c.failAt > 0 && len(c.sleeps) == c.failAt {
		return c.err
	}
	return nil
}

// recordingKeyer logs down/up transitions.
type recordingKeyer struct {
	ops    []string
	closed int
}

func (k *recordingKeyer) Down() error { k.ops = append(k.ops, "down"); return nil }
func (k *recordingKeyer) Up() error   { k.ops = append(k.ops, "up"); return nil }
func (k *recordingKeyer) Close() error {
	k.closed++
	return nil
}

// faultingKeyer fails every toggle.
type faultingKeyer struct {
	downs int
}

func (k *faultingKeyer) Down() error  { k.downs++; return errors.New("gpio gone") }
func (k *faultingKeyer) Up() error    { return errors.New("gpio gone") }
func (k *faultingKeyer) Close() error { return nil }

func TestSendKeysAlternately(t *testing.T) {
	key := &recordingKeyer{}
	clock := &fakeClock{}
	tx := NewTransmitter(key, 10*time.Millisecond)
	tx.SetClock(clock)

	if err := tx.Send(context.Background(), "A"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	wantOps := []string{"down", "up", "down", "up"}
	if len(key.ops) != len(wantOps) {
		t.Fatalf("expected ops %v, got %v", wantOps, key.ops)
	}
	for i := range wantOps {
		if key.ops[i] != wantOps[i] {
			t.Fatalf("op %d = %q, want %q", i, key.ops[i], wantOps[i])
		}
	}
	wantSleeps := []time.Duration{10 * time.Millisecond, 10 * time.Millisecond, 30 * time.Millisecond}
	if len(clock.sleeps) != len(wantSleeps) {
		t.Fatalf("expected sleeps %v, got %v", wantSleeps, clock.sleeps)
	}
	for i := range wantSleeps {
		if clock.sleeps[i] != wantSleeps[i] {
			t.Errorf("sleep %d = %v, want %v", i, clock.sleeps[i], wantSleeps[i])
		}
	}
}

func TestSendMatchesSchedule(t *testing.T) {
	for _, text := range []string{"SOS", "A B", "PAX", "E T"} {
		key := &recordingKeyer{}
		clock := &fakeClock{}
		unit := 80 * time.Millisecond
		tx := NewTransmitter(key, unit)
		tx.SetClock(clock)

		if err := tx.Send(context.Background(), text); err != nil {
			t.Fatalf("Send(%q): %v", text, err)
		}
		var total time.Duration
		for _, d := range clock.sleeps {
			total += d
		}
		if want := Duration(Encode(text), unit); total != want {
			t.Errorf("Send(%q) slept %v total, want %v", text, total, want)
		}
	}
}

func TestSendEchoesCharacters(t *testing.T) {
	tx := NewTransmitter(&recordingKeyer{}, time.Millisecond)
	tx.SetClock(&fakeClock{})
	var echoed []rune
	tx.SetEcho(func(r rune) { echoed = append(echoed, r) })

	if err := tx.Send(context.Background(), "ave maría"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got, want := string(echoed), "AVE MARÍA"; got != want {
		t.Errorf("echoed %q, want %q", got, want)
	}
}

func TestSendSurvivesKeyerFault(t *testing.T) {
	key := &faultingKeyer{}
	clock := &fakeClock{}
	unit := 10 * time.Millisecond
	tx := NewTransmitter(key, unit)
	tx.SetClock(clock)

	if err := tx.Send(context.Background(), "SOS"); err != nil {
		t.Fatalf("Send must not fail on keyer fault, got %v", err)
	}
	if key.downs != 1 {
		t.Errorf("expected a single Down attempt before silencing, got %d", key.downs)
	}
	if !tx.Silenced() {
		t.Errorf("transmitter should report a silenced keyer")
	}
	var total time.Duration
	for _, d := range clock.sleeps {
		total += d
	}
	if want := Duration(Encode("SOS"), unit); total != want {
		t.Errorf("timing plan cut short: slept %v, want %v", total, want)
	}
}

func TestSendCancellationReleasesKey(t *testing.T) {
	key := &recordingKeyer{}
	clock := &fakeClock{failAt: 1, err: context.Canceled}
	tx := NewTransmitter(key, time.Millisecond)
	tx.SetClock(clock)

	err := tx.Send(context.Background(), "SOS")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(key.ops) == 0 || key.ops[len(key.ops)-1] != "up" {
		t.Errorf("key must be up after cancellation, ops: %v", key.ops)
	}
	if key.closed != 0 {
		t.Errorf("transmitter must not close the keyer it borrows, Close called %d times", key.closed)
	}
}
