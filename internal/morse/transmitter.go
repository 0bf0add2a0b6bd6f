package morse

import (
	"context"
	"time"
)

// Keyer is the sounder boundary: close or open the circuit, and release
// the underlying resource. Down and Up must tolerate repeated calls.
type Keyer interface {
	Down() error
	Up() error
	Close() error
}

// NullKeyer discards all keying. It is the degraded target when a real
// keyer faults mid-transmission.
type NullKeyer struct{}

func (NullKeyer) Down() error  { return nil }
func (NullKeyer) Up() error    { return nil }
func (NullKeyer) Close() error { return nil }

// Transmitter sends encoded text through a Keyer in real time. A
// transmission blocks the caller for its full duration. If the keyer
// faults, the transmitter silences it and completes the timing plan
// anyway, so a broken sounder never aborts a transmission.
type Transmitter struct {
	key      Keyer
	unit     time.Duration
	clock    Clock
	echo     func(rune)
	silenced bool
}

// NewTransmitter builds a transmitter keying through key at the given unit
// duration.
func NewTransmitter(key Keyer, unit time.Duration) *Transmitter {
	return &Transmitter{key: key, unit: unit, clock: RealClock{}}
}

// SetClock replaces the wall clock, for tests.
func (t *Transmitter) SetClock(clock Clock) {
	t.clock = clock
}

// SetEcho installs a per-character progress callback. It is invoked after
// each character (and word boundary) is keyed and must not block.
func (t *Transmitter) SetEcho(echo func(rune)) {
	t.echo = echo
}

// Unit reports the configured unit duration.
func (t *Transmitter) Unit() time.Duration {
	return t.unit
}

// Silenced reports whether the keyer faulted and was replaced by a no-op.
func (t *Transmitter) Silenced() bool {
	return t.silenced
}

// Send transmits text. It returns early only when ctx is cancelled, and
// never with the key held down.
func (t *Transmitter) Send(ctx context.Context, text string) error {
	return t.SendElements(ctx, Encode(text))
}

// SendElements transmits an already encoded sequence.
func (t *Transmitter) SendElements(ctx context.Context, elements []Element) error {
	for i, el := range elements {
		if el.Break {
			if err := t.hold(ctx, wordGapUnits); err != nil {
				return err
			}
			t.echoRune(' ')
			continue
		}
		if err := t.sendCharacter(ctx, el.Symbols); err != nil {
			return err
		}
		t.echoRune(el.Rune)
		if i+1 < len(elements) && !elements[i+1].Break {
			if err := t.hold(ctx, charGapUnits); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Transmitter) sendCharacter(ctx context.Context, symbols []Symbol) error {
	for j, sym := range symbols {
		units := ditUnits
		if sym == Dah {
			units = dahUnits
		}
		t.keyDown()
		err := t.hold(ctx, units)
		t.keyUp()
		if err != nil {
			return err
		}
		if j+1 < len(symbols) {
			if err := t.hold(ctx, symbolGapUnits); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Transmitter) hold(ctx context.Context, units int) error {
	return t.clock.Sleep(ctx, time.Duration(units)*t.unit)
}

func (t *Transmitter) keyDown() {
	if t.silenced {
		return
	}
	if err := t.key.Down(); err != nil {
		t.silence()
	}
}

func (t *Transmitter) keyUp() {
	if t.silenced {
		return
	}
	if err := t.key.Up(); err != nil {
		t.silence()
	}
}

func (t *Transmitter) silence() {
	t.silenced = true
	t.key = NullKeyer{}
}

func (t *Transmitter) echoRune(r rune) {
	if t.echo != nil {
		t.echo(r)
	}
}
