// Package sounder provides keyer backends for the Morse transmitter: a
// GPIO-driven telegraph sounder, an audio tone, a console simulation, and
// a silent fallback.
package sounder

import (
	"fmt"
	"io"
)

// Console simulates a sounder on a terminal by ringing the bell when the
// key closes. The character echo comes from the transmitter, not from
// here, so the simulation stays quiet between clicks.
type Console struct {
	w    io.Writer
	down bool
}

// NewConsole returns a console keyer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Down rings the bell once per closure. Repeated calls are no-ops.
func (c *Console) Down() error {
	if c.down {
		return nil
	}
	c.down = true
	if _, err := fmt.Fprint(c.w, "\a"); err != nil {
		return fmt.Errorf("failed to write console click: %w", err)
	}
	return nil
}

// Up opens the key. Repeated calls are no-ops.
func (c *Console) Up() error {
	c.down = false
	return nil
}

// Close implements morse.Keyer.
func (c *Console) Close() error {
	c.down = false
	return nil
}
