package sounder

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// GPIO drives a telegraph sounder through a single output pin (BCM
// numbering) via a transistor or relay. Key down drives the pin high.
type GPIO struct {
	pin gpio.PinIO
}

// OpenGPIO probes the GPIO host and claims the pin, leaving it low. It
// fails on machines without usable GPIO, which the factory treats as a
// signal to fall back to simulation.
func OpenGPIO(bcm int) (*GPIO, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to init gpio host: %w", err)
	}
	name := fmt.Sprintf("GPIO%d", bcm)
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %s not found", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("failed to drive %s low: %w", name, err)
	}
	return &GPIO{pin: pin}, nil
}

// Down closes the circuit. Driving an already-high pin high is harmless,
// so repeated calls are safe.
func (g *GPIO) Down() error {
	if err := g.pin.Out(gpio.High); err != nil {
		return fmt.Errorf("failed to key down: %w", err)
	}
	return nil
}

// Up opens the circuit.
func (g *GPIO) Up() error {
	if err := g.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to key up: %w", err)
	}
	return nil
}

// Close releases the sounder with the circuit open.
func (g *GPIO) Close() error {
	if err := g.pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to release pin: %w", err)
	}
	return nil
}
