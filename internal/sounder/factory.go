package sounder

import (
	"fmt"
	"io"
	"os"

	"github.com/quisutdeus/chaplet/internal/morse"
)

// Backends accepted by Open.
const (
	BackendAuto    = "auto"
	BackendGPIO    = "gpio"
	BackendAudio   = "audio"
	BackendConsole = "console"
	BackendNull    = "null"
)

// Config selects and parameterizes a keyer backend.
type Config struct {
	Backend string
	GPIOPin int
	ToneHz  float64
	// Out is the console backend target, defaulting to stdout.
	Out io.Writer
	// Logf receives fallback warnings. Optional.
	Logf func(format string, args ...any)
}

// Open builds the configured keyer. Hardware backends that fail to
// initialize degrade to the console simulation with a warning instead of
// failing: missing hardware must never stop the cycle. Only an unknown
// backend name is an error.
func Open(cfg Config) (morse.Keyer, error) {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	switch cfg.Backend {
	case BackendGPIO, BackendAuto:
		key, err := OpenGPIO(cfg.GPIOPin)
		if err != nil {
			logf("gpio unavailable, falling back to console: %v\n", err)
			return NewConsole(out), nil
		}
		return key, nil
	case BackendAudio:
		key, err := OpenAudio(cfg.ToneHz)
		if err != nil {
			logf("audio unavailable, falling back to console: %v\n", err)
			return NewConsole(out), nil
		}
		return key, nil
	case BackendConsole:
		return NewConsole(out), nil
	case BackendNull:
		return morse.NullKeyer{}, nil
	default:
		return nil, fmt.Errorf("unknown sounder backend %q", cfg.Backend)
	}
}
