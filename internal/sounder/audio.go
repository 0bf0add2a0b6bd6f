package sounder

import (
	"fmt"
	"math"

	"github.com/ebitengine/oto/v3"
)

const (
	toneSampleRate   = 48000
	toneChannelCount = 2

	// DefaultToneHz is a G5, a comfortable sidetone pitch.
	DefaultToneHz = 784.0
)

// tone is an endless sine wave source. Playback position, not the reader,
// decides when sound is heard: the player is started on key down and
// paused on key up.
type tone struct {
	freq float64
	pos  int64
}

func (s *tone) Read(buf []byte) (int, error) {
	const bytesPerFrame = 2 * toneChannelCount
	period := float64(toneSampleRate) / s.freq
	n := len(buf) / bytesPerFrame * bytesPerFrame
	for i := 0; i < n; i += bytesPerFrame {
		const max = 32767
		v := int16(math.Sin(2*math.Pi*float64(s.pos)/period) * 0.3 * max)
		for ch := 0; ch < toneChannelCount; ch++ {
			buf[i+2*ch] = byte(v)
			buf[i+1+2*ch] = byte(v >> 8)
		}
		s.pos++
	}
	return n, nil
}

// Audio keys a continuous sidetone through the default audio device.
type Audio struct {
	player *oto.Player
}

// OpenAudio prepares the audio context and a paused tone player.
func OpenAudio(freqHz float64) (*Audio, error) {
	if freqHz <= 0 {
		freqHz = DefaultToneHz
	}
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   toneSampleRate,
		ChannelCount: toneChannelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open audio context: %w", err)
	}
	<-ready
	return &Audio{player: ctx.NewPlayer(&tone{freq: freqHz})}, nil
}

// Down starts the tone. Safe to call while already sounding.
func (a *Audio) Down() error {
	if !a.player.IsPlaying() {
		a.player.Play()
	}
	return nil
}

// Up pauses the tone. Safe to call while already silent.
func (a *Audio) Up() error {
	if a.player.IsPlaying() {
		a.player.Pause()
	}
	return nil
}

// Close releases the audio player.
func (a *Audio) Close() error {
	return a.player.Close()
}
