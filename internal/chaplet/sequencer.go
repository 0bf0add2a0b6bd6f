package chaplet

import (
	"context"
	"time"

	"github.com/quisutdeus/chaplet/internal/morse"
)

// EventKind tags Sequencer progress events.
type EventKind int

const (
	EventCycleStart EventKind = iota
	EventSegmentStart
	EventSegmentEnd
	EventCycleEnd
)

// Event is an advisory progress report. Observers must not block; events
// never influence transmission timing.
type Event struct {
	Kind     EventKind
	Cycle    int64
	Language Language
	Index    int // segment index within the cycle, 0-based
	Total    int
	Label    string
	Text     string
	Elapsed  time.Duration // segment or cycle duration on the *End kinds
}

// Sequencer walks the chaplet script once per cycle, resolving the
// language and pacing segments with the inter-prayer delay. It owns the
// cycle counter; everything else it touches is immutable, so RunCycle may
// be called any number of times on one Sequencer.
type Sequencer struct {
	script *Script
	tx     *morse.Transmitter
	mode   Language
	delay  time.Duration
	clock  morse.Clock
	notify func(Event)

	cycleCount int64
}

// NewSequencer builds a sequencer over script, transmitting through tx.
func NewSequencer(script *Script, tx *morse.Transmitter, mode Language, delay time.Duration) *Sequencer {
	return &Sequencer{
		script: script,
		tx:     tx,
		mode:   mode,
		delay:  delay,
		clock:  morse.RealClock{},
	}
}

// SetClock replaces the delay clock, for tests.
func (s *Sequencer) SetClock(clock morse.Clock) {
	s.clock = clock
}

// SetNotify installs the progress observer.
func (s *Sequencer) SetNotify(notify func(Event)) {
	s.notify = notify
}

// CycleCount reports the number of started cycles.
func (s *Sequencer) CycleCount() int64 {
	return s.cycleCount
}

// LanguageForCycle resolves the language a given cycle number uses under
// the configured mode. Under Alternating, even cycle numbers pray in
// Latin and odd ones in English, so the first cycle is English.
func (s *Sequencer) LanguageForCycle(cycle int64) Language {
	if s.mode != Alternating {
		return s.mode
	}
	if cycle%2 == 0 {
		return Latin
	}
	return English
}

// RunCycle transmits one full pass of the script. The cycle counter is
// incremented first, then the language is resolved once for the whole
// cycle. No delay follows the final segment. It returns non-nil only when
// ctx is cancelled.
func (s *Sequencer) RunCycle(ctx context.Context) error {
	s.cycleCount++
	lang := s.LanguageForCycle(s.cycleCount)
	cycleStart := time.Now()
	total := s.script.Len()

	s.emit(Event{Kind: EventCycleStart, Cycle: s.cycleCount, Language: lang, Total: total})
	for i, seg := range s.script.Segments() {
		text := seg.Text.In(lang)
		s.emit(Event{
			Kind: EventSegmentStart, Cycle: s.cycleCount, Language: lang,
			Index: i, Total: total, Label: seg.Label, Text: text,
		})
		segStart := time.Now()
		if err := s.tx.Send(ctx, text); err != nil {
			return err
		}
		s.emit(Event{
			Kind: EventSegmentEnd, Cycle: s.cycleCount, Language: lang,
			Index: i, Total: total, Label: seg.Label, Text: text,
			Elapsed: time.Since(segStart),
		})
		if i+1 < total {
			if err := s.clock.Sleep(ctx, s.delay); err != nil {
				return err
			}
		}
	}
	s.emit(Event{
		Kind: EventCycleEnd, Cycle: s.cycleCount, Language: lang,
		Total: total, Elapsed: time.Since(cycleStart),
	})
	return nil
}

func (s *Sequencer) emit(ev Event) {
	if s.notify != nil {
		s.notify(ev)
	}
}
