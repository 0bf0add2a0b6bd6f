package morse

import "time"

// Standard Morse spacing, in units. A dit is one unit, a dah three. One
// unit of silence separates symbols within a character; a completed
// character is followed by two more units before the next character, and a
// word boundary by four more (the symbol and character gaps preceding them
// bring the totals to the conventional three and seven).
const (
	ditUnits       = 1
	dahUnits       = 3
	symbolGapUnits = 1
	charGapUnits   = 2
	wordGapUnits   = 4
)

// Event is one step of a transmission plan: hold the key down or up for a
// number of units.
type Event struct {
	Down  bool
	Units int
}

// Schedule expands encoded elements into the ordered key events that
// transmit them. No gap follows the final element.
func Schedule(elements []Element) []Event {
	var events []Event
	for i, el := range elements {
		if el.Break {
			events = append(events, Event{Units: wordGapUnits})
			continue
		}
		for j, sym := range el.Symbols {
			units := ditUnits
			if sym == Dah {
				units = dahUnits
			}
			events = append(events, Event{Down: true, Units: units})
			if j+1 < len(el.Symbols) {
				events = append(events, Event{Units: symbolGapUnits})
			}
		}
		if i+1 < len(elements) && !elements[i+1].Break {
			events = append(events, Event{Units: charGapUnits})
		}
	}
	return events
}

// Duration reports the wall-clock length of transmitting elements at the
// given unit duration.
func Duration(elements []Element, unit time.Duration) time.Duration {
	var units int
	for _, ev := range Schedule(elements) {
		units += ev.Units
	}
	return time.Duration(units) * unit
}

// UnitForWPM derives the unit duration for a words-per-minute speed using
// the PARIS convention (one word is 50 units).
func UnitForWPM(wpm int) time.Duration {
	return time.Minute / time.Duration(50*wpm)
}
