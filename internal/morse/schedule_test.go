package morse

import (
	"testing"
	"time"
)

func TestScheduleTimingRatios(t *testing.T) {
	for _, unit := range []time.Duration{time.Millisecond, 80 * time.Millisecond, time.Second} {
		dit := time.Duration(ditUnits) * unit
		dah := time.Duration(dahUnits) * unit
		if dah != 3*dit {
			t.Errorf("unit %v: dah %v != 3×dit %v", unit, dah, dit)
		}
	}
}

func TestScheduleSOS(t *testing.T) {
	events := Schedule(Encode("SOS"))
	want := []Event{
		{Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 1},
		{Units: 2},
		{Down: true, Units: 3}, {Units: 1}, {Down: true, Units: 3}, {Units: 1}, {Down: true, Units: 3},
		{Units: 2},
		{Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 1},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
	last := events[len(events)-1]
	if !last.Down {
		t.Errorf("schedule must not end with a trailing gap, got %+v", last)
	}
}

func TestScheduleWordBoundary(t *testing.T) {
	// "A B": dit-dah, a four-unit silent hold supplementing the elapsed
	// gaps to the seven-unit word space, then dah-dit-dit-dit.
	events := Schedule(Encode("A B"))
	want := []Event{
		{Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 3},
		{Units: 4},
		{Down: true, Units: 3}, {Units: 1}, {Down: true, Units: 1}, {Units: 1},
		{Down: true, Units: 1}, {Units: 1}, {Down: true, Units: 1},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestScheduleNoCharGapBeforeBoundary(t *testing.T) {
	events := Schedule(Encode("E E"))
	want := []Event{
		{Down: true, Units: 1},
		{Units: 4},
		{Down: true, Units: 1},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(events), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestDuration(t *testing.T) {
	unit := 10 * time.Millisecond
	cases := []struct {
		text  string
		units int
	}{
		{"E", 1},
		{"T", 3},
		{"A", 1 + 1 + 3},
		{"EE", 1 + 2 + 1},
		{"E E", 1 + 4 + 1},
		{"SOS", 5 + 2 + 11 + 2 + 5},
	}
	for _, tc := range cases {
		got := Duration(Encode(tc.text), unit)
		want := time.Duration(tc.units) * unit
		if got != want {
			t.Errorf("Duration(%q) = %v, want %v", tc.text, got, want)
		}
	}
}

func TestUnitForWPM(t *testing.T) {
	cases := []struct {
		wpm  int
		unit time.Duration
	}{
		{20, 60 * time.Millisecond},
		{15, 80 * time.Millisecond},
		{12, 100 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := UnitForWPM(tc.wpm); got != tc.unit {
			t.Errorf("UnitForWPM(%d) = %v, want %v", tc.wpm, got, tc.unit)
		}
	}
}
