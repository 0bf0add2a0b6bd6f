package monitor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quisutdeus/chaplet/internal/chaplet"
)

func TestApplyEventResetsEchoPerSegment(t *testing.T) {
	m := NewModel(func() {})
	m.applyEvent(chaplet.Event{Kind: chaplet.EventCycleStart, Cycle: 1, Language: chaplet.Latin, Total: 51})
	m.applyEvent(chaplet.Event{Kind: chaplet.EventSegmentStart, Index: 0, Total: 51, Label: "Opening"})
	m.echoed = []rune("DEUS IN")
	m.applyEvent(chaplet.Event{Kind: chaplet.EventSegmentStart, Index: 1, Total: 51, Label: "Glory Be"})
	if len(m.echoed) != 0 {
		t.Errorf("echo must reset on segment start, got %q", string(m.echoed))
	}
	if m.label != "Glory Be" || m.index != 1 {
		t.Errorf("segment state not applied: label=%q index=%d", m.label, m.index)
	}
}

func TestApplyEventCycleEndRests(t *testing.T) {
	m := NewModel(func() {})
	m.applyEvent(chaplet.Event{Kind: chaplet.EventCycleStart, Cycle: 2, Language: chaplet.English, Total: 51})
	if m.language != "english" || m.cycle != 2 {
		t.Fatalf("cycle state not applied: %q cycle %d", m.language, m.cycle)
	}
	m.applyEvent(chaplet.Event{Kind: chaplet.EventCycleEnd, Cycle: 2, Total: 51})
	if !m.resting {
		t.Errorf("cycle end should enter the resting state")
	}
	if !strings.Contains(m.View(), "Resting") {
		t.Errorf("resting view missing rest notice:\n%s", m.View())
	}
}

func TestEchoLineTruncatesLeft(t *testing.T) {
	m := NewModel(func() {})
	m.width = 20
	m.echoed = []rune("PER INTERCESSIONEM SANCTI MICHAELIS")
	line := m.echoLine()
	if !strings.HasPrefix(line, "…") {
		t.Errorf("long echo should be truncated from the left, got %q", line)
	}
	if !strings.HasSuffix(line, "MICHAELIS") {
		t.Errorf("echo should keep the newest characters, got %q", line)
	}
}

func TestQuitKeyCancelsOnce(t *testing.T) {
	calls := 0
	m := NewModel(func() { calls++ })
	quit := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	if _, cmd := m.Update(quit); cmd != nil {
		t.Errorf("quit key must wait for DoneMsg, not quit the UI directly")
	}
	if _, cmd := m.Update(quit); cmd != nil {
		t.Errorf("second quit key should be a no-op")
	}
	if calls != 1 {
		t.Errorf("expected one cancellation, got %d", calls)
	}

	if _, cmd := m.Update(DoneMsg{}); cmd == nil {
		t.Errorf("DoneMsg must quit the UI")
	}
}
