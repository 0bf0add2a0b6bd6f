// Package monitor provides the Bubble Tea live transmission view.
package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/quisutdeus/chaplet/internal/chaplet"
)

// EventMsg carries a sequencer event into the UI.
type EventMsg chaplet.Event

// EchoMsg carries one transmitted character into the UI.
type EchoMsg rune

// DoneMsg reports that the prayer loop has stopped.
type DoneMsg struct {
	Err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	segmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	echoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	restStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
)

// Model implements the Bubble Tea monitor UI. The prayer loop runs in a
// separate goroutine and feeds the model through EventMsg/EchoMsg; the UI
// only observes and can request cancellation.
type Model struct {
	cancel func()

	width  int
	height int

	cycle    int64
	language string
	label    string
	index    int
	total    int
	echoed   []rune
	resting  bool

	quitting bool
	err      error

	bar progress.Model
}

// NewModel constructs a monitor model. cancel stops the prayer loop; the
// UI exits once the loop reports DoneMsg.
func NewModel(cancel func()) *Model {
	bar := progress.New(progress.WithDefaultGradient())
	return &Model{cancel: cancel, bar: bar}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := m.width - 8
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth > 0 {
			m.bar.Width = barWidth
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.quitting {
				m.quitting = true
				m.cancel()
			}
			return m, nil
		default:
			return m, nil
		}
	case EventMsg:
		m.applyEvent(chaplet.Event(msg))
		return m, nil
	case EchoMsg:
		m.echoed = append(m.echoed, rune(msg))
		return m, nil
	case DoneMsg:
		m.err = msg.Err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m *Model) applyEvent(ev chaplet.Event) {
	switch ev.Kind {
	case chaplet.EventCycleStart:
		m.cycle = ev.Cycle
		m.language = ev.Language.String()
		m.total = ev.Total
		m.index = 0
		m.label = ""
		m.echoed = nil
		m.resting = false
	case chaplet.EventSegmentStart:
		m.index = ev.Index
		m.label = ev.Label
		m.echoed = nil
		m.resting = false
	case chaplet.EventSegmentEnd:
		m.index = ev.Index
	case chaplet.EventCycleEnd:
		m.resting = true
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CHAPLET OF ST. MICHAEL"))
	b.WriteString("\n")
	if m.cycle > 0 {
		b.WriteString(headerStyle.Render(fmt.Sprintf("Cycle %d · %s", m.cycle, m.language)))
	} else {
		b.WriteString(headerStyle.Render("Waiting for first cycle..."))
	}
	b.WriteString("\n\n")

	switch {
	case m.quitting:
		b.WriteString(restStyle.Render("Interrupted; sending final invocation..."))
		b.WriteString("\n")
	case m.resting:
		b.WriteString(restStyle.Render("Cycle complete. Resting before the next one."))
		b.WriteString("\n")
	case m.label != "":
		b.WriteString(segmentStyle.Render(fmt.Sprintf("[%d/%d] %s", m.index+1, m.total, m.label)))
		b.WriteString("\n")
		b.WriteString(echoStyle.Render(m.echoLine()))
		b.WriteString("\n")
	}

	if m.total > 0 && !m.resting && !m.quitting {
		b.WriteString("\n")
		b.WriteString(m.bar.ViewAs(float64(m.index+1) / float64(m.total)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render("q: stop praying and shut down"))
	b.WriteString("\n")
	return b.String()
}

// echoLine shows the tail of the characters keyed so far, trimmed to the
// terminal width.
func (m *Model) echoLine() string {
	line := string(m.echoed)
	width := m.width - 2
	if width <= 0 {
		width = 78
	}
	if runewidth.StringWidth(line) <= width {
		return line
	}
	runes := []rune(line)
	for runewidth.StringWidth(string(runes)) > width-1 && len(runes) > 0 {
		runes = runes[1:]
	}
	return "…" + string(runes)
}

// Err reports the loop error observed at shutdown, if any.
func (m *Model) Err() error {
	return m.err
}
