package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	sparkChars          = " .:-=+*#%@"
	terminalWidthBackup = 80
)

// TerminalWidth reports the width of the attached terminal, or a backup
// value when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// RenderReport writes the transmission log report as plain text.
func RenderReport(w io.Writer, report Report, width int) error {
	if width <= 0 {
		width = terminalWidthBackup
	}

	totals := report.Totals
	if _, err := fmt.Fprintf(w, "Cycles: %d   Segments: %d   Characters: %d   Time keyed: %s\n",
		totals.Cycles, totals.Segments, totals.Chars, formatDuration(totals.DurationMs)); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}

	if len(report.Languages) > 0 {
		langs := make([]string, 0, len(report.Languages))
		for lang := range report.Languages {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		parts := make([]string, 0, len(langs))
		for _, lang := range langs {
			parts = append(parts, fmt.Sprintf("%s %d", lang, report.Languages[lang]))
		}
		if _, err := fmt.Fprintf(w, "Segments by language: %s\n", strings.Join(parts, ", ")); err != nil {
			return fmt.Errorf("failed to write language counts: %w", err)
		}
	}

	if len(report.Cycles) == 0 {
		_, err := fmt.Fprintln(w, "\nNo cycles logged yet.")
		return err
	}

	durations := CycleDurations(report.Cycles)
	if len(durations) > 1 {
		const sparkPrefix = "Cycle durations: "
		room := width - len(sparkPrefix)
		if room < 1 {
			room = 1
		}
		spark := durations
		if len(spark) > room {
			spark = spark[len(spark)-room:]
		}
		if _, err := fmt.Fprintf(w, "\n%s%s\n", sparkPrefix, Sparkline(spark)); err != nil {
			return fmt.Errorf("failed to write sparkline: %w", err)
		}
	}

	headers := []string{"Cycle", "Ended", "Language", "Segments", "Duration"}
	rows := make([][]string, 0, len(report.Cycles))
	for _, c := range report.Cycles {
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Number),
			c.EndedAt.Local().Format("2006-01-02 15:04"),
			c.Language,
			fmt.Sprintf("%d", c.Segments),
			formatDuration(c.DurationMs),
		})
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, line := range formatTable(headers, rows, map[int]bool{0: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write table: %w", err)
		}
	}
	return nil
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func formatDuration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
