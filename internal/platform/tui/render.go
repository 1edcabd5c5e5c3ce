package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aoc2024/internal/runner"
)

// statusStyles maps part statuses to lipgloss styles.
var statusStyles = map[runner.Status]lipgloss.Style{
	runner.StatusPass:           lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	runner.StatusFail:           lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	runner.StatusUnchecked:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	runner.StatusNotImplemented: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	runner.StatusError:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	durationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// StatusIcon returns the marker printed in front of a part line.
func StatusIcon(s runner.Status) string {
	switch s {
	case runner.StatusPass:
		return "✅"
	case runner.StatusUnchecked:
		return "--"
	default:
		return "❌"
	}
}

// FormatPart renders one part outcome as a single line.
// styled selects lipgloss colors; plain output is used for pipes and tests.
func FormatPart(o runner.PartOutcome, styled bool) string {
	name := fmt.Sprintf("Part%d", o.Part)

	var text string
	switch o.Status {
	case runner.StatusPass:
		text = fmt.Sprintf("%s: %s (same as expected)", name, o.Answer)
	case runner.StatusFail:
		text = fmt.Sprintf("%s: Expected %s but got %s !!", name, o.Expected, o.Answer)
	case runner.StatusUnchecked:
		text = fmt.Sprintf("%s: %s ?", name, o.Answer)
	case runner.StatusNotImplemented:
		text = fmt.Sprintf("%s: Not implemented", name)
	case runner.StatusError:
		text = fmt.Sprintf("%s: Invalid input: %v", name, o.Err)
	default:
		text = fmt.Sprintf("%s: %s", name, o.Status)
	}

	line := StatusIcon(o.Status) + " " + text
	if !styled {
		return line
	}
	return statusStyles[o.Status].Render(line) + " " + durationStyle.Render(o.Duration.String())
}

// FormatDay renders a day header followed by both part lines.
func FormatDay(d runner.DayOutcome, styled bool) string {
	var b strings.Builder

	header := fmt.Sprintf("=>> %s - %s", d.DayID, d.Title)
	if styled {
		header = headerStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	for _, p := range d.Parts {
		b.WriteString(FormatPart(p, styled))
		b.WriteString("\n")
	}
	return b.String()
}
