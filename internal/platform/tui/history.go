package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aoc2024/internal/registry"
	"github.com/vovakirdan/aoc2024/internal/storage"
)

// allDays is the pseudo tab that lists runs of every day.
const allDays = "all"

// RunSource loads recorded runs. storage.Store implements it.
type RunSource interface {
	RecentRuns(dayID string, limit int) ([]storage.RunEntry, error)
}

// HistoryModel is the Bubble Tea model for the run history board.
type HistoryModel struct {
	tabs      []string // "all" followed by day IDs
	tabCursor int
	source    RunSource
	limit     int
	runs      []storage.RunEntry
	loadErr   error
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history board over the given days.
func NewHistoryModel(source RunSource, days []registry.DayInfo, limit, width, height int) HistoryModel {
	tabs := make([]string, 0, len(days)+1)
	tabs = append(tabs, allDays)
	for _, d := range days {
		tabs = append(tabs, d.ID)
	}

	m := HistoryModel{
		tabs:   tabs,
		source: source,
		limit:  limit,
		keys:   DefaultHistoryKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Day", Width: 7},
		{Title: "Part", Width: 5},
		{Title: "Status", Width: 16},
		{Title: "Answer", Width: 16},
		{Title: "Time", Width: 10},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// CurrentTab returns the day ID being shown, or "all".
func (m HistoryModel) CurrentTab() string {
	return m.tabs[m.tabCursor]
}

func (m *HistoryModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.source != nil {
		dayID := m.CurrentTab()
		if dayID == allDays {
			dayID = ""
		}
		m.runs, m.loadErr = m.source.RecentRuns(dayID, m.limit)
	}
	m.table.SetRows(HistoryRows(m.runs))
	m.table.GotoTop()
}

// HistoryRows converts run entries into table rows.
func HistoryRows(runs []storage.RunEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.DayID,
			strconv.Itoa(r.Part),
			r.Status,
			r.AnswerValue().String(),
			r.Duration.String(),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDay):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			m.tabCursor--
			if m.tabCursor < 0 {
				m.tabCursor = len(m.tabs) - 1
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(HistoryRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	title := fmt.Sprintf("RUN HISTORY - %s", m.CurrentTab())
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, id := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(id)
		} else {
			tabs[i] = tabStyle.Render(" " + id + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.source == nil:
		return emptyStyle.Render("Run history is disabled.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nRun a day to start the history!")
	}
	return m.table.View()
}

// GoingBack reports whether the user left the board with the back key.
func (m HistoryModel) GoingBack() bool {
	return m.goingBack
}

// RunHistory shows the history board. It returns true when the user
// pressed back rather than quit.
func RunHistory(source RunSource, days []registry.DayInfo, limit int) (bool, error) {
	p := tea.NewProgram(
		NewHistoryModel(source, days, limit, 100, 30),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(HistoryModel)
	return ok && m.GoingBack(), nil
}
