package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aoc2024/internal/registry"
)

// MenuModel is the Bubble Tea model for the day picker.
type MenuModel struct {
	days        []registry.DayInfo
	cursor      int
	width       int
	height      int
	quitting    bool
	selected    *registry.DayInfo // Set when user picks a day
	runAll      bool
	openHistory bool
}

// NewMenuModel creates a menu over the given days.
func NewMenuModel(days []registry.DayInfo, width, height int) MenuModel {
	return MenuModel{
		days:   days,
		width:  width,
		height: height,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.days)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.days) > 0 {
			selected := m.days[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionRunAll:
		if len(m.days) > 0 {
			m.runAll = true
			return m, tea.Quit
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render(centerText("  ADVENT OF CODE 2024  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a day", m.width))
	b.WriteString("\n\n")

	if len(m.days) == 0 {
		b.WriteString(centerText("No days registered", m.width))
		b.WriteString("\n")
	}

	for i, d := range m.days {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s  %s", cursor, d.ID, d.Title)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Run  |  A: Run all  |  Tab: History  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	DayID       string
	RunAll      bool
	OpenHistory bool
	Quit        bool
}

// Result converts the final model state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	switch {
	case m.openHistory:
		return MenuResult{OpenHistory: true}
	case m.runAll:
		return MenuResult{RunAll: true}
	case m.selected != nil:
		return MenuResult{DayID: m.selected.ID}
	default:
		return MenuResult{Quit: true}
	}
}

// RunMenu shows the day picker and returns what the user chose.
func RunMenu(days []registry.DayInfo) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(days, 80, 24),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	return m.Result(), nil
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
