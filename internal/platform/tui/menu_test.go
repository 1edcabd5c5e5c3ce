package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aoc2024/internal/registry"
	"github.com/vovakirdan/aoc2024/internal/storage"
)

var testDays = []registry.DayInfo{
	{ID: "day01", Title: "Historian Hysteria"},
	{ID: "day02", Title: "Red-Nosed Reports"},
	{ID: "day03", Title: "Mull It Over"},
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m MenuModel, msgs ...tea.KeyMsg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey("a"), MenuActionRunAll},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestMenuSelectDay(t *testing.T) {
	m := NewMenuModel(testDays, 80, 24)
	m = press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected quit command after selection")
	}
	res := next.(MenuModel).Result()
	if res.DayID != "day02" || res.Quit {
		t.Errorf("Result() = %+v, expected day02", res)
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(testDays, 80, 24)
	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	for range 10 {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	if res := m.Result(); res.DayID != "day03" {
		t.Errorf("Result() = %+v, expected last day", res)
	}
}

func TestMenuOtherResults(t *testing.T) {
	if res := press(NewMenuModel(testDays, 80, 24), runeKey("a")).Result(); !res.RunAll {
		t.Errorf("run all: %+v", res)
	}
	if res := press(NewMenuModel(testDays, 80, 24), tea.KeyMsg{Type: tea.KeyTab}).Result(); !res.OpenHistory {
		t.Errorf("history: %+v", res)
	}
	if res := press(NewMenuModel(testDays, 80, 24), runeKey("q")).Result(); !res.Quit {
		t.Errorf("quit: %+v", res)
	}
	// Nothing to select in an empty menu
	if res := press(NewMenuModel(nil, 80, 24), tea.KeyMsg{Type: tea.KeyEnter}).Result(); !res.Quit {
		t.Errorf("empty menu: %+v", res)
	}
}

func TestMenuView(t *testing.T) {
	m := NewMenuModel(testDays, 80, 24)
	view := m.View()

	for _, want := range []string{"> day01  Historian Hysteria", "day03  Mull It Over", "Enter: Run"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	if got := press(m, runeKey("q")).View(); got != "" {
		t.Errorf("View() after quit = %q, expected empty", got)
	}
}

type fakeRuns struct {
	byDay map[string][]storage.RunEntry
	err   error
	asked []string
}

func (f *fakeRuns) RecentRuns(dayID string, limit int) ([]storage.RunEntry, error) {
	f.asked = append(f.asked, dayID)
	if f.err != nil {
		return nil, f.err
	}
	return f.byDay[dayID], nil
}

func TestHistoryTabs(t *testing.T) {
	now := time.Date(2024, 12, 3, 6, 0, 0, 0, time.UTC)
	src := &fakeRuns{byDay: map[string][]storage.RunEntry{
		"": {
			{DayID: "day01", Part: 1, Status: "pass", CreatedAt: now},
			{DayID: "day02", Part: 2, Status: "fail", CreatedAt: now},
		},
		"day01": {{DayID: "day01", Part: 1, Status: "pass", CreatedAt: now}},
	}}

	m := NewHistoryModel(src, testDays, 50, 100, 30)
	if m.CurrentTab() != "all" || len(m.runs) != 2 {
		t.Fatalf("initial tab = %s with %d runs", m.CurrentTab(), len(m.runs))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.CurrentTab() != "day01" || len(m.runs) != 1 {
		t.Errorf("after tab = %s with %d runs", m.CurrentTab(), len(m.runs))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	if m.CurrentTab() != "day03" {
		t.Errorf("wrap around = %s, expected day03", m.CurrentTab())
	}

	if len(src.asked) != 4 || src.asked[0] != "" || src.asked[1] != "day01" {
		t.Errorf("queries = %q", src.asked)
	}
}

func TestHistoryViewStates(t *testing.T) {
	if view := NewHistoryModel(nil, testDays, 10, 100, 30).View(); !strings.Contains(view, "disabled") {
		t.Errorf("nil source view = %q", view)
	}

	failing := &fakeRuns{err: errors.New("locked")}
	if view := NewHistoryModel(failing, testDays, 10, 100, 30).View(); !strings.Contains(view, "locked") {
		t.Errorf("error view = %q", view)
	}

	empty := &fakeRuns{}
	if view := NewHistoryModel(empty, testDays, 10, 100, 30).View(); !strings.Contains(view, "No runs recorded yet") {
		t.Errorf("empty view = %q", view)
	}
}

func TestHistoryBack(t *testing.T) {
	m := NewHistoryModel(&fakeRuns{}, testDays, 10, 100, 30)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !next.(HistoryModel).GoingBack() {
		t.Error("Expected esc to leave the board")
	}
}

func TestHistoryRows(t *testing.T) {
	runs := []storage.RunEntry{{
		DayID:     "day04",
		Part:      2,
		Status:    "unchecked",
		Duration:  2 * time.Millisecond,
		CreatedAt: time.Date(2024, 12, 4, 9, 30, 0, 0, time.UTC),
	}}
	runs[0].Answer.Int64, runs[0].Answer.Valid = 9, true

	rows := HistoryRows(runs)
	if len(rows) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(rows))
	}
	expected := []string{"day04", "2", "unchecked", "9", "2ms", "Dec 04 09:30"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("cell %d = %q, expected %q", i, rows[0][i], cell)
		}
	}

	runs[0].Answer.Valid = false
	if got := HistoryRows(runs)[0][3]; got != "-" {
		t.Errorf("missing answer cell = %q, expected -", got)
	}

	// Answers are stored as the bit pattern of a uint64
	runs[0].Answer.Int64, runs[0].Answer.Valid = -8589934591, true
	if got := HistoryRows(runs)[0][3]; got != "18446744065119617025" {
		t.Errorf("large answer cell = %q, expected 18446744065119617025", got)
	}
}
