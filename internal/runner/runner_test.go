package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc2024/internal/config"
	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

type memRecorder struct {
	outcomes []PartOutcome
	err      error
}

func (m *memRecorder) RecordPart(o PartOutcome) error {
	m.outcomes = append(m.outcomes, o)
	return m.err
}

func lengthSolver(input string) (core.Answer, error) {
	return core.Some(uint64(len(input))), nil
}

func quietLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func testDay() registry.Day {
	return registry.Day{
		ID:    "day99",
		Title: "Test Day",
		Part1: registry.Part{Solve: lengthSolver, Expected: core.Some(5)},
		Part2: registry.Part{Expected: core.Some(1)},
		Input: "hello",
	}
}

func TestClassify(t *testing.T) {
	parseErr := errors.New("bad input")

	tests := []struct {
		name     string
		answer   core.Answer
		expected core.Answer
		err      error
		want     Status
	}{
		{"match", core.Some(11), core.Some(11), nil, StatusPass},
		{"mismatch", core.Some(12), core.Some(11), nil, StatusFail},
		{"computed zero vs expected", core.Some(0), core.Some(11), nil, StatusFail},
		{"no expected", core.Some(12), core.None(), nil, StatusUnchecked},
		{"not implemented", core.None(), core.Some(11), nil, StatusNotImplemented},
		{"error wins", core.None(), core.Some(11), parseErr, StatusError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.answer, tt.expected, tt.err); got != tt.want {
				t.Errorf("classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunDay(t *testing.T) {
	var logs bytes.Buffer
	rec := &memRecorder{}
	r := New(quietLogger(&logs), rec)

	day := testDay()
	out := r.RunDay(day, Input{
		Text:     day.Input,
		Source:   SourceEmbedded,
		Expected: [2]core.Answer{day.Part1.Expected, day.Part2.Expected},
	})

	if out.DayID != "day99" || out.Title != "Test Day" {
		t.Errorf("outcome = %s %q", out.DayID, out.Title)
	}

	p1, p2 := out.Parts[0], out.Parts[1]
	if p1.Part != 1 || p1.Status != StatusPass || p1.Answer.Value != 5 {
		t.Errorf("part 1 = %+v, want pass with 5", p1)
	}
	if p2.Part != 2 || p2.Status != StatusNotImplemented {
		t.Errorf("part 2 = %+v, want not implemented", p2)
	}
	if out.Passed() != 1 {
		t.Errorf("Passed() = %d, want 1", out.Passed())
	}

	if len(rec.outcomes) != 2 {
		t.Fatalf("recorded %d outcomes, want 2", len(rec.outcomes))
	}
	if rec.outcomes[0].Source != SourceEmbedded {
		t.Errorf("recorded source = %q", rec.outcomes[0].Source)
	}
	if !strings.Contains(logs.String(), "part finished") {
		t.Errorf("expected debug log, got %q", logs.String())
	}
}

func TestRunDayErrorDoesNotStopOtherPart(t *testing.T) {
	var logs bytes.Buffer
	r := New(quietLogger(&logs), nil)

	day := registry.Day{
		ID: "day98",
		Part1: registry.Part{Solve: func(string) (core.Answer, error) {
			return core.None(), errors.New("malformed")
		}},
		Part2: registry.Part{Solve: lengthSolver},
	}

	out := r.RunDay(day, Input{Text: "abc"})
	if out.Parts[0].Status != StatusError || out.Parts[0].Err == nil {
		t.Errorf("part 1 = %+v, want error", out.Parts[0])
	}
	if out.Parts[1].Status != StatusUnchecked || out.Parts[1].Answer.Value != 3 {
		t.Errorf("part 2 = %+v, want unchecked 3", out.Parts[1])
	}
	if !strings.Contains(logs.String(), "malformed") {
		t.Errorf("expected error to be logged, got %q", logs.String())
	}
}

func TestRecorderFailureIsNotFatal(t *testing.T) {
	var logs bytes.Buffer
	rec := &memRecorder{err: errors.New("disk full")}
	r := New(quietLogger(&logs), rec)

	out := r.RunDay(testDay(), Input{Text: "hello", Expected: [2]core.Answer{core.Some(5)}})
	if out.Parts[0].Status != StatusPass {
		t.Errorf("part 1 status = %v, want pass", out.Parts[0].Status)
	}
	if !strings.Contains(logs.String(), "could not record run") {
		t.Errorf("expected recorder warning, got %q", logs.String())
	}
}

func TestResolveInputEmbedded(t *testing.T) {
	cfg := config.Default()
	cfg.InputsDir = t.TempDir() // no day99.txt there

	in, err := ResolveInput(testDay(), cfg, "")
	if err != nil {
		t.Fatalf("ResolveInput() failed: %v", err)
	}
	if in.Source != SourceEmbedded || in.Text != "hello" {
		t.Errorf("input = %+v, want embedded hello", in)
	}
	if !in.Expected[0].Equal(core.Some(5)) || !in.Expected[1].Equal(core.Some(1)) {
		t.Errorf("expected = %v, want registered answers", in.Expected)
	}
}

func TestResolveInputFromInputsDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day99.txt")
	if err := os.WriteFile(path, []byte("personal input"), 0o644); err != nil {
		t.Fatal(err)
	}

	part2 := uint64(42)
	cfg := config.Default()
	cfg.InputsDir = dir
	cfg.Days["day99"] = config.DayConfig{Part2: &part2}

	in, err := ResolveInput(testDay(), cfg, "")
	if err != nil {
		t.Fatalf("ResolveInput() failed: %v", err)
	}
	if in.Source != path || in.Text != "personal input" {
		t.Errorf("input = %+v, want %s", in, path)
	}
	// Registered answers belong to the embedded input only
	if in.Expected[0].Set {
		t.Errorf("part 1 expected = %v, want none", in.Expected[0])
	}
	if !in.Expected[1].Equal(core.Some(42)) {
		t.Errorf("part 2 expected = %v, want 42", in.Expected[1])
	}
}

func TestResolveInputExplicitPath(t *testing.T) {
	dir := t.TempDir()
	explicit := filepath.Join(dir, "custom.txt")
	if err := os.WriteFile(explicit, []byte("custom"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Days["day99"] = config.DayConfig{Input: filepath.Join(dir, "configured.txt")}

	in, err := ResolveInput(testDay(), cfg, explicit)
	if err != nil {
		t.Fatalf("ResolveInput() failed: %v", err)
	}
	if in.Text != "custom" {
		t.Errorf("Text = %q, want explicit file content", in.Text)
	}

	if _, err := ResolveInput(testDay(), cfg, ""); err == nil {
		t.Error("ResolveInput() with missing configured file should fail")
	}
}

func TestStatusString(t *testing.T) {
	statuses := map[Status]string{
		StatusPass:           "pass",
		StatusFail:           "fail",
		StatusUnchecked:      "unchecked",
		StatusNotImplemented: "not_implemented",
		StatusError:          "error",
		Status(99):           "unknown",
	}
	for s, want := range statuses {
		if s.String() != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
