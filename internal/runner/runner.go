// Package runner executes registered puzzle days, compares their answers
// with the expected ones and reports the outcome of each part.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc2024/internal/config"
	"github.com/vovakirdan/aoc2024/internal/core"
	"github.com/vovakirdan/aoc2024/internal/registry"
)

// SourceEmbedded marks the default input compiled into the binary.
const SourceEmbedded = "embedded"

// Status classifies the outcome of one part.
type Status int

const (
	StatusPass           Status = iota // Answer equals the expected answer
	StatusFail                         // Answer differs from the expected answer
	StatusUnchecked                    // Answer computed, nothing to compare with
	StatusNotImplemented               // Solver returned no answer
	StatusError                        // Solver rejected the input
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusUnchecked:
		return "unchecked"
	case StatusNotImplemented:
		return "not_implemented"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Input is the text fed to a day together with the answers expected for it.
type Input struct {
	Text     string
	Source   string
	Expected [2]core.Answer
}

// PartOutcome is the result of running one part.
type PartOutcome struct {
	DayID    string
	Part     int // 1 or 2
	Answer   core.Answer
	Expected core.Answer
	Status   Status
	Duration time.Duration
	Source   string
	Err      error
}

// DayOutcome groups the outcomes of both parts of a day.
type DayOutcome struct {
	DayID string
	Title string
	Parts [2]PartOutcome
}

// Passed returns the number of parts whose answer matched.
func (d DayOutcome) Passed() int {
	n := 0
	for _, p := range d.Parts {
		if p.Status == StatusPass {
			n++
		}
	}
	return n
}

// Recorder persists part outcomes. storage.Store implements it.
type Recorder interface {
	RecordPart(o PartOutcome) error
}

// Runner runs days and optionally records their outcomes.
type Runner struct {
	logger   *log.Logger
	recorder Recorder
}

// New creates a runner. A nil recorder disables recording.
func New(logger *log.Logger, recorder Recorder) *Runner {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Runner{logger: logger, recorder: recorder}
}

// RunDay runs both parts of a day against input. A failing part never
// prevents the other from running.
func (r *Runner) RunDay(day registry.Day, in Input) DayOutcome {
	out := DayOutcome{DayID: day.ID, Title: day.Title}
	for i, part := range day.Parts() {
		out.Parts[i] = r.runPart(day.ID, i+1, part.Solve, in, in.Expected[i])
	}
	return out
}

func (r *Runner) runPart(dayID string, num int, solve registry.Solver, in Input, expected core.Answer) PartOutcome {
	o := PartOutcome{
		DayID:    dayID,
		Part:     num,
		Expected: expected,
		Source:   in.Source,
	}

	start := time.Now()
	if solve == nil {
		o.Answer = core.None()
	} else {
		o.Answer, o.Err = solve(in.Text)
	}
	o.Duration = time.Since(start)
	o.Status = classify(o.Answer, expected, o.Err)

	r.logger.Debug("part finished",
		"day", dayID,
		"part", num,
		"status", o.Status,
		"answer", o.Answer,
		"duration", o.Duration,
	)
	if o.Err != nil {
		r.logger.Error("solver rejected input", "day", dayID, "part", num, "source", in.Source, "error", o.Err)
	}

	if r.recorder != nil {
		if err := r.recorder.RecordPart(o); err != nil {
			r.logger.Warn("could not record run", "day", dayID, "part", num, "error", err)
		}
	}
	return o
}

func classify(answer, expected core.Answer, err error) Status {
	switch {
	case err != nil:
		return StatusError
	case !answer.Set:
		return StatusNotImplemented
	case !expected.Set:
		return StatusUnchecked
	case answer.Equal(expected):
		return StatusPass
	default:
		return StatusFail
	}
}

// ResolveInput picks the input for a day.
// Order: explicit path -> configured day input -> <inputs_dir>/<day>.txt -> embedded default.
// Expected answers for files come from the day's configuration; the embedded
// input uses the answers registered with the day.
func ResolveInput(day registry.Day, cfg config.Config, path string) (Input, error) {
	dayCfg := cfg.Day(day.ID)

	if path == "" {
		path = dayCfg.Input
	}
	if path == "" && cfg.InputsDir != "" {
		candidate := filepath.Join(cfg.InputsDir, day.ID+".txt")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	if path == "" {
		return Input{
			Text:     day.Input,
			Source:   SourceEmbedded,
			Expected: [2]core.Answer{day.Part1.Expected, day.Part2.Expected},
		}, nil
	}

	expanded, err := config.ExpandHome(path)
	if err != nil {
		return Input{}, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return Input{}, fmt.Errorf("runner: cannot read input for %s: %w", day.ID, err)
	}

	return Input{
		Text:     string(data),
		Source:   expanded,
		Expected: [2]core.Answer{optional(dayCfg.Part1), optional(dayCfg.Part2)},
	}, nil
}

func optional(v *uint64) core.Answer {
	if v == nil {
		return core.None()
	}
	return core.Some(*v)
}
