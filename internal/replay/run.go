package replay

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blarbs/internal/config"
	"github.com/vovakirdan/blarbs/internal/core"
	"github.com/vovakirdan/blarbs/internal/game"
	"github.com/vovakirdan/blarbs/internal/inspect"
	"github.com/vovakirdan/blarbs/internal/registry"
)

// StepReport records what one step did.
type StepReport struct {
	Index  int
	Step   Step
	Tick   uint64
	Events []core.Event
}

// Report is the outcome of a run.
type Report struct {
	SessionID string
	Steps     []StepReport
	Final     game.Snapshot
	State     core.GameState
	Stats     inspect.Stats
}

// NewSession builds the session a script asks for: its variant and seed on
// top of cfg, with the chaser only when the script enables it.
func NewSession(sc Script, cfg config.Config, logger *log.Logger) (*game.Session, error) {
	v, ok := game.LookupVariant(sc.Variant)
	if !ok {
		return nil, fmt.Errorf("replay: unknown variant %q", sc.Variant)
	}

	cfg.Chaser.Disabled = !sc.Chaser
	s, err := game.New(v, registry.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	s.Reset(core.RuntimeConfig{Seed: sc.Seed})
	return s, nil
}

// Run executes every step in order. On a failed expectation it stops and
// returns the report so far along with an error naming the step.
func Run(s *game.Session, sc Script) (Report, error) {
	rep := Report{SessionID: s.SessionID()}

	for i, st := range sc.Steps {
		sr := StepReport{Index: i, Step: st}

		switch st.Op {
		case OpStart:
			sr.Events = s.Step(core.FrameFor(core.ActionStart)).Events
		case OpRestart:
			sr.Events = s.Step(core.FrameFor(core.ActionRestart)).Events
		case OpPause:
			sr.Events = s.Step(core.FrameFor(core.ActionPause)).Events
		case OpMove, OpMoves:
			for _, d := range st.Dirs {
				sr.Events = append(sr.Events, s.Step(core.FrameFor(core.ActionForDir(d))).Events...)
			}
		case OpWait:
			for n := 0; n < st.N; n++ {
				sr.Events = append(sr.Events, s.Step(core.NewInputFrame()).Events...)
			}
		case OpRotate:
			sr.Events = s.Rotate(st.At.X, st.At.Y)
		case OpFreeze:
			sr.Events = s.Freeze(st.At.X, st.At.Y)
		case OpThaw:
			sr.Events = s.Thaw(st.At.X, st.At.Y)
		case OpExpect:
			if err := check(s, st.Expect); err != nil {
				rep.finish(s)
				return rep, fmt.Errorf("replay: step %d (line %d): %w", i, st.Line, err)
			}
		}

		sr.Tick = s.Snapshot().Tick
		rep.Steps = append(rep.Steps, sr)
	}

	rep.finish(s)
	return rep, nil
}

func (r *Report) finish(s *game.Session) {
	r.Final = s.Snapshot()
	r.State = s.State()
	r.Stats = inspect.Summarize(s.Arena())
}

func check(s *game.Session, e Expect) error {
	var errs []error
	snap := s.Snapshot()
	stats := inspect.Summarize(s.Arena())

	if e.Player != nil {
		want := core.C(e.Player.X(), e.Player.Y())
		if snap.Player != want {
			errs = append(errs, fmt.Errorf("player at %v, expected %v", snap.Player, want))
		}
	}
	if e.Mode != "" && string(snap.Mode) != e.Mode {
		errs = append(errs, fmt.Errorf("mode %s, expected %s", snap.Mode, e.Mode))
	}
	if e.Score != nil && snap.Score != *e.Score {
		errs = append(errs, fmt.Errorf("score %d, expected %d", snap.Score, *e.Score))
	}
	if e.Boxes != nil && stats.Boxes != *e.Boxes {
		errs = append(errs, fmt.Errorf("boxes %d, expected %d", stats.Boxes, *e.Boxes))
	}
	if e.Frozen != nil && stats.Frozen != *e.Frozen {
		errs = append(errs, fmt.Errorf("frozen sticks %d, expected %d", stats.Frozen, *e.Frozen))
	}
	if e.Lives != nil && snap.Lives != *e.Lives {
		errs = append(errs, fmt.Errorf("lives %d, expected %d", snap.Lives, *e.Lives))
	}
	return errors.Join(errs...)
}
