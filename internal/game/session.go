// Package game drives a headless round of Blarbs: modes, the player and
// the chaser, catches and lives, and win detection. Time is a tick counter
// advanced by Step; there is no clock.
package game

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blarbs/internal/actor"
	"github.com/vovakirdan/blarbs/internal/arena"
	"github.com/vovakirdan/blarbs/internal/config"
	"github.com/vovakirdan/blarbs/internal/core"
	"github.com/vovakirdan/blarbs/internal/inspect"
	"github.com/vovakirdan/blarbs/internal/registry"
)

// Mode represents the session mode.
type Mode string

const (
	ModeIntro   Mode = "intro"
	ModePlaying Mode = "playing"
	ModeLost    Mode = "lost"
	ModeWon     Mode = "won"
)

// Variant names a rule set.
type Variant struct {
	ID    string
	Title string
	Claim string // overrides rules.claim when set
}

var (
	Classic = Variant{ID: "classic", Title: "Blarbs"}
	Open    = Variant{ID: "open", Title: "Blarbs (open claims)", Claim: "any"}
)

// Variants lists the shipped rule sets.
func Variants() []Variant {
	return []Variant{Classic, Open}
}

// LookupVariant finds a shipped variant by id.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants() {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func(opts registry.Options) (registry.Game, error) {
			return New(v, opts)
		})
	}
}

// ParseClaim converts a config claim name into a policy.
func ParseClaim(s string) (actor.ClaimPolicy, error) {
	switch s {
	case "", "primary":
		return actor.ClaimPrimaryOnly, nil
	case "any":
		return actor.ClaimAnyActor, nil
	default:
		return 0, fmt.Errorf("game: unknown claim policy %q", s)
	}
}

// Session is one arena with its actors. It is not safe for concurrent use.
type Session struct {
	sessionID  string
	variant    Variant
	cfg        config.Config
	rules      actor.Rules
	logger     *log.Logger
	difficulty *config.DifficultyManager

	arena  *arena.Arena
	player *actor.Actor
	chaser *actor.Actor
	brain  chaserBrain

	mode    Mode
	paused  bool
	tick    uint64
	lives   int
	score   int // boxes claimed by the player
	catches int
}

// New creates a session for the variant. The session starts in intro mode
// with seed 0; call Reset to reseed.
func New(v Variant, opts registry.Options) (*Session, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := cfg.ArenaLayout()
	if err != nil {
		return nil, err
	}

	claim := cfg.Rules.Claim
	if v.Claim != "" {
		claim = v.Claim
	}
	policy, err := ParseClaim(claim)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.NewString()
	s := &Session{
		sessionID:  id,
		variant:    v,
		cfg:        cfg,
		rules:      actor.Rules{Claim: policy},
		logger:     logger.With("session", id[:8], "variant", v.ID),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		arena:      arena.NewWithLayout(layout),
		player:     actor.New(actor.KindPlayer),
		chaser:     actor.New(actor.KindChaser),
	}
	s.Reset(core.DefaultConfig())
	return s, nil
}

// ID returns the variant identifier.
func (s *Session) ID() string {
	return s.variant.ID
}

// Title returns the display name.
func (s *Session) Title() string {
	return s.variant.Title
}

// SessionID returns the unique id of this session.
func (s *Session) SessionID() string {
	return s.sessionID
}

// Rules returns the movement rules in force.
func (s *Session) Rules() actor.Rules {
	return s.rules
}

// Reset reseeds the session and returns it to intro with a fresh arena.
func (s *Session) Reset(cfg core.RuntimeConfig) {
	s.brain = chaserBrain{
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		verticalBias: s.cfg.Chaser.VerticalBias,
	}
	s.tick = 0
	s.newRound()
	s.mode = ModeIntro
}

func (s *Session) newRound() {
	s.arena.Reset()
	s.player.Deactivate()
	s.chaser.Deactivate()
	s.paused = false
	s.lives = s.cfg.Rules.Lives
	s.score = 0
	s.catches = 0
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.tick++

	var events []core.Event
	switch s.mode {
	case ModeIntro:
		if in.Has(core.ActionStart) {
			s.spawnActors()
			events = s.setMode(ModePlaying, events)
		}
	case ModePlaying:
		if in.Has(core.ActionPause) {
			s.paused = !s.paused
		}
		if !s.paused {
			events = s.advance(in, events)
		}
	case ModeLost, ModeWon:
		if in.Has(core.ActionRestart) {
			s.newRound()
			events = s.setMode(ModeIntro, events)
		}
	}

	return core.StepResult{
		Tick:   s.tick,
		State:  s.State(),
		Events: events,
	}
}

// advance runs one playing tick: the player moves first, then the chaser,
// then the catch check.
func (s *Session) advance(in core.InputFrame, events []core.Event) []core.Event {
	dir := in.Direction()
	if dir == core.DirNone {
		dir = s.player.NextDir
	}
	if dir != core.DirNone {
		events = s.move(s.player, dir, events)
		s.player.NextDir = core.DirNone
	}
	if s.mode != ModePlaying || !s.chaser.Active {
		return events
	}

	chase := s.difficulty.ChaseProbability(s.cfg.Chaser.ChaseProbability, s.score, s.tick)
	s.chaser.NextDir = s.brain.next(s.arena, s.chaser, s.player, chase)
	events = s.move(s.chaser, s.chaser.NextDir, events)
	if s.mode != ModePlaying {
		return events
	}

	if s.chaser.Pos() == s.player.Pos() {
		events = s.caught(events)
	}
	return events
}

func (s *Session) move(a *actor.Actor, d core.Dir, events []core.Event) []core.Event {
	res := s.rules.ApplyMove(s.arena, a, d)
	if !res.Moved {
		return events
	}

	events = append(events, res.Events...)
	events = append(events, ActorMovedEvent{Kind: a.Kind, From: res.From, To: res.To})

	if res.Boxed {
		if a.Kind.Primary() {
			s.score++
		}
		s.logger.Debug("box claimed", "by", a.Kind, "at", res.Box.Center(), "score", s.score)
		events = s.checkWin(events)
	}
	return events
}

func (s *Session) caught(events []core.Event) []core.Event {
	s.catches++
	if s.lives > 0 {
		s.lives--
	}
	at := s.player.Pos()
	events = append(events, CaughtEvent{At: at, LivesLeft: s.lives})
	s.logger.Debug("caught", "at", at, "lives", s.lives)

	if s.cfg.Rules.Lives > 0 && s.lives == 0 {
		s.player.Deactivate()
		s.chaser.Deactivate()
		return s.setMode(ModeLost, events)
	}
	s.spawnActors()
	return events
}

func (s *Session) checkWin(events []core.Event) []core.Event {
	if s.mode != ModePlaying || len(s.arena.ClaimableQuads()) > 0 {
		return events
	}
	return s.setMode(ModeWon, events)
}

func (s *Session) spawnActors() {
	p := s.cfg.Spawn.Player
	s.player.Spawn(p.X(), p.Y())
	if s.cfg.Chaser.Disabled {
		s.chaser.Deactivate()
		return
	}
	c := s.cfg.Spawn.Chaser
	s.chaser.Spawn(c.X(), c.Y())
}

func (s *Session) setMode(m Mode, events []core.Event) []core.Event {
	if s.mode == m {
		return events
	}
	from := s.mode
	s.mode = m
	s.logger.Debug("mode", "from", from, "to", m, "tick", s.tick)
	return append(events, ModeChangedEvent{From: from, To: m})
}

// Queue buffers a direction for the player's next move. A direction held
// in the input frame takes precedence.
func (s *Session) Queue(d core.Dir) {
	s.player.NextDir = d
}

// Rotate toggles a stick directly. No box check is made.
func (s *Session) Rotate(x, y int) []core.Event {
	if !s.arena.RotateStickAt(x, y) {
		return nil
	}
	return []core.Event{s.arena.StickChangedAt(core.C(x, y))}
}

// Freeze freezes a stick directly. While playing this can end the round
// when it leaves no claimable quad.
func (s *Session) Freeze(x, y int) []core.Event {
	if !arena.IsStickPoint(x, y) || s.arena.StickAt(x, y).IsNone() || s.arena.IsFrozenAt(x, y) {
		return nil
	}
	s.arena.FreezeStickAt(x, y)
	events := []core.Event{s.arena.StickChangedAt(core.C(x, y))}
	return s.checkWin(events)
}

// Thaw clears a stick's frozen flag directly.
func (s *Session) Thaw(x, y int) []core.Event {
	if !s.arena.IsFrozenAt(x, y) {
		return nil
	}
	s.arena.ThawStickAt(x, y)
	return []core.Event{s.arena.StickChangedAt(core.C(x, y))}
}

// Render draws a diagnostic view of the arena and actors.
func (s *Session) Render(dst *core.Screen) {
	inspect.Draw(dst, s.arena, s.player, s.chaser)
}

// State returns the current game state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Lives:    s.lives,
		Mode:     string(s.mode),
		GameOver: s.mode == ModeLost || s.mode == ModeWon,
		Paused:   s.paused,
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Arena returns the live arena. Callers must not mutate it between ticks.
func (s *Session) Arena() *arena.Arena {
	return s.arena
}

// Player returns a copy of the player actor.
func (s *Session) Player() actor.Actor {
	return *s.player
}

// Chaser returns a copy of the chaser actor.
func (s *Session) Chaser() actor.Actor {
	return *s.chaser
}

var _ registry.Game = (*Session)(nil)
