package game

import (
	"github.com/rs/zerolog"

	"github.com/iburimskiy/simon-says/internal/config"
	"github.com/iburimskiy/simon-says/internal/score"
)

type Phase uint8

const (
	ShowingPattern Phase = iota
	AwaitingInput
	GameOver
)

func (p Phase) String() string {
	switch p {
	case ShowingPattern:
		return "showing-pattern"
	case AwaitingInput:
		return "awaiting-input"
	case GameOver:
		return "game-over"
	default:
		return "invalid"
	}
}

// Input is one already-resolved input sample, delivered once per tick.
type Input struct {
	Pressed bool
	X, Y    int

	// Current viewport size; the window may have been resized mid-run.
	Width, Height int
}

type CueKind uint8

const (
	CueNone CueKind = iota
	CueShow         // a pattern element became visible
	CueHit          // the player pressed the expected quadrant
	CueMiss         // the player pressed a wrong quadrant
)

// Cue is a one-tick event the adapter may turn into sound.
type Cue struct {
	Kind     CueKind
	Quadrant Quadrant
}

// Frame is the presentation state produced by a step.
type Frame struct {
	Phase      Phase
	Highlight  Highlight
	Score      int
	HighScores []score.Rank
	Cue        Cue
}

// Saver persists the high-score table.
type Saver interface {
	Save(score.Table) error
}

type Options struct {
	Logger *zerolog.Logger
	// Seed is called at every run start; nil means TimeSeed.
	Seed func() uint64
	// Store is written whenever a run enters the table; nil disables persistence.
	Store Saver
}

// Machine owns one game: the current run's pattern and round state plus the
// high-score table. It is driven by Step and is not safe for concurrent use.
type Machine struct {
	log    zerolog.Logger
	gen    *Generator
	store  Saver
	scores score.Table

	pattern   Pattern
	phase     Phase
	score     int
	tick      int
	highlight Highlight
	cue       Cue
}

func NewMachine(table score.Table, opts Options) *Machine {
	m := &Machine{
		log:    zerolog.Nop(),
		gen:    NewGenerator(opts.Seed),
		store:  opts.Store,
		scores: table,
	}
	if opts.Logger != nil {
		m.log = *opts.Logger
	}
	m.startRun()
	return m
}

func (m *Machine) Phase() Phase { return m.phase }
func (m *Machine) Score() int { return m.score }
func (m *Machine) Tick() int { return m.tick }
func (m *Machine) Highlight() Highlight { return m.highlight }
func (m *Machine) Pattern() Pattern { return m.pattern }
func (m *Machine) HighScores() score.Table { return m.scores }

// Frame returns the presentation state without advancing the game.
func (m *Machine) Frame() Frame {
	return Frame{
		Phase:      m.phase,
		Highlight:  m.highlight,
		Score:      m.score,
		HighScores: m.scores.Ranks(),
		Cue:        m.cue,
	}
}

// Step consumes one input sample and advances the game by one tick.
func (m *Machine) Step(in Input) Frame {
	m.cue = Cue{}

	// Pre-round delay: only the counter moves.
	if m.tick < 0 {
		m.tick++
		return m.Frame()
	}

	switch m.phase {
	case ShowingPattern:
		m.stepPattern()
	case AwaitingInput:
		m.stepInput(in)
	case GameOver:
		m.stepGameOver(in)
	}
	return m.Frame()
}

func (m *Machine) stepPattern() {
	h, show, done := PatternHighlight(&m.pattern, m.score, m.tick)
	if done {
		m.setPhase(AwaitingInput)
		m.tick = 0
		m.highlight = NoHighlight
		return
	}

	m.highlight = h
	if show {
		q, _ := h.Quadrant()
		m.cue = Cue{Kind: CueShow, Quadrant: q}
	}
	m.tick++
}

func (m *Machine) stepInput(in Input) {
	if !in.Pressed {
		return
	}

	pressed := PressedQuadrant(in.X, in.Y, in.Width, in.Height)
	m.highlight = Lit(pressed)

	if m.pattern.At(m.tick) != pressed {
		m.cue = Cue{Kind: CueMiss, Quadrant: pressed}
		m.endRun()
		return
	}

	m.cue = Cue{Kind: CueHit, Quadrant: pressed}
	m.tick++
	if m.tick < m.score+1 {
		return
	}

	m.score++
	if m.score >= m.pattern.Len() {
		// Nothing left to show.
		m.endRun()
		return
	}
	m.setPhase(ShowingPattern)
	m.tick = config.RoundDelay
	m.highlight = NoHighlight
}

func (m *Machine) stepGameOver(in Input) {
	if !in.Pressed {
		m.highlight = GameOverHighlight
		return
	}
	m.startRun()
}

func (m *Machine) startRun() {
	m.pattern = m.gen.Generate(config.MaxScore)
	m.score = 0
	m.tick = config.StartDelay
	m.highlight = NoHighlight
	m.setPhase(ShowingPattern)
}

func (m *Machine) endRun() {
	m.setPhase(GameOver)
	m.tick = 0
	m.highlight = NoHighlight

	place, ok := m.scores.Insert(m.score)
	if !ok {
		return
	}
	m.log.Info().Int("score", m.score).Int("place", place).Msg("new high score")
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.scores); err != nil {
		m.log.Error().Err(err).Msg("failed to save high scores")
	}
}

func (m *Machine) setPhase(p Phase) {
	m.log.Debug().
		Stringer("from", m.phase).
		Stringer("to", p).
		Int("score", m.score).
		Msg("phase change")
	m.phase = p
}
