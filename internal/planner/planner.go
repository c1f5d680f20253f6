// Package planner picks decisions for automated players by Monte-Carlo
// lookahead: every legal option is applied to a copy of the state and
// scored by random playouts to the end of the match.
package planner

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Continents/internal/game"
)

const (
	DefaultRollouts        = 20
	DefaultMaxPlayoutSteps = 5000
)

type Option func(p *Planner)

type Planner struct {
	rollouts int
	maxSteps int
	rng      *rand.Rand
	logger   zerolog.Logger
	metrics  MetricsCollector
	last     DecisionMetrics
}

// WithRollouts sets the number of playouts run per option.
func WithRollouts(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.rollouts = n
		}
	}
}

// WithMaxPlayoutSteps caps the length of a playout. A playout that hits the
// cap is scored on the standings at that point.
func WithMaxPlayoutSteps(n int) Option {
	return func(p *Planner) {
		if n > 0 {
			p.maxSteps = n
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(p *Planner) {
		if rng != nil {
			p.rng = rng
		}
	}
}

func WithSeed(seed int64) Option {
	return func(p *Planner) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger.With().Str("component", "Planner").Logger()
	}
}

func WithMetrics() Option {
	return func(p *Planner) {
		p.metrics = NewMetricsCollector()
	}
}

func New(options ...Option) *Planner {
	p := &Planner{ // Default values
		rollouts: DefaultRollouts,
		maxSteps: DefaultMaxPlayoutSteps,
		logger:   zerolog.Nop(),
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return p
}

// LastMetrics returns the metrics of the most recent decision. They stay
// zero unless the planner was built WithMetrics, and after a decision that
// needed no rollouts.
func (p *Planner) LastMetrics() DecisionMetrics {
	return p.last
}

// PlanAndApply chooses an option for the active player and applies it to gs.
func (p *Planner) PlanAndApply(gs *game.GameState) game.Option {
	opt := p.Choose(gs)
	if gs != nil {
		gs.ApplyOption(opt)
	}
	return opt
}

// Choose scores every legal option of gs and returns the one with the
// greatest total payoff, the earliest on ties. gs is left untouched. With
// nothing to choose from the answer is a pass.
func (p *Planner) Choose(gs *game.GameState) game.Option {
	p.last = DecisionMetrics{}
	if gs == nil || gs.Phase().IsTerminal() {
		return game.Pass()
	}
	opts := gs.LegalOptions()
	switch len(opts) {
	case 0:
		return game.Pass()
	case 1:
		return opts[0]
	}

	me := gs.ActivePlayer()
	p.metrics.Start()
	best, bestTotal := 0, -1
	for i, opt := range opts {
		after := gs.Clone()
		after.ApplyOption(opt)
		total := 0
		for r := 0; r < p.rollouts; r++ {
			total += p.playout(after.Clone(), me)
		}
		p.metrics.AddOption()
		if total > bestTotal {
			best, bestTotal = i, total
		}
	}
	p.last = p.metrics.Complete()

	p.logger.Debug().
		Int("player", me).
		Str("phase", gs.Phase().String()).
		Int("options", len(opts)).
		Str("chosen", opts[best].String()).
		Int("payoff", bestTotal).
		Int64("playouts", p.last.Playouts).
		Int64("cutoffs", p.last.Cutoffs).
		Dur("elapsed", p.last.Duration).
		Msg("Decision made")
	return opts[best]
}

// playout plays sim to the end with uniformly random options and returns
// the payoff for player me.
func (p *Planner) playout(sim *game.GameState, me int) int {
	for steps := 0; !sim.Phase().IsTerminal(); steps++ {
		if steps >= p.maxSteps {
			p.metrics.AddCutoff()
			return payoff(sim, sim.ProjectedWinners(), me)
		}
		opts := sim.LegalOptions()
		if len(opts) == 0 {
			return payoff(sim, sim.ProjectedWinners(), me)
		}
		sim.ApplyOption(opts[p.rng.Intn(len(opts))])
	}
	p.metrics.AddPlayout()
	return payoff(sim, sim.Winners(), me)
}

// payoff is twice the player's score for a sole win, the score for a shared
// win and nothing otherwise.
func payoff(gs *game.GameState, winners []int, me int) int {
	for _, w := range winners {
		if w != me {
			continue
		}
		pl, _ := gs.Player(me)
		if len(winners) == 1 {
			return 2 * pl.Score
		}
		return pl.Score
	}
	return 0
}
