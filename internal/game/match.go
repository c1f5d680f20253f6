package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/events"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// ErrHumanTurn is returned by Play when the active seat is not automated.
var ErrHumanTurn = errors.New("active player is not automated")

// Decider chooses and applies a decision for the active player.
type Decider interface {
	PlanAndApply(gs *GameState) Option
}

// Match drives a GameState on behalf of a front end: it forwards inputs,
// logs and publishes what changed and keeps the phase transition history.
type Match struct {
	id      string
	gs      *GameState
	logger  zerolog.Logger
	bus     *events.EventBus
	history *states.History
}

func (m *Match) ID() string            { return m.id }
func (m *Match) State() *GameState     { return m.gs }
func (m *Match) Bus() *events.EventBus { return m.bus }
func (m *Match) IsOver() bool          { return m.gs.phase.IsTerminal() }

// History returns the recorded phase transitions, oldest first.
func (m *Match) History() []states.Transition {
	return m.history.Entries()
}

type observation struct {
	version uint64
	phase   states.GamePhase
	active  int
	turn    int
	offer   []cards.Card
}

func (m *Match) observe() observation {
	return observation{
		version: m.gs.version,
		phase:   m.gs.phase,
		active:  m.gs.active,
		turn:    m.gs.turn,
		offer:   m.gs.Offer(),
	}
}

// Apply forwards a selection and reports whether the state accepted it.
func (m *Match) Apply(sel Selection) bool {
	before := m.observe()
	m.gs.Apply(sel)
	cardSlot := -1
	if sel.Kind == SelectCard {
		cardSlot = sel.Index
	}
	return m.record(before, "selection "+sel.String(), cardSlot)
}

// EndAction forwards an end-of-action request.
func (m *Match) EndAction() bool {
	before := m.observe()
	m.gs.EndAction()
	return m.record(before, "end action", -1)
}

// Step lets d decide for the active player. It does nothing and returns
// false when the match is over or the active seat is human.
func (m *Match) Step(d Decider) (Option, bool) {
	if m.IsOver() || m.gs.players[m.gs.active].Kind != Automated {
		return Option{}, false
	}
	before := m.observe()
	opt := d.PlanAndApply(m.gs)
	cardSlot := -1
	if opt.Kind == OptionCard && len(opt.Steps) > 0 {
		cardSlot = opt.Steps[0].Index
	}
	m.record(before, "planner "+opt.String(), cardSlot)
	return opt, true
}

// Play steps automated players until the match ends or a human seat is
// to act. It returns ErrHumanTurn in the latter case.
func (m *Match) Play(ctx context.Context, d Decider) error {
	for !m.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := m.Step(d); !ok {
			return fmt.Errorf("seat %d: %w", m.gs.active, ErrHumanTurn)
		}
	}
	return nil
}

func (m *Match) record(before observation, reason string, cardSlot int) bool {
	gs := m.gs
	if gs.version == before.version {
		m.logger.Debug().
			Int("player", before.active).
			Str("phase", before.phase.String()).
			Str("reason", reason).
			Msg("Selection ignored")
		m.bus.Publish(events.NewSelectionIgnoredEvent(m.id, before.active, before.phase.String(), reason))
		return false
	}

	if before.phase == states.PickCard && cardSlot >= 0 && cardSlot < len(before.offer) {
		c := before.offer[cardSlot]
		m.bus.Publish(events.NewCardPickedEvent(m.id, before.active, c.Good, c.Quantity, c.Cost))
	}

	if gs.phase != before.phase || gs.active != before.active {
		t := states.Transition{From: before.phase, To: gs.phase, Player: before.active, Turn: before.turn, Reason: reason}
		if !m.history.Record(t) {
			m.logger.Warn().
				Str("from_phase", t.From.String()).
				Str("to_phase", t.To.String()).
				Msg("Unexpected phase transition")
		}
		m.logger.Debug().
			Str("from_phase", t.From.String()).
			Str("to_phase", t.To.String()).
			Int("player", gs.active).
			Str("reason", reason).
			Msg("Phase changed")
		m.bus.Publish(events.NewPhaseChangedEvent(m.id, t.From.String(), t.To.String(), gs.active, reason))
	}

	if gs.active != before.active && !gs.phase.IsTerminal() {
		m.bus.Publish(events.NewTurnAdvancedEvent(m.id, gs.turn, gs.active))
	}

	if gs.phase.IsTerminal() && !before.phase.IsTerminal() {
		scores := make([]int, len(gs.players))
		for i, p := range gs.players {
			scores[i] = p.Score
		}
		m.logger.Info().
			Ints("winners", gs.winners).
			Ints("scores", scores).
			Int("turn", gs.turn).
			Uint64("state_hash", gs.Hash()).
			Msg("Match ended")
		m.bus.Publish(events.NewMatchEndedEvent(m.id, gs.Winners(), scores, gs.turn))
	}
	return true
}
