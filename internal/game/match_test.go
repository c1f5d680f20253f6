package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/events"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
	"github.com/mitchelldurbincs/Continents/internal/testutil"
)

type eventLog struct {
	events []events.Event
}

func (l *eventLog) ID() string                 { return "event-log" }
func (l *eventLog) InterestedIn(_ string) bool { return true }
func (l *eventLog) HandleEvent(e events.Event) { l.events = append(l.events, e) }

func (l *eventLog) ofType(eventType string) []events.Event {
	var out []events.Event
	for _, e := range l.events {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}

// firstOption always takes the first legal option.
type firstOption struct {
	calls int
}

func (f *firstOption) PlanAndApply(gs *GameState) Option {
	f.calls++
	opts := gs.LegalOptions()
	if len(opts) == 0 {
		return Pass()
	}
	gs.ApplyOption(opts[0])
	return opts[0]
}

func newTestMatch(t *testing.T, layout []string, players []Player) (*Match, *eventLog) {
	t.Helper()
	bus := events.NewEventBus(testutil.NopLogger())
	log := &eventLog{}
	bus.Subscribe(log)

	m, err := NewMatch(context.Background(), MatchConfig{
		Layout:   layout,
		Players:  players,
		Deck:     testutil.TestDeck(),
		Rng:      testutil.NewTestRNG(3),
		Logger:   testutil.NopLogger(),
		EventBus: bus,
	})
	require.NoError(t, err)
	return m, log
}

func TestNewMatch_Defaults(t *testing.T) {
	bus := events.NewEventBus(testutil.NopLogger())
	log := &eventLog{}
	bus.Subscribe(log)

	m, err := NewMatch(context.Background(), MatchConfig{
		Layout:   testutil.ScenarioLayout,
		Players:  testPlayers(3),
		Logger:   testutil.NopLogger(),
		EventBus: bus,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID())
	assert.Same(t, bus, m.Bus())
	assert.False(t, m.IsOver())
	// The built-in deck is dealt when none is given.
	assert.Len(t, m.State().Offer(), DefaultOfferSize)

	started := log.ofType(events.TypeMatchStarted)
	require.Len(t, started, 1)
	ev := started[0].(*events.MatchStartedEvent)
	assert.Equal(t, m.ID(), ev.MatchID())
	assert.Equal(t, []string{"p0", "p1", "p2"}, ev.Players)
	assert.Equal(t, 3, ev.Continents)
	assert.Equal(t, 10, ev.MaxTurns)
}

func TestNewMatch_Errors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMatch(ctx, MatchConfig{Layout: testutil.StripLayout, Players: testPlayers(2), Logger: testutil.NopLogger()})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewMatch(context.Background(), MatchConfig{Layout: testutil.StripLayout, Players: testPlayers(1), Logger: testutil.NopLogger()})
	assert.ErrorIs(t, err, ErrTooFewPlayers)
}

func TestMatch_ApplyPublishesEvents(t *testing.T) {
	m, log := newTestMatch(t, testutil.StripLayout, testPlayers(2))
	setOffer(m.State(), testutil.SingleAbilityCard("Gem", cards.BuildArmies, 1))

	require.True(t, m.Apply(PickCardAt(0)))

	picked := log.ofType(events.TypeCardPicked)
	require.Len(t, picked, 1)
	card := picked[0].(*events.CardPickedEvent)
	assert.Equal(t, 0, card.Player)
	assert.Equal(t, "Gem", card.Good)
	assert.Equal(t, 0, card.Cost)

	changed := log.ofType(events.TypePhaseChanged)
	require.Len(t, changed, 1)
	phase := changed[0].(*events.PhaseChangedEvent)
	assert.Equal(t, "PickCard", phase.From)
	assert.Equal(t, "BuildArmy", phase.To)

	require.True(t, m.Apply(at(0, 0)))
	assert.Len(t, log.ofType(events.TypePhaseChanged), 1, "building keeps the phase")

	require.True(t, m.EndAction())
	turns := log.ofType(events.TypeTurnAdvanced)
	require.Len(t, turns, 1)
	assert.Equal(t, 1, turns[0].(*events.TurnAdvancedEvent).Player)

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, states.PickCard, history[0].From)
	assert.Equal(t, states.BuildArmy, history[0].To)
	assert.Equal(t, states.BuildArmy, history[1].From)
	assert.Equal(t, states.PickCard, history[1].To)
	assert.Equal(t, 0, history[1].Player)
}

func TestMatch_IgnoredSelection(t *testing.T) {
	m, log := newTestMatch(t, testutil.StripLayout, testPlayers(2))
	version := m.State().Version()

	assert.False(t, m.Apply(at(1, 0)))
	assert.False(t, m.Apply(PickCardAt(42)))

	assert.Equal(t, version, m.State().Version())
	ignored := log.ofType(events.TypeSelectionIgnored)
	require.Len(t, ignored, 2)
	ev := ignored[0].(*events.SelectionIgnoredEvent)
	assert.Equal(t, "PickCard", ev.Phase)
	assert.Equal(t, "selection tile (1,0)", ev.Selection)
	assert.Empty(t, m.History())
}

func TestMatch_StepSkipsHumans(t *testing.T) {
	players := testPlayers(2)
	players[0].Kind = Human
	m, _ := newTestMatch(t, testutil.StripLayout, players)
	d := &firstOption{}

	_, ok := m.Step(d)
	assert.False(t, ok)
	assert.Zero(t, d.calls)

	err := m.Play(context.Background(), d)
	assert.ErrorIs(t, err, ErrHumanTurn)
}

func TestMatch_PlayToCompletion(t *testing.T) {
	m, log := newTestMatch(t, testutil.IslandLayout, testPlayers(2))
	d := &firstOption{}

	require.NoError(t, m.Play(context.Background(), d))

	assert.True(t, m.IsOver())
	assert.Equal(t, states.EndGame, m.State().Phase())
	assert.NotEmpty(t, m.State().Winners())
	assert.Positive(t, d.calls)

	ended := log.ofType(events.TypeMatchEnded)
	require.Len(t, ended, 1)
	assert.Equal(t, m.State().Winners(), ended[0].(*events.MatchEndedEvent).Winners)
	assert.Len(t, log.ofType(events.TypeCardPicked), len(testutil.TestDeck().Cards))

	_, ok := m.Step(d)
	assert.False(t, ok, "no steps after the end")
}

func TestMatch_PlayHonoursContext(t *testing.T) {
	m, _ := newTestMatch(t, testutil.StripLayout, testPlayers(2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Play(ctx, &firstOption{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.IsOver())
}
