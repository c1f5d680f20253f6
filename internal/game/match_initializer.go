package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/events"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// MatchConfig collects everything needed to open a match.
type MatchConfig struct {
	MatchID     string
	Layout      []string
	Players     []Player
	Deck        cards.Deck
	Settings    Settings
	Rng         *rand.Rand
	Logger      zerolog.Logger
	EventBus    *events.EventBus
	HistorySize int
}

// MatchInitializer fills configuration defaults and wires a Match together.
type MatchInitializer struct {
	config MatchConfig
	logger zerolog.Logger
}

func NewMatchInitializer(cfg MatchConfig) *MatchInitializer {
	return &MatchInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "MatchInitializer").Logger(),
	}
}

// NewMatch is shorthand for NewMatchInitializer(cfg).Initialize(ctx).
func NewMatch(ctx context.Context, cfg MatchConfig) (*Match, error) {
	return NewMatchInitializer(cfg).Initialize(ctx)
}

// Initialize deals the opening state and announces the match.
func (mi *MatchInitializer) Initialize(ctx context.Context) (*Match, error) {
	select {
	case <-ctx.Done():
		mi.logger.Error().Err(ctx.Err()).Msg("Match creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	if err := mi.setupDefaults(); err != nil {
		return nil, err
	}

	cfg := mi.config
	gs, err := InitializeMatch(cfg.Layout, cfg.Players, cfg.Deck, cfg.Settings, cfg.Rng)
	if err != nil {
		return nil, fmt.Errorf("initialize match: %w", err)
	}

	m := &Match{
		id:      cfg.MatchID,
		gs:      gs,
		logger:  cfg.Logger.With().Str("component", "Match").Str("match_id", cfg.MatchID).Logger(),
		bus:     cfg.EventBus,
		history: states.NewHistory(cfg.HistorySize),
	}

	names := make([]string, len(gs.players))
	for i, p := range gs.players {
		names[i] = p.Name
	}
	m.bus.Publish(events.NewMatchStartedEvent(m.id, names, gs.Width(), gs.Height(), len(gs.board.Continents), gs.maxTurns))

	mi.logger.Info().
		Str("match_id", m.id).
		Int("width", gs.Width()).
		Int("height", gs.Height()).
		Int("players", len(names)).
		Int("continents", len(gs.board.Continents)).
		Int("cards", len(gs.offer)+len(gs.pool)).
		Msg("Match created")

	return m, nil
}

func (mi *MatchInitializer) setupDefaults() error {
	if mi.config.Rng == nil {
		mi.logger.Debug().Msg("No RNG provided, creating new seeded RNG")
		mi.config.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if mi.config.MatchID == "" {
		mi.config.MatchID = uuid.NewString()
	}
	if mi.config.EventBus == nil {
		mi.config.EventBus = events.NewEventBus(mi.config.Logger)
	}
	if len(mi.config.Deck.Cards) == 0 {
		deck, err := cards.DefaultDeck()
		if err != nil {
			return err
		}
		mi.config.Deck = deck
	}
	return nil
}
