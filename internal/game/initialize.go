package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/Continents/internal/common"
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// InitializeMatch builds the opening state of a match: the board parsed
// from layout with starting armies placed, every player's purse filled,
// the deck shuffled with rng and the offer dealt. A nil rng is seeded from
// the clock.
func InitializeMatch(layout []string, players []Player, deck cards.Deck, settings Settings, rng *rand.Rand) (*GameState, error) {
	n := len(players)
	if n < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if n > common.MaxPlayers {
		return nil, fmt.Errorf("%d players, at most %d: %w", n, common.MaxPlayers, ErrTooManyPlayers)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("deck: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board, err := core.BuildBoard(layout, n)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	settings = settings.withDefaults(n)
	markStartTiles(board, settings.StartTiles)
	for _, idx := range board.StartTiles() {
		for p := 0; p < n; p++ {
			board.AddArmies(idx, p, settings.StartingArmies)
		}
	}

	seats := make([]Player, n)
	for i, p := range players {
		seat := Player{
			Name:  p.Name,
			Kind:  p.Kind,
			Color: p.Color,
			Coins: settings.StartingCoins,
			Goods: make(map[string]int),
		}
		if seat.Name == "" {
			seat.Name = fmt.Sprintf("Player %d", i+1)
		}
		if seat.Color == "" {
			seat.Color = common.ColorFor(i).Name
		}
		seats[i] = seat
	}

	pool := deck.ForPlayers(n)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	gs := &GameState{
		board:    board,
		players:  seats,
		goods:    append([]cards.Good(nil), deck.Goods...),
		pool:     pool,
		phase:    states.PickCard,
		target:   -1,
		origin:   -1,
		turn:     1,
		maxTurns: settings.MaxTurns,
		settings: settings,
	}
	gs.fillOffer()
	gs.refresh()
	return gs, nil
}

// markStartTiles applies configured starting tiles. Misconfigured entries
// are reported and skipped.
func markStartTiles(board *core.Board, coords []core.Coordinate) {
	for _, c := range coords {
		idx, ok := board.Index(c)
		if !ok {
			log.Warn().Str("tile", c.String()).Msg("Ignoring starting tile outside the board")
			continue
		}
		if err := board.MakeStartingTile(idx); err != nil {
			log.Warn().Err(err).Str("tile", c.String()).Msg("Ignoring starting tile")
		}
	}
}

// fillOffer deals from the pool until the offer is full, then reprices it.
func (gs *GameState) fillOffer() {
	for len(gs.offer) < gs.settings.OfferSize && len(gs.pool) > 0 {
		gs.offer = append(gs.offer, gs.pool[0])
		gs.pool = gs.pool[1:]
	}
	gs.reprice()
}

func (gs *GameState) reprice() {
	for i := range gs.offer {
		gs.offer[i].Cost = cards.CostAt(i)
	}
}
