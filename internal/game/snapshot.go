package game

import (
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

// Clone returns an independent copy of the state. Value data is copied and
// the board's adjacency and continents are rebuilt for the copy, so no
// mutation of either state is visible through the other.
func (gs *GameState) Clone() *GameState {
	c := *gs
	c.board = gs.board.Clone()
	c.players = make([]Player, len(gs.players))
	for i, p := range gs.players {
		c.players[i] = p.Clone()
	}
	c.goods = append([]cards.Good(nil), gs.goods...)
	c.offer = cloneCards(gs.offer)
	c.pool = cloneCards(gs.pool)
	c.viable = append([]cards.Ability(nil), gs.viable...)
	c.winners = append([]int(nil), gs.winners...)
	c.settings.StartTiles = append([]core.Coordinate(nil), gs.settings.StartTiles...)
	return &c
}

func cloneCards(in []cards.Card) []cards.Card {
	if in == nil {
		return nil
	}
	out := make([]cards.Card, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
