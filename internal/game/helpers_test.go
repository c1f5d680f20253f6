package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/testutil"
)

func testPlayers(n int) []Player {
	out := make([]Player, n)
	for i := range out {
		out[i] = Player{Name: fmt.Sprintf("p%d", i), Kind: Automated}
	}
	return out
}

func newTestState(t *testing.T, layout []string, players int, settings Settings) *GameState {
	t.Helper()
	gs, err := InitializeMatch(layout, testPlayers(players), testutil.TestDeck(), settings, testutil.NewTestRNG(1))
	require.NoError(t, err)
	return gs
}

// setOffer replaces the offer with copies of cs, priced by position.
func setOffer(gs *GameState, cs ...cards.Card) {
	gs.offer = cloneCards(cs)
	gs.reprice()
}

func at(x, y int) Selection {
	return PickTile(core.NewCoordinate(x, y))
}

func tileAt(t *testing.T, gs *GameState, x, y int) core.Tile {
	t.Helper()
	tile, ok := gs.Tile(core.NewCoordinate(x, y))
	require.True(t, ok)
	return tile
}

// startAbility puts the active player into the phase of a single-ability
// card bought from the first offer slot.
func startAbility(t *testing.T, gs *GameState, kind cards.AbilityKind, budget int) {
	t.Helper()
	setOffer(gs, testutil.SingleAbilityCard("Gem", kind, budget))
	gs.Apply(PickCardAt(0))
	require.Equal(t, budget, gs.Maneuvers())
}

func totalArmies(gs *GameState, player int) int {
	n := gs.held * boolInt(gs.active == player)
	for i := range gs.board.T {
		n += gs.board.T[i].Armies[player]
	}
	return n
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
