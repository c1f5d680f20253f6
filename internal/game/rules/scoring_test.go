package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

func TestMajority(t *testing.T) {
	tests := []struct {
		name     string
		presence []int
		want     int
	}{
		{"empty tile", []int{0, 0}, -1},
		{"tied lead", []int{2, 2}, -1},
		{"clear lead", []int{3, 1}, 0},
		{"late leader", []int{1, 0, 4}, 2},
		{"tie behind leader", []int{1, 1, 2}, 2},
		{"tie at the top of three", []int{1, 3, 3}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Majority(tt.presence))
		})
	}
}

func TestMajorityPoints_TilesAndContinents(t *testing.T) {
	b, err := core.BuildBoard([]string{"GGWG"}, 2)
	require.NoError(t, err)
	require.Len(t, b.Continents, 2)

	// Tile 0: player 0 leads 3-1. Tile 1: 2-2 tie. Tile 3: city for player 1.
	b.AddArmies(0, 0, 3)
	b.AddArmies(0, 1, 1)
	b.AddArmies(1, 0, 2)
	b.AddArmies(1, 1, 1)
	b.AddCity(1, 1)
	b.AddCity(3, 1)
	b.Recount()

	points := MajorityPoints(b)

	// Player 0: tile 0 + continent 0 (5 vs 3). Player 1: tile 3 + continent 1.
	assert.Equal(t, []int{2, 2}, points)
}

func TestMajorityPoints_TiedContinentScoresNobody(t *testing.T) {
	b, err := core.BuildBoard([]string{"GG"}, 2)
	require.NoError(t, err)
	b.AddArmies(0, 0, 2)
	b.AddArmies(1, 1, 2)
	b.Recount()

	assert.Equal(t, []int{1, 1}, MajorityPoints(b), "each wins a tile, nobody wins the continent")
}

func TestGoodsPoints(t *testing.T) {
	catalog := []cards.Good{
		{Name: "Carrot", Thresholds: [4]int{3, 5, 7, 8}},
		{Name: "Gem", Thresholds: [4]int{1, 2, 3, 4}},
	}

	assert.Equal(t, 5, GoodsPoints(map[string]int{"Carrot": 8}, catalog))
	assert.Equal(t, 3, GoodsPoints(map[string]int{"Carrot": 3, "Gem": 2}, catalog))
	assert.Equal(t, 0, GoodsPoints(map[string]int{cards.Joker: 6, "Salt": 9}, catalog))
	assert.Equal(t, 0, GoodsPoints(nil, catalog))
}
