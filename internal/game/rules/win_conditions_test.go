package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWinners_TieBreakChain(t *testing.T) {
	tests := []struct {
		name      string
		standings []Standing
		want      []int
	}{
		{
			name:      "score decides",
			standings: []Standing{{0, 4, 0, 0}, {1, 7, 0, 0}},
			want:      []int{1},
		},
		{
			name:      "coins break a score tie",
			standings: []Standing{{0, 5, 3, 1}, {1, 5, 2, 9}},
			want:      []int{0},
		},
		{
			name:      "armies break a coins tie",
			standings: []Standing{{0, 5, 3, 1}, {1, 5, 3, 2}, {2, 1, 9, 9}},
			want:      []int{1},
		},
		{
			name:      "full tie is a draw",
			standings: []Standing{{0, 5, 3, 2}, {1, 5, 3, 2}, {2, 4, 3, 2}},
			want:      []int{0, 1},
		},
		{
			name:      "no players",
			standings: nil,
			want:      nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWinners(tt.standings))
		})
	}
}

func TestLegalTargetCalculator(t *testing.T) {
	b := buildTestBoard(t)
	lc := NewLegalTargetCalculator()

	// Start tile at index 1, city for player 0 at index 3, army of player 0 at 4.
	assert.Equal(t, []int{1, 3}, lc.ArmyTargets(b, 0))
	assert.Equal(t, []int{1}, lc.ArmyTargets(b, 1))
	assert.Equal(t, []int{4}, lc.CityTargets(b, 0))
	assert.Equal(t, []int{4}, lc.ArmyTiles(b, 0))
	assert.Empty(t, lc.ArmyTiles(b, 1))
	assert.False(t, lc.CanBuildArmy(b, 2, 0), "water")
	assert.False(t, lc.CanBuildCity(b, -1, 0))
}
