package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReach_StripWithBudgetThree(t *testing.T) {
	b := mustBuild(t, []string{"GGGGG"}, 1)

	got := b.Reach(0, 3, 1, Overland)

	assert.Equal(t, []int{0, 1, 2, 3}, got)
	for i := 0; i < 4; i++ {
		assert.True(t, b.T[i].Reachable)
		assert.Equal(t, i, b.T[i].MoveCost, "tile %d cost", i)
	}
	assert.False(t, b.T[4].Reachable)
	assert.Equal(t, -1, b.T[4].MoveCost)
}

func TestReach_StepCostScalesWithMovingArmies(t *testing.T) {
	b := mustBuild(t, []string{"GGGGG"}, 1)

	got := b.Reach(0, 5, 2, Overland)

	assert.Equal(t, []int{0, 1, 2}, got)
	assert.Equal(t, 2, b.T[1].MoveCost)
	assert.Equal(t, 4, b.T[2].MoveCost)
}

func TestReach_OverlandStopsAtWater(t *testing.T) {
	b := mustBuild(t, []string{"GWG"}, 1)

	got := b.Reach(0, 5, 1, Overland)

	assert.Equal(t, []int{0}, got)
}

func TestReach_SailCrossesOneWaterRunPerStep(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		budget int
		want   map[int]int
	}{
		{"single channel", []string{"GWWG"}, 1, map[int]int{0: 0, 3: 1}},
		{"second crossing needs budget", []string{"GWGWG"}, 1, map[int]int{0: 0, 2: 1}},
		{"two crossings", []string{"GWGWG"}, 2, map[int]int{0: 0, 2: 1, 4: 2}},
		{"bay reaches far shore", []string{"GWW", "WWG"}, 1, map[int]int{0: 0, 5: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBuild(t, tt.layout, 1)
			got := b.Reach(0, tt.budget, 1, Sail)

			require.Len(t, got, len(tt.want))
			for idx, cost := range tt.want {
				assert.True(t, b.T[idx].Reachable, "tile %d reachable", idx)
				assert.Equal(t, cost, b.T[idx].MoveCost, "tile %d cost", idx)
			}
			for i := range b.T {
				if b.T[i].IsWater() {
					assert.False(t, b.T[i].Reachable, "water tile %d", i)
				}
			}
		})
	}
}

func TestReach_InvalidOriginClearsMarks(t *testing.T) {
	b := mustBuild(t, []string{"GWG"}, 1)
	b.Reach(0, 2, 1, Overland)
	require.True(t, b.T[0].Reachable)

	assert.Nil(t, b.Reach(1, 2, 1, Overland), "water origin")
	assert.Nil(t, b.Reach(7, 2, 1, Overland), "out of range origin")
	assert.Empty(t, b.ReachableTiles())
}

func TestBoard_StepsOrdering(t *testing.T) {
	b := mustBuild(t, scenarioLayout, 1)
	start := b.Idx(2, 2)

	assert.Equal(t, []int{b.Idx(2, 1), b.Idx(2, 3)}, b.Steps(start, Overland))

	sail := b.Steps(start, Sail)
	assert.Equal(t, []int{b.Idx(2, 1), b.Idx(2, 3)}, sail[:2], "overland steps come first")
	assert.Contains(t, sail, b.Idx(4, 2))
	assert.Contains(t, sail, b.Idx(0, 3))
	assert.NotContains(t, sail, start)
}

func TestCoordinate_NeighborsOrder(t *testing.T) {
	c := NewCoordinate(2, 2)
	assert.Equal(t, []Coordinate{{2, 1}, {2, 3}, {1, 2}, {3, 2}}, c.Neighbors())
	assert.Len(t, NewCoordinate(0, 0).ValidNeighbors(3, 3), 2)
	assert.Equal(t, "(2,2)", c.String())
	assert.Equal(t, 12, c.ToIndex(5))
	assert.Equal(t, c, FromIndex(12, 5))
	assert.Equal(t, c, c.Move(Direction(9)))
	assert.Equal(t, "west", West.String())
}
