package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGood_PointsAreTieredAndCumulative(t *testing.T) {
	carrot := Good{Name: "Carrot", Thresholds: [4]int{3, 5, 7, 8}}

	tests := []struct {
		held int
		want int
	}{
		{0, 0},
		{2, 0},
		{3, 1},
		{5, 2},
		{7, 3},
		{8, 5},
		{12, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, carrot.Points(tt.held), "held %d", tt.held)
	}
}

func TestCostAt_PairsOfPositionsShareAPrice(t *testing.T) {
	got := make([]int, 6)
	for i := range got {
		got[i] = CostAt(i)
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, got)
}

func TestParseAbilityKind(t *testing.T) {
	for kind, name := range abilityNames {
		parsed, err := ParseAbilityKind(name)
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	parsed, err := ParseAbilityKind(" Sail_Armies ")
	require.NoError(t, err)
	assert.Equal(t, SailArmies, parsed)

	_, err = ParseAbilityKind("teleport")
	assert.Error(t, err)
	assert.Equal(t, "AbilityKind(42)", AbilityKind(42).String())
}

func TestCard_CloneDoesNotShareAbilities(t *testing.T) {
	c := Card{Good: "Gem", Quantity: 1, Abilities: []Ability{{Kind: MoveArmies, Budget: 2}}}
	cp := c.Clone()
	cp.Abilities[0].Budget = 9

	assert.Equal(t, 2, c.Abilities[0].Budget)
	assert.False(t, c.IsJoker())
	assert.Equal(t, "1xGem [move_armies x2] $0", c.String())
}

func TestDefaultDeck_IsValid(t *testing.T) {
	d, err := DefaultDeck()
	require.NoError(t, err)

	assert.Len(t, d.Goods, 5)
	assert.Equal(t, "Carrot", d.Goods[4].Name)
	assert.Equal(t, [4]int{3, 5, 7, 8}, d.Goods[4].Thresholds)
	for _, g := range d.Goods {
		assert.NotEqual(t, Joker, g.Name, "joker is not a scoring good")
	}

	assert.Len(t, d.ForPlayers(2), len(d.Cards))
	assert.Len(t, d.ForPlayers(d.BonusThreshold+1), len(d.Cards)+len(d.Bonus))
}

func TestDeck_ForPlayersReturnsCopies(t *testing.T) {
	d, err := DefaultDeck()
	require.NoError(t, err)

	pool := d.ForPlayers(2)
	pool[0].Abilities[0].Budget = 99
	assert.NotEqual(t, 99, d.Cards[0].Abilities[0].Budget)
}

func TestParseDeck_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "no cards",
			yaml:    "goods: [{name: Gem, thresholds: [1, 2, 3, 4]}]\n",
			wantErr: ErrEmptyDeck,
		},
		{
			name: "unknown good",
			yaml: `goods: [{name: Gem, thresholds: [1, 2, 3, 4]}]
cards: [{good: Salt, quantity: 1, abilities: [{kind: move_armies, budget: 1}]}]
`,
			wantErr: ErrUnknownGood,
		},
		{
			name: "three abilities",
			yaml: `goods: [{name: Gem, thresholds: [1, 2, 3, 4]}]
cards:
  - good: Gem
    quantity: 1
    abilities:
      - {kind: move_armies, budget: 1}
      - {kind: move_armies, budget: 1}
      - {kind: move_armies, budget: 1}
`,
			wantErr: ErrInvalidCard,
		},
		{
			name: "flat thresholds",
			yaml: `goods: [{name: Gem, thresholds: [1, 1, 3, 4]}]
cards: [{good: Gem, quantity: 1, abilities: [{kind: move_armies, budget: 1}]}]
`,
			wantErr: ErrInvalidGood,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeck([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDeck_RejectsUnknownAbility(t *testing.T) {
	_, err := ParseDeck([]byte(`goods: [{name: Gem, thresholds: [1, 2, 3, 4]}]
cards: [{good: Gem, quantity: 1, abilities: [{kind: fly, budget: 1}]}]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ability")
}

func TestLoadDeck_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	content := `goods:
  - name: Gem
    thresholds: [1, 2, 3, 4]
cards:
  - good: Joker
    quantity: 2
    and: true
    abilities:
      - {kind: build_armies, budget: 1}
      - {kind: sail_armies, budget: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadDeck(path)
	require.NoError(t, err)
	require.Len(t, d.Cards, 1)
	c := d.Cards[0]
	assert.True(t, c.IsJoker())
	assert.True(t, c.And)
	assert.Equal(t, []Ability{{Kind: BuildArmies, Budget: 1}, {Kind: SailArmies, Budget: 2}}, c.Abilities)

	_, err = LoadDeck(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
