package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
)

func TestGamePhase_String(t *testing.T) {
	tests := []struct {
		phase GamePhase
		want  string
	}{
		{PickCard, "PickCard"},
		{PickAbilityOr, "PickAbilityOr"},
		{SailArmy, "SailArmy"},
		{JokerAssignment, "JokerAssignment"},
		{EndGame, "EndGame"},
		{GamePhase(99), "Unknown(99)"},
		{GamePhase(-1), "Unknown(-1)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.phase.String())
	}
}

func TestParsePhase_RoundTrips(t *testing.T) {
	for p := PickCard; p <= EndGame; p++ {
		parsed, err := ParsePhase(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}
	_, err := ParsePhase("Lobby")
	assert.Error(t, err)
}

func TestGamePhase_Classification(t *testing.T) {
	assert.True(t, EndGame.IsTerminal())
	assert.False(t, JokerAssignment.IsTerminal())

	for _, p := range []GamePhase{BuildArmy, BuildCity, MoveArmy, SailArmy, DestroyArmy} {
		assert.True(t, p.IsAction(), "%s", p)
		assert.False(t, p.IsAbilityChoice(), "%s", p)
	}
	assert.False(t, PickCard.IsAction())
	assert.True(t, PickAbilityAnd.IsAbilityChoice())
	assert.True(t, PickAbilityOr.IsAbilityChoice())
}

func TestForAbility(t *testing.T) {
	assert.Equal(t, BuildArmy, ForAbility(cards.BuildArmies))
	assert.Equal(t, BuildCity, ForAbility(cards.BuildCities))
	assert.Equal(t, MoveArmy, ForAbility(cards.MoveArmies))
	assert.Equal(t, SailArmy, ForAbility(cards.SailArmies))
	assert.Equal(t, DestroyArmy, ForAbility(cards.DestroyArmies))
}

func TestGamePhase_Transitions(t *testing.T) {
	tests := []struct {
		from, to GamePhase
		allowed  bool
	}{
		{PickCard, MoveArmy, true},
		{PickCard, PickAbilityAnd, true},
		{PickCard, PickCard, true},
		{PickAbilityOr, DestroyArmy, true},
		{PickAbilityOr, PickAbilityAnd, false},
		{MoveArmy, PickAbilityAnd, true},
		{MoveArmy, BuildArmy, false},
		{BuildCity, JokerAssignment, true},
		{JokerAssignment, JokerAssignment, true},
		{JokerAssignment, PickCard, false},
		{EndGame, PickCard, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
	assert.Empty(t, EndGame.AllowedTransitions())
}
