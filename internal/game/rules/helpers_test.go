package rules

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

func buildTestBoard(t *testing.T) *core.Board {
	t.Helper()
	b, err := core.BuildBoard([]string{"GSWGG"}, 2)
	require.NoError(t, err)
	require.True(t, b.AddCity(3, 0))
	require.True(t, b.AddArmies(4, 0, 1))
	b.Recount()
	return b
}
