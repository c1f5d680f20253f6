package states

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_RecordAndTrim(t *testing.T) {
	h := NewHistory(3)

	for turn := 1; turn <= 5; turn++ {
		assert.True(t, h.Record(Transition{From: PickCard, To: MoveArmy, Turn: turn}))
	}

	require.Equal(t, 3, h.Len())
	entries := h.Entries()
	assert.Equal(t, 3, entries[0].Turn, "oldest entries are dropped")
	assert.False(t, entries[0].Timestamp.IsZero())

	assert.Equal(t, 5, entries[2].Turn)

	entries[0].Turn = 42
	assert.Equal(t, 3, h.Entries()[0].Turn, "entries are a copy")
}

func TestHistory_FlagsUnexpectedTransitions(t *testing.T) {
	h := NewHistory(0)

	assert.False(t, h.Record(Transition{From: EndGame, To: PickCard}))
	assert.Equal(t, 1, h.Len(), "unexpected transitions are still recorded")
	assert.Empty(t, NewHistory(1).Entries())
}
