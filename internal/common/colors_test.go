package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerColors_AreDistinct(t *testing.T) {
	require.Equal(t, 5, MaxPlayers)

	names := map[string]bool{}
	for i, c := range PlayerColors {
		assert.False(t, names[c.Name], "colour %d repeats name %q", i, c.Name)
		names[c.Name] = true
		assert.Equal(t, uint8(255), c.RGBA.A, "colour %s must be opaque", c.Name)
		assert.NotEmpty(t, c.ANSI)
	}
}

func TestColorFor(t *testing.T) {
	tests := []struct {
		seat int
		want string
	}{
		{0, "red"},
		{1, "green"},
		{4, "orange"},
		{5, "red"},
		{-2, "blue"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ColorFor(tt.seat).Name, "seat %d", tt.seat)
	}
}

func TestColorByName(t *testing.T) {
	c, ok := ColorByName("orange")
	require.True(t, ok)
	assert.Equal(t, uint8(165), c.RGBA.G)

	_, ok = ColorByName("purple")
	assert.False(t, ok)
}
