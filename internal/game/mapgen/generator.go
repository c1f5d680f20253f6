package mapgen

import (
	"math/rand"
	"strings"

	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

// LayoutConfig holds configuration for layout generation
type LayoutConfig struct {
	Width         int
	Height        int
	Islands       int
	MinIslandSize int
	MaxIslandSize int
}

// DefaultLayoutConfig returns a sensible default configuration
func DefaultLayoutConfig(w, h int) LayoutConfig {
	return LayoutConfig{
		Width:         w,
		Height:        h,
		Islands:       max(1, (w*h)/25),
		MinIslandSize: 3,
		MaxIslandSize: max(3, (w*h)/8),
	}
}

// Generator handles layout generation with deterministic RNG
type Generator struct {
	config LayoutConfig
	rng    *rand.Rand
}

// NewGenerator creates a new layout generator
func NewGenerator(config LayoutConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateLayout returns rows of layout characters: islands of ground in
// water, kept one water tile apart, with a single start tile on the first
// island grown.
func (g *Generator) GenerateLayout() []string {
	w, h := max(1, g.config.Width), max(1, g.config.Height)
	island := make([]int, w*h)
	for i := range island {
		island[i] = -1
	}

	start := -1
	for id := 0; id < g.config.Islands; id++ {
		seed, ok := g.findSeed(island, w, h, id)
		if !ok {
			break
		}
		if start < 0 {
			start = seed
		}
		g.grow(island, w, h, id, seed)
	}
	if start < 0 {
		// Nothing fitted: a lone start tile in the middle.
		start = (h/2)*w + w/2
		island[start] = 0
	}

	rows := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch {
			case idx == start:
				sb.WriteByte(core.LayoutStart)
			case island[idx] >= 0:
				sb.WriteByte(core.LayoutGround)
			default:
				sb.WriteByte(core.LayoutWater)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Generator) findSeed(island []int, w, h, id int) (int, bool) {
	maxAttempts := w * h * 4 // Fallback to prevent infinite loops
	for attempts := 0; attempts < maxAttempts; attempts++ {
		idx := g.rng.Intn(w * h)
		if g.free(island, w, h, id, idx) {
			island[idx] = id
			return idx, true
		}
	}
	return -1, false
}

// grow extends an island from its seed by random steps until it reaches
// its drawn size or runs out of attempts.
func (g *Generator) grow(island []int, w, h, id, seed int) {
	lo, hi := max(1, g.config.MinIslandSize), g.config.MaxIslandSize
	if hi < lo {
		hi = lo
	}
	size := lo + g.rng.Intn(hi-lo+1)
	tiles := []int{seed}

	maxAttempts := size * 20
	for attempts := 0; len(tiles) < size && attempts < maxAttempts; attempts++ {
		from := core.FromIndex(tiles[g.rng.Intn(len(tiles))], w)
		next := from.Move(core.Direction(g.rng.Intn(4)))
		if !next.IsValid(w, h) {
			continue
		}
		idx := next.ToIndex(w)
		if g.free(island, w, h, id, idx) {
			island[idx] = id
			tiles = append(tiles, idx)
		}
	}
}

// free reports whether idx is water with no neighbour on another island.
func (g *Generator) free(island []int, w, h, id, idx int) bool {
	if island[idx] >= 0 {
		return false
	}
	for _, n := range core.FromIndex(idx, w).ValidNeighbors(w, h) {
		if other := island[n.ToIndex(w)]; other >= 0 && other != id {
			return false
		}
	}
	return true
}
