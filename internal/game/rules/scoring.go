package rules

import (
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

// Majority returns the player with the strictly greatest positive presence,
// or -1 when nobody is present or the lead is shared.
func Majority(presence []int) int {
	leader, best, tied := -1, 0, false
	for p, v := range presence {
		switch {
		case v > best:
			leader, best, tied = p, v, false
		case v == best && v > 0:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return leader
}

// MajorityPoints awards one point per tile and one per continent to the
// player holding the majority of armies plus cities there.
func MajorityPoints(b *core.Board) []int {
	n := b.Players()
	points := make([]int, n)
	presence := make([]int, n)

	for i := range b.T {
		t := &b.T[i]
		if t.IsWater() {
			continue
		}
		for p := 0; p < n; p++ {
			presence[p] = t.Presence(p)
		}
		if w := Majority(presence); w >= 0 {
			points[w]++
		}
	}
	for c := range b.Continents {
		cont := &b.Continents[c]
		for p := 0; p < n; p++ {
			presence[p] = cont.Presence(p)
		}
		if w := Majority(presence); w >= 0 {
			points[w]++
		}
	}
	return points
}

// GoodsPoints scores a player's holdings against the goods catalog. Jokers
// and goods missing from the catalog score nothing.
func GoodsPoints(held map[string]int, catalog []cards.Good) int {
	total := 0
	for _, g := range catalog {
		total += g.Points(held[g.Name])
	}
	return total
}
