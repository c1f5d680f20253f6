package rules

import "github.com/mitchelldurbincs/Continents/internal/game/core"

// LegalTargetCalculator lists the tiles an action may target for a player.
// Caps on a player's totals are checked by the caller.
type LegalTargetCalculator struct{}

// NewLegalTargetCalculator creates a new legal target calculator
func NewLegalTargetCalculator() *LegalTargetCalculator {
	return &LegalTargetCalculator{}
}

// CanBuildArmy: armies are raised on a starting tile or in one of the
// player's cities.
func (lc *LegalTargetCalculator) CanBuildArmy(b *core.Board, idx, player int) bool {
	if idx < 0 || idx >= len(b.T) {
		return false
	}
	t := &b.T[idx]
	return t.IsGround() && (t.Start || t.Cities[player] > 0)
}

// CanBuildCity: cities are founded where the player has an army.
func (lc *LegalTargetCalculator) CanBuildCity(b *core.Board, idx, player int) bool {
	if idx < 0 || idx >= len(b.T) {
		return false
	}
	t := &b.T[idx]
	return t.IsGround() && t.Armies[player] > 0
}

// ArmyTargets lists the tiles where the player may build an army.
func (lc *LegalTargetCalculator) ArmyTargets(b *core.Board, player int) []int {
	return lc.collect(b, player, lc.CanBuildArmy)
}

// CityTargets lists the tiles where the player may build a city.
func (lc *LegalTargetCalculator) CityTargets(b *core.Board, player int) []int {
	return lc.collect(b, player, lc.CanBuildCity)
}

// ArmyTiles lists the tiles holding at least one of the player's armies.
// They are the lift origins for moves and the targets for destroy.
func (lc *LegalTargetCalculator) ArmyTiles(b *core.Board, player int) []int {
	var out []int
	for i := range b.T {
		if b.T[i].Armies[player] > 0 {
			out = append(out, i)
		}
	}
	return out
}

func (lc *LegalTargetCalculator) collect(b *core.Board, player int, ok func(*core.Board, int, int) bool) []int {
	var out []int
	for i := range b.T {
		if ok(b, i, player) {
			out = append(out, i)
		}
	}
	return out
}
