package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/Continents/internal/common"
	"github.com/mitchelldurbincs/Continents/internal/game/rules"
)

const (
	waterSymbol  = "~~~"
	groundSymbol = " . "
	startSymbol  = " S "
)

// Render draws the board as text, one cell per tile. An occupied tile shows
// the seat letter of the player with the majority (or '=' on a tie), the
// total armies there and '*' when a city stands on it. With ansi set the
// cell is coloured for the majority holder.
func (gs *GameState) Render(ansi bool) string {
	b := gs.board
	var sb strings.Builder
	sb.Grow((b.W*4 + 4) * (b.H + 1))

	sb.WriteString("   ")
	for x := 0; x < b.W; x++ {
		fmt.Fprintf(&sb, "%3d", x)
	}
	sb.WriteString("\n")

	presence := make([]int, len(gs.players))
	for y := 0; y < b.H; y++ {
		fmt.Fprintf(&sb, "%2d ", y)
		for x := 0; x < b.W; x++ {
			t := &b.T[b.Idx(x, y)]
			if t.IsWater() {
				sb.WriteString(waterSymbol)
				continue
			}
			armies, cities := 0, 0
			for p := range presence {
				presence[p] = t.Presence(p)
				armies += t.Armies[p]
				cities += t.Cities[p]
			}
			if armies+cities == 0 {
				if t.Start {
					sb.WriteString(startSymbol)
				} else {
					sb.WriteString(groundSymbol)
				}
				continue
			}
			leader := rules.Majority(presence)
			mark := "="
			if leader >= 0 {
				mark = string(rune('A' + leader))
			}
			city := " "
			if cities > 0 {
				city = "*"
			}
			cell := fmt.Sprintf("%s%d%s", mark, armies%10, city)
			if ansi && leader >= 0 {
				cell = gs.seatColor(leader).ANSI + cell + common.ANSIReset
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// seatColor resolves the player's colour name, falling back to the seat default.
func (gs *GameState) seatColor(p int) common.PlayerColor {
	if c, ok := common.ColorByName(gs.players[p].Color); ok {
		return c
	}
	return common.ColorFor(p)
}

// Summary describes the phase, the players and the offer in a few lines.
func (gs *GameState) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn %d/%d  phase %s  active %d  maneuvers %d\n",
		gs.turn, gs.maxTurns, gs.phase, gs.active, gs.maneuvers)
	for i, p := range gs.players {
		goods := make([]string, 0, len(p.Goods))
		for _, name := range sortedGoods(p.Goods) {
			goods = append(goods, fmt.Sprintf("%s:%d", name, p.Goods[name]))
		}
		fmt.Fprintf(&sb, "  %c %-10s score %2d  coins %2d  armies %2d  cities %d  [%s]\n",
			'A'+i, p.Name, p.Score, p.Coins, p.Armies, p.Cities, strings.Join(goods, " "))
	}
	for i, c := range gs.offer {
		fmt.Fprintf(&sb, "  offer %d: %s\n", i, c)
	}
	return sb.String()
}
