package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/game/rules"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// PlayerKind says who takes the decisions for a seat.
type PlayerKind int

const (
	Human PlayerKind = iota
	Automated
)

func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "human"
	case Automated:
		return "automated"
	default:
		return fmt.Sprintf("PlayerKind(%d)", int(k))
	}
}

func ParsePlayerKind(s string) (PlayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human":
		return Human, nil
	case "automated", "ai", "bot":
		return Automated, nil
	default:
		return Human, fmt.Errorf("unknown player kind %q", s)
	}
}

// Player is one seat at the table. Armies, Cities and Score are derived
// totals refreshed after every change.
type Player struct {
	Name   string
	Kind   PlayerKind
	Color  string
	Coins  int
	Armies int
	Cities int
	Score  int
	Goods  map[string]int
}

// Clone returns a copy with its own goods map.
func (p Player) Clone() Player {
	goods := make(map[string]int, len(p.Goods))
	for k, v := range p.Goods {
		goods[k] = v
	}
	p.Goods = goods
	return p
}

// Jokers is the number of unassigned jokers the player holds.
func (p Player) Jokers() int { return p.Goods[cards.Joker] }

// GameState is the complete, self-contained state of a match. It is
// mutated only through Apply, EndAction and ApplyOption; invalid requests
// leave it untouched.
type GameState struct {
	board   *core.Board
	players []Player
	goods   []cards.Good
	offer   []cards.Card
	pool    []cards.Card

	active    int
	phase     states.GamePhase
	maneuvers int
	viable    []cards.Ability
	target    int
	held      int
	origin    int

	turn     int
	maxTurns int
	winners  []int
	settings Settings
	version  uint64
}

var legalTargets = rules.NewLegalTargetCalculator()

func (gs *GameState) Phase() states.GamePhase { return gs.phase }
func (gs *GameState) ActivePlayer() int        { return gs.active }
func (gs *GameState) Maneuvers() int           { return gs.maneuvers }
func (gs *GameState) Turn() int                { return gs.turn }
func (gs *GameState) MaxTurns() int            { return gs.maxTurns }
func (gs *GameState) Held() int                { return gs.held }
func (gs *GameState) Target() int              { return gs.target }
func (gs *GameState) PoolSize() int            { return len(gs.pool) }
func (gs *GameState) Width() int               { return gs.board.W }
func (gs *GameState) Height() int              { return gs.board.H }
func (gs *GameState) NumPlayers() int          { return len(gs.players) }
func (gs *GameState) Settings() Settings       { return gs.settings }

// Version increases with every accepted change, so callers can tell an
// ignored selection from an applied one.
func (gs *GameState) Version() uint64 { return gs.version }

// Origin is the tile armies were lifted from, if any are held.
func (gs *GameState) Origin() (core.Coordinate, bool) {
	if gs.origin < 0 {
		return core.Coordinate{}, false
	}
	return gs.board.T[gs.origin].Coord, true
}

// Tile returns a copy of the tile at c.
func (gs *GameState) Tile(c core.Coordinate) (core.Tile, bool) {
	t := gs.board.GetTile(c)
	if t == nil {
		return core.Tile{}, false
	}
	cp := *t
	cp.Armies = append([]int(nil), t.Armies...)
	cp.Cities = append([]int(nil), t.Cities...)
	cp.Neighbors = append([]int(nil), t.Neighbors...)
	return cp, true
}

// Continents returns a copy of the continents with their current aggregates.
func (gs *GameState) Continents() []core.Continent {
	out := make([]core.Continent, len(gs.board.Continents))
	for i, c := range gs.board.Continents {
		out[i] = core.Continent{
			ID:     c.ID,
			Tiles:  append([]int(nil), c.Tiles...),
			Armies: append([]int(nil), c.Armies...),
			Cities: append([]int(nil), c.Cities...),
		}
	}
	return out
}

func (gs *GameState) Players() []Player {
	out := make([]Player, len(gs.players))
	for i, p := range gs.players {
		out[i] = p.Clone()
	}
	return out
}

func (gs *GameState) Player(i int) (Player, bool) {
	if i < 0 || i >= len(gs.players) {
		return Player{}, false
	}
	return gs.players[i].Clone(), true
}

// ReachableTiles lists the tiles marked by the current lift.
func (gs *GameState) ReachableTiles() []core.Coordinate {
	var out []core.Coordinate
	for _, idx := range gs.board.ReachableTiles() {
		out = append(out, gs.board.T[idx].Coord)
	}
	return out
}

// Winners is empty until the match reaches EndGame.
func (gs *GameState) Winners() []int {
	return append([]int(nil), gs.winners...)
}

func (gs *GameState) Offer() []cards.Card {
	out := make([]cards.Card, len(gs.offer))
	for i, c := range gs.offer {
		out[i] = c.Clone()
	}
	return out
}

// Viable lists the abilities still staged from the last two-ability card.
func (gs *GameState) Viable() []cards.Ability {
	return append([]cards.Ability(nil), gs.viable...)
}

// Goods returns the scoring catalog.
func (gs *GameState) Goods() []cards.Good {
	return append([]cards.Good(nil), gs.goods...)
}

// Standings returns every player's ranking key in seat order.
func (gs *GameState) Standings() []rules.Standing {
	out := make([]rules.Standing, len(gs.players))
	for i, p := range gs.players {
		out[i] = rules.Standing{Player: i, Score: p.Score, Coins: p.Coins, Armies: p.Armies}
	}
	return out
}

// ProjectedWinners ranks the players as if the match ended now.
func (gs *GameState) ProjectedWinners() []int {
	return rules.ResolveWinners(gs.Standings())
}

// refresh recomputes continent aggregates, player totals and scores.
// Armies held during a move still count for their owner.
func (gs *GameState) refresh() {
	gs.board.Recount()
	majority := rules.MajorityPoints(gs.board)
	for i := range gs.players {
		p := &gs.players[i]
		p.Armies = gs.board.ArmiesOf(i)
		p.Cities = gs.board.CitiesOf(i)
		p.Score = majority[i] + rules.GoodsPoints(p.Goods, gs.goods)
	}
	if gs.held > 0 {
		gs.players[gs.active].Armies += gs.held
	}
}

// sortedGoods returns the good names a player holds, in name order.
func sortedGoods(goods map[string]int) []string {
	names := make([]string, 0, len(goods))
	for name := range goods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
