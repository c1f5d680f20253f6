package core

import "fmt"

// Layout characters understood by BuildBoard. Any other character is ground.
const (
	LayoutWater  = 'W'
	LayoutStart  = 'S'
	LayoutGround = 'G'
)

type Terrain int

const (
	Ground Terrain = iota
	Water
)

func (t Terrain) String() string {
	if t == Water {
		return "water"
	}
	return "ground"
}

// NoContinent marks water tiles, which belong to no continent.
const NoContinent = -1

// Tile is a single cell of the map. Armies and Cities are indexed by player.
// Reachable and MoveCost are written by the reachability solver only.
type Tile struct {
	Coord     Coordinate
	Terrain   Terrain
	Armies    []int
	Cities    []int
	Start     bool
	Reachable bool
	MoveCost  int
	Continent int
	Neighbors []int
}

func (t *Tile) IsWater() bool  { return t.Terrain == Water }
func (t *Tile) IsGround() bool { return t.Terrain == Ground }

// Presence is the armies plus cities a player has on the tile.
func (t *Tile) Presence(player int) int {
	return t.Armies[player] + t.Cities[player]
}

func (t *Tile) addNeighbor(idx int) {
	for _, n := range t.Neighbors {
		if n == idx {
			return
		}
	}
	t.Neighbors = append(t.Neighbors, idx)
}

// Continent is a maximal orthogonally connected group of ground tiles.
type Continent struct {
	ID     int
	Tiles  []int
	Armies []int
	Cities []int
}

// Presence is the armies plus cities a player has across the continent.
func (c *Continent) Presence(player int) int {
	return c.Armies[player] + c.Cities[player]
}

// Board is a row-major grid of tiles plus the continents derived from it.
type Board struct {
	W, H       int
	T          []Tile
	Continents []Continent
	players    int
}

// BuildBoard parses a layout (one string per row) into a linked board with
// per-player counters sized for players.
func BuildBoard(layout []string, players int) (*Board, error) {
	if players <= 0 {
		return nil, ErrInvalidPlayerCount
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len(layout[0])
	for y, row := range layout {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), w, ErrInvalidLayout)
		}
	}

	b := &Board{W: w, H: len(layout), T: make([]Tile, w*len(layout)), players: players}
	for y, row := range layout {
		for x := 0; x < w; x++ {
			t := b.newTile(x, y)
			switch row[x] {
			case LayoutWater:
				t.Terrain = Water
			case LayoutStart:
				t.Start = true
			}
		}
	}
	b.link()
	return b, nil
}

func (b *Board) newTile(x, y int) *Tile {
	t := &b.T[b.Idx(x, y)]
	t.Coord = NewCoordinate(x, y)
	t.Armies = make([]int, b.players)
	t.Cities = make([]int, b.players)
	t.MoveCost = -1
	t.Continent = NoContinent
	return t
}

// link derives adjacency and continents from the tile terrain and refreshes
// the continent aggregates.
func (b *Board) link() {
	b.addNeighbors()
	b.assignContinents()
	b.Recount()
}

func (b *Board) Idx(x, y int) int      { return y*b.W + x }
func (b *Board) XY(idx int) (int, int) { return idx % b.W, idx / b.W }

// Players is the number of per-player slots each tile carries.
func (b *Board) Players() int { return b.players }

// InBounds checks if coordinates are within board boundaries
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Index resolves a coordinate to a tile index.
func (b *Board) Index(c Coordinate) (int, bool) {
	if !b.InBounds(c.X, c.Y) {
		return -1, false
	}
	return c.ToIndex(b.W), true
}

// GetTile safely returns a tile pointer if coordinates are valid, nil otherwise
func (b *Board) GetTile(c Coordinate) *Tile {
	idx, ok := b.Index(c)
	if !ok {
		return nil
	}
	return &b.T[idx]
}

func (b *Board) validIndex(idx int) bool { return idx >= 0 && idx < len(b.T) }
func (b *Board) validPlayer(p int) bool  { return p >= 0 && p < b.players }

func (b *Board) addNeighbors() {
	for i := range b.T {
		b.T[i].Neighbors = b.T[i].Neighbors[:0]
	}
	for i := range b.T {
		for _, n := range b.T[i].Coord.ValidNeighbors(b.W, b.H) {
			j := n.ToIndex(b.W)
			b.T[i].addNeighbor(j)
			b.T[j].addNeighbor(i)
		}
	}
}

// assignContinents labels ground tiles with a flood fill started from each
// unlabelled tile in row-major order.
func (b *Board) assignContinents() {
	for i := range b.T {
		b.T[i].Continent = NoContinent
	}
	b.Continents = b.Continents[:0]

	stack := make([]int, 0, len(b.T))
	for seed := range b.T {
		if !b.T[seed].IsGround() || b.T[seed].Continent != NoContinent {
			continue
		}
		id := len(b.Continents)
		cont := Continent{
			ID:     id,
			Armies: make([]int, b.players),
			Cities: make([]int, b.players),
		}
		b.T[seed].Continent = id
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			cont.Tiles = append(cont.Tiles, cur)
			for _, n := range b.T[cur].Neighbors {
				nt := &b.T[n]
				if nt.IsGround() && nt.Continent == NoContinent {
					nt.Continent = id
					stack = append(stack, n)
				}
			}
		}
		b.Continents = append(b.Continents, cont)
	}
}

// Recount rebuilds every continent's per-player army and city totals.
func (b *Board) Recount() {
	for c := range b.Continents {
		cont := &b.Continents[c]
		for p := 0; p < b.players; p++ {
			cont.Armies[p] = 0
			cont.Cities[p] = 0
		}
		for _, idx := range cont.Tiles {
			t := &b.T[idx]
			for p := 0; p < b.players; p++ {
				cont.Armies[p] += t.Armies[p]
				cont.Cities[p] += t.Cities[p]
			}
		}
	}
}

// MakeStartingTile flags a ground tile as a starting tile.
func (b *Board) MakeStartingTile(idx int) error {
	if !b.validIndex(idx) {
		return ErrInvalidCoordinates
	}
	if b.T[idx].IsWater() {
		return fmt.Errorf("tile %s: %w", b.T[idx].Coord, ErrStartOnWater)
	}
	b.T[idx].Start = true
	return nil
}

// StartTiles returns the indices of all starting tiles in row-major order.
func (b *Board) StartTiles() []int {
	var out []int
	for i := range b.T {
		if b.T[i].Start {
			out = append(out, i)
		}
	}
	return out
}

// AddArmies places n armies of player on a ground tile.
func (b *Board) AddArmies(idx, player, n int) bool {
	if !b.validIndex(idx) || !b.validPlayer(player) || n <= 0 || b.T[idx].IsWater() {
		return false
	}
	b.T[idx].Armies[player] += n
	return true
}

// RemoveArmy takes one army of player off a tile.
func (b *Board) RemoveArmy(idx, player int) bool {
	if !b.validIndex(idx) || !b.validPlayer(player) || b.T[idx].Armies[player] == 0 {
		return false
	}
	b.T[idx].Armies[player]--
	return true
}

// AddCity places a city of player on a ground tile.
func (b *Board) AddCity(idx, player int) bool {
	if !b.validIndex(idx) || !b.validPlayer(player) || b.T[idx].IsWater() {
		return false
	}
	b.T[idx].Cities[player]++
	return true
}

// ArmiesOf counts a player's armies on the board.
func (b *Board) ArmiesOf(player int) int {
	total := 0
	for i := range b.T {
		total += b.T[i].Armies[player]
	}
	return total
}

// CitiesOf counts a player's cities on the board.
func (b *Board) CitiesOf(player int) int {
	total := 0
	for i := range b.T {
		total += b.T[i].Cities[player]
	}
	return total
}

// Clone copies the tile value data and re-derives adjacency and continents.
func (b *Board) Clone() *Board {
	c := &Board{W: b.W, H: b.H, T: make([]Tile, len(b.T)), players: b.players}
	for i := range b.T {
		src := &b.T[i]
		dst := &c.T[i]
		dst.Coord = src.Coord
		dst.Terrain = src.Terrain
		dst.Start = src.Start
		dst.Reachable = src.Reachable
		dst.MoveCost = src.MoveCost
		dst.Armies = append([]int(nil), src.Armies...)
		dst.Cities = append([]int(nil), src.Cities...)
	}
	c.link()
	return c
}
