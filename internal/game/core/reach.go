package core

// ReachMode selects which steps the reachability solver may take.
type ReachMode int

const (
	// Overland steps go to orthogonally adjacent ground tiles.
	Overland ReachMode = iota
	// Sail additionally allows crossing one contiguous run of water to any
	// ground tile bordering that run.
	Sail
)

func (m ReachMode) String() string {
	if m == Sail {
		return "sail"
	}
	return "overland"
}

// ClearReach resets the solver fields on every tile.
func (b *Board) ClearReach() {
	for i := range b.T {
		b.T[i].Reachable = false
		b.T[i].MoveCost = -1
	}
}

// Reach marks every tile reachable from origin with the given maneuver budget
// when moving armies travel together, and records the cheapest cost per tile.
// Each step costs moving maneuvers and is only taken while the remaining
// budget covers it. The reachable indices are returned in row-major order.
func (b *Board) Reach(origin, budget, moving int, mode ReachMode) []int {
	b.ClearReach()
	if !b.validIndex(origin) || b.T[origin].IsWater() || budget < 0 {
		return nil
	}
	if moving < 1 {
		moving = 1
	}

	b.T[origin].Reachable = true
	b.T[origin].MoveCost = 0
	queue := []int{origin}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cost := b.T[cur].MoveCost
		if budget-cost-moving < 0 {
			continue
		}
		next := cost + moving
		for _, n := range b.Steps(cur, mode) {
			t := &b.T[n]
			if t.Reachable && t.MoveCost <= next {
				continue
			}
			t.Reachable = true
			t.MoveCost = next
			queue = append(queue, n)
		}
	}
	return b.ReachableTiles()
}

// ReachableTiles lists the tiles marked by the last Reach call.
func (b *Board) ReachableTiles() []int {
	var out []int
	for i := range b.T {
		if b.T[i].Reachable {
			out = append(out, i)
		}
	}
	return out
}

// Steps returns the ground tiles one step away from idx, deduplicated, in
// neighbour order with sail destinations following the overland ones.
func (b *Board) Steps(idx int, mode ReachMode) []int {
	if !b.validIndex(idx) {
		return nil
	}
	var out []int
	seen := map[int]bool{idx: true}
	for _, n := range b.T[idx].Neighbors {
		if b.T[n].IsGround() && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	if mode != Sail {
		return out
	}

	visitedWater := make(map[int]bool)
	for _, n := range b.T[idx].Neighbors {
		if !b.T[n].IsWater() || visitedWater[n] {
			continue
		}
		visitedWater[n] = true
		run := []int{n}
		for len(run) > 0 {
			w := run[0]
			run = run[1:]
			for _, m := range b.T[w].Neighbors {
				switch {
				case b.T[m].IsWater():
					if !visitedWater[m] {
						visitedWater[m] = true
						run = append(run, m)
					}
				case !seen[m]:
					seen[m] = true
					out = append(out, m)
				}
			}
		}
	}
	return out
}
