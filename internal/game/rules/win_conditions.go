package rules

// Standing is a player's end-of-match ranking key.
type Standing struct {
	Player int
	Score  int
	Coins  int
	Armies int
}

// ResolveWinners applies the score, coins, armies tie-break chain.
func ResolveWinners(standings []Standing) []int {
	if len(standings) == 0 {
		return nil
	}
	keys := []func(Standing) int{
		func(s Standing) int { return s.Score },
		func(s Standing) int { return s.Coins },
		func(s Standing) int { return s.Armies },
	}
	pool := append([]Standing(nil), standings...)
	for _, key := range keys {
		best := key(pool[0])
		for _, s := range pool[1:] {
			if v := key(s); v > best {
				best = v
			}
		}
		kept := pool[:0]
		for _, s := range pool {
			if key(s) == best {
				kept = append(kept, s)
			}
		}
		pool = kept
		if len(pool) == 1 {
			break
		}
	}
	out := make([]int, len(pool))
	for i, s := range pool {
		out[i] = s.Player
	}
	return out
}
