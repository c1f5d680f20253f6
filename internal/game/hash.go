package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Hash fingerprints the observable state: phase, turn order, purses, goods,
// offer, pending move and every tile's counters. Equal states hash equally.
func (gs *GameState) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}

	writeInt(int(gs.phase))
	writeInt(gs.active)
	writeInt(gs.turn)
	writeInt(gs.maneuvers)
	writeInt(gs.held)
	writeInt(gs.origin)
	writeInt(gs.target)
	for _, a := range gs.viable {
		writeInt(int(a.Kind))
		writeInt(a.Budget)
	}
	for _, p := range gs.players {
		writeInt(p.Coins)
		writeInt(p.Score)
		for _, name := range sortedGoods(p.Goods) {
			h.Write([]byte(name))
			writeInt(p.Goods[name])
		}
	}
	for _, c := range gs.offer {
		h.Write([]byte(c.Good))
		writeInt(c.Quantity)
		writeInt(c.Cost)
	}
	writeInt(len(gs.pool))
	for i := range gs.board.T {
		t := &gs.board.T[i]
		for p := range t.Armies {
			writeInt(t.Armies[p])
			writeInt(t.Cities[p])
		}
	}
	return h.Sum64()
}
