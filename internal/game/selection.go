package game

import (
	"fmt"

	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

// SelectionKind tags what a Selection refers to.
type SelectionKind int

const (
	SelectCard SelectionKind = iota
	SelectAbility
	SelectTile
	SelectPlayer
	SelectGood
)

func (k SelectionKind) String() string {
	switch k {
	case SelectCard:
		return "card"
	case SelectAbility:
		return "ability"
	case SelectTile:
		return "tile"
	case SelectPlayer:
		return "player"
	case SelectGood:
		return "good"
	default:
		return fmt.Sprintf("SelectionKind(%d)", int(k))
	}
}

// Selection is one player input: an offer slot, a staged ability, a board
// tile, an opponent or a good. Only the field matching Kind is meaningful.
type Selection struct {
	Kind  SelectionKind
	Index int
	Tile  core.Coordinate
	Good  string
}

func PickCardAt(slot int) Selection        { return Selection{Kind: SelectCard, Index: slot} }
func PickAbilityAt(i int) Selection        { return Selection{Kind: SelectAbility, Index: i} }
func PickTile(c core.Coordinate) Selection { return Selection{Kind: SelectTile, Tile: c} }
func PickPlayer(p int) Selection           { return Selection{Kind: SelectPlayer, Index: p} }
func PickGood(name string) Selection       { return Selection{Kind: SelectGood, Good: name} }

func (s Selection) String() string {
	switch s.Kind {
	case SelectTile:
		return fmt.Sprintf("tile %s", s.Tile)
	case SelectGood:
		return fmt.Sprintf("good %s", s.Good)
	default:
		return fmt.Sprintf("%s %d", s.Kind, s.Index)
	}
}
