package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// OptionKind groups the candidate moves an automated player considers.
type OptionKind int

const (
	OptionPass OptionKind = iota
	OptionCard
	OptionAbility
	OptionBuild
	OptionMove
	OptionDestroy
	OptionJoker
)

func (k OptionKind) String() string {
	switch k {
	case OptionPass:
		return "pass"
	case OptionCard:
		return "card"
	case OptionAbility:
		return "ability"
	case OptionBuild:
		return "build"
	case OptionMove:
		return "move"
	case OptionDestroy:
		return "destroy"
	case OptionJoker:
		return "joker"
	default:
		return fmt.Sprintf("OptionKind(%d)", int(k))
	}
}

// Option is one candidate decision: a short sequence of selections applied
// together, or a pass which ends the current action.
type Option struct {
	Kind  OptionKind
	Steps []Selection
}

// Pass returns the option that ends the current action.
func Pass() Option { return Option{Kind: OptionPass} }

func (o Option) String() string {
	if o.Kind == OptionPass {
		return "pass"
	}
	parts := make([]string, len(o.Steps))
	for i, s := range o.Steps {
		parts[i] = s.String()
	}
	return fmt.Sprintf("%s: %s", o.Kind, strings.Join(parts, " -> "))
}

// LegalOptions enumerates the decisions open to the active player in a
// stable order. Pass is listed last, except when buying a card is
// mandatory. Moves are enumerated one army at a time: a lift followed by a
// deposit one step away.
func (gs *GameState) LegalOptions() []Option {
	var out []Option
	switch {
	case gs.phase.IsTerminal():
		return nil
	case gs.phase == states.PickCard:
		coins := gs.players[gs.active].Coins
		for i, c := range gs.offer {
			if c.Cost <= coins {
				out = append(out, Option{Kind: OptionCard, Steps: []Selection{PickCardAt(i)}})
			}
		}
		if len(out) > 0 {
			return out
		}
	case gs.phase.IsAbilityChoice():
		for i := range gs.viable {
			out = append(out, Option{Kind: OptionAbility, Steps: []Selection{PickAbilityAt(i)}})
		}
	case gs.phase == states.BuildArmy:
		if gs.maneuvers > 0 && gs.players[gs.active].Armies < gs.settings.MaxArmies {
			out = gs.tileOptions(OptionBuild, legalTargets.ArmyTargets(gs.board, gs.active))
		}
	case gs.phase == states.BuildCity:
		if gs.maneuvers > 0 && gs.players[gs.active].Cities < gs.settings.MaxCities {
			out = gs.tileOptions(OptionBuild, legalTargets.CityTargets(gs.board, gs.active))
		}
	case gs.phase == states.MoveArmy:
		out = gs.moveOptions(core.Overland)
	case gs.phase == states.SailArmy:
		out = gs.moveOptions(core.Sail)
	case gs.phase == states.DestroyArmy:
		out = gs.destroyOptions()
	case gs.phase == states.JokerAssignment:
		if gs.maneuvers > 0 {
			for _, g := range gs.goods {
				out = append(out, Option{Kind: OptionJoker, Steps: []Selection{PickGood(g.Name)}})
			}
		}
	}
	return append(out, Pass())
}

func (gs *GameState) tileOptions(kind OptionKind, tiles []int) []Option {
	out := make([]Option, 0, len(tiles))
	for _, idx := range tiles {
		out = append(out, Option{Kind: kind, Steps: []Selection{PickTile(gs.board.T[idx].Coord)}})
	}
	return out
}

func (gs *GameState) moveOptions(mode core.ReachMode) []Option {
	var out []Option
	if gs.held > 0 {
		// Finish a move started by hand.
		for _, idx := range gs.board.ReachableTiles() {
			if idx != gs.origin {
				out = append(out, Option{Kind: OptionMove, Steps: []Selection{PickTile(gs.board.T[idx].Coord)}})
			}
		}
		return out
	}
	if gs.maneuvers < 1 {
		return nil
	}
	for _, from := range legalTargets.ArmyTiles(gs.board, gs.active) {
		src := gs.board.T[from].Coord
		for _, to := range gs.board.Steps(from, mode) {
			out = append(out, Option{
				Kind:  OptionMove,
				Steps: []Selection{PickTile(src), PickTile(gs.board.T[to].Coord)},
			})
		}
	}
	return out
}

func (gs *GameState) destroyOptions() []Option {
	if gs.maneuvers < 1 {
		return nil
	}
	var out []Option
	for p := range gs.players {
		if p == gs.active {
			continue
		}
		for _, idx := range legalTargets.ArmyTiles(gs.board, p) {
			out = append(out, Option{
				Kind:  OptionDestroy,
				Steps: []Selection{PickPlayer(p), PickTile(gs.board.T[idx].Coord)},
			})
		}
	}
	return out
}

// ApplyOption applies every step of the option, or ends the action for a pass.
func (gs *GameState) ApplyOption(o Option) {
	if o.Kind == OptionPass {
		gs.EndAction()
		return
	}
	for _, s := range o.Steps {
		gs.Apply(s)
	}
}
