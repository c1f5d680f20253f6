package game

import (
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
	"github.com/mitchelldurbincs/Continents/internal/game/rules"
	"github.com/mitchelldurbincs/Continents/internal/game/states"
)

// Apply feeds one player input to the state machine. Selections that are
// not valid in the current phase are ignored and leave the state unchanged.
func (gs *GameState) Apply(sel Selection) {
	var changed bool
	switch gs.phase {
	case states.PickCard:
		if sel.Kind == SelectCard {
			changed = gs.pickCard(sel.Index)
		}
	case states.PickAbilityAnd, states.PickAbilityOr:
		if sel.Kind == SelectAbility {
			changed = gs.pickAbility(sel.Index)
		}
	case states.BuildArmy:
		if idx, ok := gs.tileIndex(sel); ok {
			changed = gs.buildArmy(idx)
		}
	case states.BuildCity:
		if idx, ok := gs.tileIndex(sel); ok {
			changed = gs.buildCity(idx)
		}
	case states.MoveArmy:
		if idx, ok := gs.tileIndex(sel); ok {
			changed = gs.moveArmy(idx, core.Overland)
		}
	case states.SailArmy:
		if idx, ok := gs.tileIndex(sel); ok {
			changed = gs.moveArmy(idx, core.Sail)
		}
	case states.DestroyArmy:
		switch sel.Kind {
		case SelectPlayer:
			changed = gs.selectTarget(sel.Index)
		case SelectTile:
			if idx, ok := gs.tileIndex(sel); ok {
				changed = gs.destroyArmy(idx)
			}
		}
	case states.JokerAssignment:
		if sel.Kind == SelectGood {
			changed = gs.assignJoker(sel.Good)
		}
	}
	if changed {
		gs.commit()
	}
}

// EndAction ends the current step. In an action phase the remaining
// maneuvers are forfeited and held armies go back to their origin; the turn
// then passes on unless a staged AND ability is still pending. Passing on a
// card is only allowed when nothing in the offer is affordable.
func (gs *GameState) EndAction() {
	switch {
	case gs.phase.IsTerminal():
		return
	case gs.phase == states.PickCard:
		if gs.canAffordAny() {
			return
		}
		gs.finishTurn()
	case gs.phase.IsAbilityChoice():
		gs.viable = nil
		gs.finishTurn()
	case gs.phase.IsAction():
		gs.returnHeld()
		gs.maneuvers = 0
		gs.target = -1
		if len(gs.viable) > 0 {
			gs.phase = states.PickAbilityAnd
		} else {
			gs.finishTurn()
		}
	case gs.phase == states.JokerAssignment:
		gs.nextJokerHolder()
	}
	gs.commit()
}

func (gs *GameState) commit() {
	gs.version++
	gs.refresh()
}

func (gs *GameState) tileIndex(sel Selection) (int, bool) {
	if sel.Kind != SelectTile {
		return -1, false
	}
	return gs.board.Index(sel.Tile)
}

func (gs *GameState) canAffordAny() bool {
	coins := gs.players[gs.active].Coins
	for _, c := range gs.offer {
		if c.Cost <= coins {
			return true
		}
	}
	return false
}

func (gs *GameState) pickCard(slot int) bool {
	if slot < 0 || slot >= len(gs.offer) {
		return false
	}
	card := gs.offer[slot]
	p := &gs.players[gs.active]
	if card.Cost > p.Coins {
		return false
	}
	p.Coins -= card.Cost
	p.Goods[card.Good] += card.Quantity
	gs.offer = append(gs.offer[:slot], gs.offer[slot+1:]...)

	switch len(card.Abilities) {
	case 0:
		gs.finishTurn()
	case 1:
		gs.beginAbility(card.Abilities[0])
	default:
		gs.viable = append([]cards.Ability(nil), card.Abilities...)
		if card.And {
			gs.phase = states.PickAbilityAnd
		} else {
			gs.phase = states.PickAbilityOr
		}
	}
	return true
}

func (gs *GameState) pickAbility(i int) bool {
	if i < 0 || i >= len(gs.viable) {
		return false
	}
	ability := gs.viable[i]
	if gs.phase == states.PickAbilityAnd {
		gs.viable = append(gs.viable[:i:i], gs.viable[i+1:]...)
	} else {
		gs.viable = nil
	}
	gs.beginAbility(ability)
	return true
}

func (gs *GameState) beginAbility(a cards.Ability) {
	gs.phase = states.ForAbility(a.Kind)
	gs.maneuvers = a.Budget
	gs.held = 0
	gs.origin = -1
	gs.target = -1
	if a.Kind == cards.DestroyArmies {
		gs.target = gs.firstOpponent()
	}
}

// firstOpponent is the lowest seat other than the active player.
func (gs *GameState) firstOpponent() int {
	for p := range gs.players {
		if p != gs.active {
			return p
		}
	}
	return -1
}

func (gs *GameState) buildArmy(idx int) bool {
	if gs.maneuvers <= 0 || gs.players[gs.active].Armies >= gs.settings.MaxArmies {
		return false
	}
	if !legalTargets.CanBuildArmy(gs.board, idx, gs.active) {
		return false
	}
	gs.board.AddArmies(idx, gs.active, 1)
	gs.maneuvers--
	return true
}

func (gs *GameState) buildCity(idx int) bool {
	if gs.maneuvers <= 0 || gs.players[gs.active].Cities >= gs.settings.MaxCities {
		return false
	}
	if !legalTargets.CanBuildCity(gs.board, idx, gs.active) {
		return false
	}
	gs.board.AddCity(idx, gs.active)
	gs.maneuvers--
	return true
}

// moveArmy handles both halves of a move. Selecting a tile with one of the
// player's armies lifts it, provided nothing else is held or the tile is
// the origin of the armies already held, and the budget covers a step for
// the larger group. Selecting a reachable tile while holding armies puts
// them down there at the tile's cost.
func (gs *GameState) moveArmy(idx int, mode core.ReachMode) bool {
	t := &gs.board.T[idx]
	canLift := t.Armies[gs.active] > 0 &&
		(gs.held == 0 || idx == gs.origin) &&
		gs.maneuvers >= gs.held+1
	if canLift {
		gs.board.RemoveArmy(idx, gs.active)
		gs.held++
		gs.origin = idx
		gs.board.Reach(idx, gs.maneuvers, gs.held, mode)
		return true
	}
	if gs.held > 0 && t.Reachable {
		gs.board.AddArmies(idx, gs.active, gs.held)
		gs.maneuvers -= t.MoveCost
		gs.held = 0
		gs.origin = -1
		gs.board.ClearReach()
		return true
	}
	return false
}

// returnHeld puts lifted armies back on their origin and clears the
// reachability marks.
func (gs *GameState) returnHeld() {
	if gs.held > 0 && gs.origin >= 0 {
		gs.board.AddArmies(gs.origin, gs.active, gs.held)
	}
	gs.held = 0
	gs.origin = -1
	gs.board.ClearReach()
}

func (gs *GameState) selectTarget(p int) bool {
	if p < 0 || p >= len(gs.players) || p == gs.active || p == gs.target {
		return false
	}
	gs.target = p
	return true
}

func (gs *GameState) destroyArmy(idx int) bool {
	if gs.maneuvers <= 0 || gs.target < 0 {
		return false
	}
	if !gs.board.RemoveArmy(idx, gs.target) {
		return false
	}
	gs.maneuvers--
	return true
}

func (gs *GameState) assignJoker(name string) bool {
	if name == cards.Joker || gs.maneuvers <= 0 {
		return false
	}
	known := false
	for _, g := range gs.goods {
		if g.Name == name {
			known = true
			break
		}
	}
	p := &gs.players[gs.active]
	if !known || p.Jokers() <= 0 {
		return false
	}
	p.Goods[cards.Joker]--
	if p.Goods[cards.Joker] == 0 {
		delete(p.Goods, cards.Joker)
	}
	p.Goods[name]++
	gs.maneuvers--
	if gs.maneuvers == 0 {
		gs.nextJokerHolder()
	}
	return true
}

// finishTurn passes play to the next seat, refills the offer and starts the
// joker round once the last round is complete or no cards are left.
func (gs *GameState) finishTurn() {
	gs.maneuvers = 0
	gs.viable = nil
	gs.target = -1
	gs.fillOffer()

	gs.active = (gs.active + 1) % len(gs.players)
	if gs.active == 0 {
		gs.turn++
	}
	if gs.turn > gs.maxTurns || len(gs.offer) == 0 {
		gs.startJokerRound()
		return
	}
	gs.phase = states.PickCard
}

func (gs *GameState) startJokerRound() {
	gs.phase = states.JokerAssignment
	gs.active = -1
	gs.nextJokerHolder()
}

// nextJokerHolder hands the joker round to the next seat holding jokers,
// or ends the match when there is none.
func (gs *GameState) nextJokerHolder() {
	gs.maneuvers = 0
	for p := gs.active + 1; p < len(gs.players); p++ {
		if j := gs.players[p].Jokers(); j > 0 {
			gs.active = p
			gs.maneuvers = j
			return
		}
	}
	gs.endGame()
}

func (gs *GameState) endGame() {
	gs.phase = states.EndGame
	gs.maneuvers = 0
	if gs.active < 0 || gs.active >= len(gs.players) {
		gs.active = 0
	}
	gs.refresh()
	gs.winners = rules.ResolveWinners(gs.Standings())
}
