package states

import (
	"fmt"

	"github.com/mitchelldurbincs/Continents/internal/game/cards"
)

// GamePhase is the step of the turn the active player is in.
type GamePhase int

const (
	// PickCard - active player buys a card from the offer
	PickCard GamePhase = iota

	// PickAbilityAnd - both abilities of the card are used, one at a time
	PickAbilityAnd

	// PickAbilityOr - exactly one of the card's abilities is used
	PickAbilityOr

	BuildArmy
	BuildCity
	MoveArmy
	SailArmy
	DestroyArmy

	// JokerAssignment - after the last round, jokers are turned into goods
	JokerAssignment

	// EndGame - final state, winners are known
	EndGame
)

var phaseNames = [...]string{
	PickCard:        "PickCard",
	PickAbilityAnd:  "PickAbilityAnd",
	PickAbilityOr:   "PickAbilityOr",
	BuildArmy:       "BuildArmy",
	BuildCity:       "BuildCity",
	MoveArmy:        "MoveArmy",
	SailArmy:        "SailArmy",
	DestroyArmy:     "DestroyArmy",
	JokerAssignment: "JokerAssignment",
	EndGame:         "EndGame",
}

func (p GamePhase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == EndGame
}

// IsAction reports whether the phase spends maneuvers of a single ability.
func (p GamePhase) IsAction() bool {
	return p >= BuildArmy && p <= DestroyArmy
}

// IsAbilityChoice reports whether the player is choosing between staged abilities.
func (p GamePhase) IsAbilityChoice() bool {
	return p == PickAbilityAnd || p == PickAbilityOr
}

// ForAbility maps an ability to the phase in which it is played.
func ForAbility(kind cards.AbilityKind) GamePhase {
	switch kind {
	case cards.BuildArmies:
		return BuildArmy
	case cards.BuildCities:
		return BuildCity
	case cards.MoveArmies:
		return MoveArmy
	case cards.SailArmies:
		return SailArmy
	case cards.DestroyArmies:
		return DestroyArmy
	default:
		return PickCard
	}
}

var actionPhases = []GamePhase{BuildArmy, BuildCity, MoveArmy, SailArmy, DestroyArmy}

// AllowedTransitions returns the valid phases this phase can transition to.
// Finishing a turn returns to PickCard, or enters JokerAssignment or EndGame
// once the last round is over.
func (p GamePhase) AllowedTransitions() []GamePhase {
	turnOver := []GamePhase{PickCard, JokerAssignment, EndGame}
	switch {
	case p == PickCard:
		out := append([]GamePhase{PickAbilityAnd, PickAbilityOr}, actionPhases...)
		return append(out, turnOver...)
	case p.IsAbilityChoice():
		return append(append([]GamePhase(nil), actionPhases...), turnOver...)
	case p.IsAction():
		return append([]GamePhase{PickAbilityAnd}, turnOver...)
	case p == JokerAssignment:
		return []GamePhase{JokerAssignment, EndGame}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a phase name back to a GamePhase.
func ParsePhase(s string) (GamePhase, error) {
	for i, name := range phaseNames {
		if name == s {
			return GamePhase(i), nil
		}
	}
	return PickCard, fmt.Errorf("unknown phase %q", s)
}
