package testutil

import (
	"github.com/mitchelldurbincs/Continents/internal/game/cards"
)

// ScenarioLayout is a 5x5 map with three continents and a start tile in the
// middle of the largest one.
var ScenarioLayout = []string{
	"WGGWG",
	"WGGWG",
	"WWSWG",
	"GWGWW",
	"GWGWW",
}

// StripLayout is a single row of ground with a start tile at the west end.
var StripLayout = []string{"SGGGG"}

// IslandLayout is two islands separated by a channel, start on the west one.
var IslandLayout = []string{
	"SGWGG",
	"GGWGG",
}

// TestGoods is a two-good catalog.
var TestGoods = []cards.Good{
	{Name: "Carrot", Thresholds: [4]int{3, 5, 7, 8}},
	{Name: "Gem", Thresholds: [4]int{1, 2, 3, 4}},
}

// SingleAbilityCard builds a one-ability card.
func SingleAbilityCard(good string, kind cards.AbilityKind, budget int) cards.Card {
	return cards.Card{
		Good:      good,
		Quantity:  1,
		Abilities: []cards.Ability{{Kind: kind, Budget: budget}},
	}
}

// DualAbilityCard builds a two-ability card; and selects AND over OR.
func DualAbilityCard(good string, and bool, first, second cards.Ability) cards.Card {
	return cards.Card{
		Good:      good,
		Quantity:  1,
		And:       and,
		Abilities: []cards.Ability{first, second},
	}
}

// DeckOf wraps cards in a deck using TestGoods.
func DeckOf(cs ...cards.Card) cards.Deck {
	return cards.Deck{Goods: append([]cards.Good(nil), TestGoods...), Cards: cs}
}

// TestDeck is a small deck covering every ability.
func TestDeck() cards.Deck {
	return DeckOf(
		SingleAbilityCard("Carrot", cards.BuildArmies, 2),
		SingleAbilityCard("Gem", cards.MoveArmies, 3),
		SingleAbilityCard("Carrot", cards.SailArmies, 2),
		SingleAbilityCard(cards.Joker, cards.BuildCities, 1),
		SingleAbilityCard("Gem", cards.DestroyArmies, 1),
		DualAbilityCard("Carrot", true, cards.Ability{Kind: cards.BuildArmies, Budget: 1}, cards.Ability{Kind: cards.MoveArmies, Budget: 2}),
		DualAbilityCard("Gem", false, cards.Ability{Kind: cards.BuildCities, Budget: 1}, cards.Ability{Kind: cards.SailArmies, Budget: 3}),
		SingleAbilityCard("Carrot", cards.MoveArmies, 2),
	)
}
