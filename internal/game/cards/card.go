package cards

import (
	"fmt"
	"strings"
)

// Card grants a good and one or two abilities. When And is set a two-ability
// card lets the player use both abilities; otherwise only one of them.
// Cost is assigned from the card's position in the offer.
type Card struct {
	Good      string    `yaml:"good"`
	Quantity  int       `yaml:"quantity"`
	And       bool      `yaml:"and"`
	Abilities []Ability `yaml:"abilities"`
	Cost      int       `yaml:"-"`
}

// Clone returns a copy that shares no slices with the receiver.
func (c Card) Clone() Card {
	c.Abilities = append([]Ability(nil), c.Abilities...)
	return c
}

// IsJoker reports whether the card grants jokers.
func (c Card) IsJoker() bool { return c.Good == Joker }

func (c Card) String() string {
	parts := make([]string, len(c.Abilities))
	for i, a := range c.Abilities {
		parts[i] = a.String()
	}
	sep := " OR "
	if c.And {
		sep = " AND "
	}
	return fmt.Sprintf("%dx%s [%s] $%d", c.Quantity, c.Good, strings.Join(parts, sep), c.Cost)
}

// CostAt is the price of the card at the given 0-based offer position.
func CostAt(position int) int {
	return position / 2
}
