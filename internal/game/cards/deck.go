package cards

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyDeck   = errors.New("deck has no cards")
	ErrUnknownGood = errors.New("card references an unknown good")
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidGood = errors.New("invalid good")
)

//go:embed default_deck.yaml
var defaultDeckYAML []byte

// Deck is a card catalog: the goods that can be collected, the base card
// pool and the bonus cards shuffled in for larger tables.
type Deck struct {
	Goods          []Good `yaml:"goods"`
	Cards          []Card `yaml:"cards"`
	Bonus          []Card `yaml:"bonus"`
	BonusThreshold int    `yaml:"bonus_threshold"`
}

// DefaultDeck decodes the built-in catalog.
func DefaultDeck() (Deck, error) {
	d, err := ParseDeck(defaultDeckYAML)
	if err != nil {
		return Deck{}, fmt.Errorf("default deck: %w", err)
	}
	return d, nil
}

// LoadDeck reads and validates a YAML deck file.
func LoadDeck(path string) (Deck, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, err
	}
	d, err := ParseDeck(raw)
	if err != nil {
		return Deck{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func ParseDeck(raw []byte) (Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Deck{}, err
	}
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

func (d Deck) Validate() error {
	if len(d.Cards) == 0 {
		return ErrEmptyDeck
	}
	names := make(map[string]bool, len(d.Goods))
	for _, g := range d.Goods {
		if g.Name == "" || g.Name == Joker || names[g.Name] {
			return fmt.Errorf("%w: %q", ErrInvalidGood, g.Name)
		}
		prev := 0
		for _, t := range g.Thresholds {
			if t <= prev {
				return fmt.Errorf("%w: %s thresholds must be positive and increasing", ErrInvalidGood, g.Name)
			}
			prev = t
		}
		names[g.Name] = true
	}
	all := append(append([]Card(nil), d.Cards...), d.Bonus...)
	for i, c := range all {
		if c.Good != Joker && !names[c.Good] {
			return fmt.Errorf("card %d: %w: %q", i, ErrUnknownGood, c.Good)
		}
		if c.Quantity < 1 {
			return fmt.Errorf("card %d: %w: quantity %d", i, ErrInvalidCard, c.Quantity)
		}
		if n := len(c.Abilities); n < 1 || n > 2 {
			return fmt.Errorf("card %d: %w: %d abilities", i, ErrInvalidCard, n)
		}
		for _, a := range c.Abilities {
			if a.Budget < 1 {
				return fmt.Errorf("card %d: %w: %s budget %d", i, ErrInvalidCard, a.Kind, a.Budget)
			}
		}
	}
	return nil
}

// ForPlayers returns fresh copies of the cards used at a table of the given
// size: the base pool, plus the bonus pool when players exceed the threshold.
func (d Deck) ForPlayers(players int) []Card {
	out := make([]Card, 0, len(d.Cards)+len(d.Bonus))
	for _, c := range d.Cards {
		out = append(out, c.Clone())
	}
	if d.BonusThreshold > 0 && players > d.BonusThreshold {
		for _, c := range d.Bonus {
			out = append(out, c.Clone())
		}
	}
	return out
}
