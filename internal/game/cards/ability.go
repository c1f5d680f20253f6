package cards

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AbilityKind identifies what an ability lets the active player do.
type AbilityKind int

const (
	BuildArmies AbilityKind = iota
	BuildCities
	MoveArmies
	DestroyArmies
	SailArmies
)

var abilityNames = map[AbilityKind]string{
	BuildArmies:   "build_armies",
	BuildCities:   "build_cities",
	MoveArmies:    "move_armies",
	DestroyArmies: "destroy_armies",
	SailArmies:    "sail_armies",
}

func (k AbilityKind) String() string {
	if name, ok := abilityNames[k]; ok {
		return name
	}
	return fmt.Sprintf("AbilityKind(%d)", int(k))
}

// ParseAbilityKind accepts the names produced by String, case-insensitively.
func ParseAbilityKind(s string) (AbilityKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range abilityNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown ability %q", s)
}

func (k *AbilityKind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, err := ParseAbilityKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = kind
	return nil
}

// Ability is one action granted by a card; Budget is the number of
// maneuvers it provides.
type Ability struct {
	Kind   AbilityKind `yaml:"kind"`
	Budget int         `yaml:"budget"`
}

func (a Ability) String() string {
	return fmt.Sprintf("%s x%d", a.Kind, a.Budget)
}
