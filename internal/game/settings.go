package game

import (
	"errors"

	"github.com/mitchelldurbincs/Continents/internal/common"
	"github.com/mitchelldurbincs/Continents/internal/game/core"
)

var (
	ErrTooFewPlayers  = errors.New("a match needs at least two players")
	ErrTooManyPlayers = errors.New("too many players")
)

const (
	MinPlayers            = 2
	DefaultStartingArmies = 3
	DefaultMaxArmies      = 14
	DefaultMaxCities      = 3
	DefaultOfferSize      = 6
)

// Settings tunes a match. Zero values select the defaults, some of which
// depend on the number of players.
type Settings struct {
	StartingArmies int
	MaxArmies      int
	MaxCities      int
	StartingCoins  int
	MaxTurns       int
	OfferSize      int
	// StartTiles are flagged as starting tiles in addition to the 'S' tiles
	// of the layout. Water tiles are skipped with a warning.
	StartTiles []core.Coordinate
}

func DefaultSettings() Settings {
	return Settings{
		StartingArmies: DefaultStartingArmies,
		MaxArmies:      DefaultMaxArmies,
		MaxCities:      DefaultMaxCities,
		OfferSize:      DefaultOfferSize,
	}
}

var (
	startingCoins = map[int]int{2: 14, 3: 11, 4: 9, 5: 8}
	maxTurns      = map[int]int{2: 13, 3: 10, 4: 8, 5: 7}
)

// StartingCoinsFor is the purse each player begins with at a table of the
// given size.
func StartingCoinsFor(players int) int {
	if c, ok := startingCoins[players]; ok {
		return c
	}
	return startingCoins[common.MaxPlayers]
}

// MaxTurnsFor is the number of rounds played at a table of the given size.
func MaxTurnsFor(players int) int {
	if t, ok := maxTurns[players]; ok {
		return t
	}
	return maxTurns[common.MaxPlayers]
}

// withDefaults fills every zero field.
func (s Settings) withDefaults(players int) Settings {
	d := DefaultSettings()
	if s.StartingArmies <= 0 {
		s.StartingArmies = d.StartingArmies
	}
	if s.MaxArmies <= 0 {
		s.MaxArmies = d.MaxArmies
	}
	if s.MaxCities <= 0 {
		s.MaxCities = d.MaxCities
	}
	if s.OfferSize <= 0 {
		s.OfferSize = d.OfferSize
	}
	if s.StartingCoins <= 0 {
		s.StartingCoins = StartingCoinsFor(players)
	}
	if s.MaxTurns <= 0 {
		s.MaxTurns = MaxTurnsFor(players)
	}
	s.StartTiles = append([]core.Coordinate(nil), s.StartTiles...)
	return s
}
