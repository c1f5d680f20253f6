package core

import "errors"

var (
	ErrEmptyLayout        = errors.New("layout has no tiles")
	ErrInvalidLayout      = errors.New("layout rows have different widths")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidPlayerCount = errors.New("player count must be positive")
	ErrStartOnWater       = errors.New("starting tile cannot be water")
)
