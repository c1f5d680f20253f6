package common

import (
	"image/color"
)

// PlayerColor is the colour tag attached to a seat at the table.
type PlayerColor struct {
	Name string
	RGBA color.RGBA
	// ANSI is the terminal escape used by text renderings.
	ANSI string
}

const ANSIReset = "\033[0m"

// PlayerColors lists the seat colours in seating order. Its length is the
// largest supported table.
var PlayerColors = []PlayerColor{
	{Name: "red", RGBA: color.RGBA{255, 0, 0, 255}, ANSI: "\033[31m"},
	{Name: "green", RGBA: color.RGBA{0, 255, 0, 255}, ANSI: "\033[32m"},
	{Name: "blue", RGBA: color.RGBA{0, 0, 255, 255}, ANSI: "\033[34m"},
	{Name: "yellow", RGBA: color.RGBA{255, 255, 0, 255}, ANSI: "\033[33m"},
	{Name: "orange", RGBA: color.RGBA{255, 165, 0, 255}, ANSI: "\033[38;5;208m"},
}

// MaxPlayers is the number of distinct seat colours.
var MaxPlayers = len(PlayerColors)

// ColorFor returns the colour of a seat, wrapping around for out-of-range seats.
func ColorFor(seat int) PlayerColor {
	if seat < 0 {
		seat = -seat
	}
	return PlayerColors[seat%len(PlayerColors)]
}

// ColorByName looks up a seat colour by its name.
func ColorByName(name string) (PlayerColor, bool) {
	for _, c := range PlayerColors {
		if c.Name == name {
			return c, true
		}
	}
	return PlayerColor{}, false
}
