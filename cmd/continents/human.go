package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/Continents/internal/game"
)

// humanStep lists the legal options and applies the one typed in.
func humanStep(m *game.Match, in *bufio.Scanner, out *bufio.Writer) error {
	gs := m.State()
	opts := gs.LegalOptions()
	seat, _ := gs.Player(gs.ActivePlayer())

	fmt.Fprintf(out, "%s (%s, %d maneuvers):\n", seat.Name, gs.Phase(), gs.Maneuvers())
	for i, o := range opts {
		fmt.Fprintf(out, "  [%d] %s\n", i, o)
	}
	for {
		fmt.Fprint(out, "> ")
		out.Flush()
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		choice, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil || choice < 0 || choice >= len(opts) {
			fmt.Fprintf(out, "pick a number between 0 and %d\n", len(opts)-1)
			continue
		}
		applyOption(m, opts[choice])
		return nil
	}
}

// applyOption forwards every step; a step that changes nothing, such as
// naming the opponent already targeted, is skipped by the state.
func applyOption(m *game.Match, o game.Option) {
	if o.Kind == game.OptionPass {
		m.EndAction()
		return
	}
	for _, s := range o.Steps {
		m.Apply(s)
	}
}
