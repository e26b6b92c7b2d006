package console

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"github.com/varshneyabhi/wordle/internal/game"
)

// markColors maps each classification to its tile color.
var markColors = map[game.Mark]color.Color{
	game.MarkCorrect:   color.Green,
	game.MarkMisplaced: color.Yellow,
	game.MarkAbsent:    color.Magenta,
}

// Render prints one row per round, the legend once any round exists,
// and the remaining-attempts counter.
func (t *Terminal) Render(rounds []game.Round, remaining int) {
	for _, r := range rounds {
		cells := make([]string, 0, len(r.Tiles))
		for _, tile := range r.Tiles {
			cells = append(cells, t.paint(markColors[tile.Mark], string(tile.Letter)))
		}
		fmt.Fprintln(t.out, strings.Join(cells, " "))
	}

	if len(rounds) > 0 {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, "  Legend:")
		fmt.Fprintf(t.out, "    %s: Letter doesn't exist in original word.\n", t.paint(color.Magenta, "Magenta"))
		fmt.Fprintf(t.out, "    %s: Letter exists, but at different place.\n", t.paint(color.Yellow, "Yellow"))
		fmt.Fprintf(t.out, "    %s: Letter exists, at same place.\n", t.paint(color.Green, "Green"))
	}
	fmt.Fprintf(t.out, "\nRetry left: %d\n", remaining)
}

// Announce prints the final result of s.
func (t *Terminal) Announce(s *game.Session) {
	switch s.Outcome() {
	case game.OutcomeWon:
		n := s.AttemptsUsed()
		unit := "try"
		if n > 1 {
			unit = "tries"
		}
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.paint(color.Green, fmt.Sprintf("Congratulations!! You guessed it right in %d %s.", n, unit)))
	case game.OutcomeLost:
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.paint(color.Red, "Sorry, you couldn't guess the word."))
	}
}
