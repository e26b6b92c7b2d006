// internal/game/engine.go
//
// Feedback engine: classifies every letter of a guess against the target.
//
// Notes:
//   - Inputs are compared rune by rune; callers upper-case them first.
//   - Classify is pure. Claims live in a slice local to one call.

package game

import "fmt"

// Classify implements the two-pass, duplicate-aware Wordle classification.
//
// Pass 1:
//   - Mark exact positional matches Correct; those target indices are consumed.
//
// Pass 2 (left to right over the guess):
//   - For each non-Correct letter, claim the lowest target index holding the
//     same letter that is neither consumed nor already claimed → Misplaced.
//   - No such index → Absent.
//
// Leftmost repeats win, so a letter never receives more Correct+Misplaced
// marks than it has occurrences in the target.
//
// Classify panics if guess and target differ in length; callers validate
// shape before invoking it.
func Classify(guess, target string) []Mark {
	g := []rune(guess)
	t := []rune(target)
	if len(g) != len(t) {
		panic(fmt.Sprintf("game: classify length mismatch: guess %d, target %d", len(g), len(t)))
	}

	n := len(g)
	res := make([]Mark, n)
	// used[j] is true once target index j is an exact match or has been claimed.
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			res[i] = MarkCorrect
			used[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		res[i] = MarkAbsent
		for j := 0; j < n; j++ {
			if !used[j] && t[j] == g[i] {
				res[i] = MarkMisplaced
				used[j] = true
				break
			}
		}
	}
	return res
}

// tiles pairs each guess letter with its mark.
func tiles(guess string, marks []Mark) []Tile {
	out := make([]Tile, 0, len(marks))
	for i, r := range []rune(guess) {
		out = append(out, Tile{Letter: r, Mark: marks[i]})
	}
	return out
}

// allCorrect returns true if all marks are MarkCorrect.
func allCorrect(m []Mark) bool {
	for _, x := range m {
		if x != MarkCorrect {
			return false
		}
	}
	return true
}
