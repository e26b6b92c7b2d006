// internal/game/history.go
//
// Guess history for a single session.
//
// Characteristics:
//   - Keeps accepted guesses in submission order.
//   - Set lookup for repeat detection; keys are upper-cased.
//   - Only grows; a new session starts with a new History.
//   - Owned by one Session, not safe for concurrent use.

package game

import "strings"

// History records accepted guesses.
type History struct {
	order []string
	seen  map[string]struct{}
}

// NewHistory constructs an empty History.
func NewHistory() *History {
	return &History{seen: make(map[string]struct{})}
}

// Add appends guess. It returns false and leaves the history unchanged
// if the guess was already recorded.
func (h *History) Add(guess string) bool {
	key := strings.ToUpper(guess)
	if _, ok := h.seen[key]; ok {
		return false
	}
	h.seen[key] = struct{}{}
	h.order = append(h.order, key)
	return true
}

// Contains reports whether guess was already recorded.
func (h *History) Contains(guess string) bool {
	_, ok := h.seen[strings.ToUpper(guess)]
	return ok
}

// Len returns the number of recorded guesses.
func (h *History) Len() int { return len(h.order) }

// Guesses returns a copy of the recorded guesses in submission order.
func (h *History) Guesses() []string {
	return append([]string(nil), h.order...)
}
