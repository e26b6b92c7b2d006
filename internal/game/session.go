// internal/game/session.go
//
// Session state for one game.
// Responsibilities:
//   - Validate the target at creation (setup errors).
//   - Validate and apply guesses (length, letters, repeats, dictionary).
//   - Track state transitions: in_progress → won/lost.

package game

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Session holds the state of a single game.
type Session struct {
	ID      string // random UUID, used to correlate log lines
	target  string
	length  int
	limit   int
	dict    Dictionary
	history *History
	rounds  []Round
	outcome Outcome
}

// NewSession validates target and constructs a session in progress.
// Returned errors wrap ErrSetup.
func NewSession(target string, limit int, dict Dictionary) (*Session, error) {
	target = normalize(target)
	if target == "" {
		return nil, setupErr(ErrEmptySecret)
	}
	if !isLetters(target) {
		return nil, setupErr(ErrSecretNotLetters)
	}
	if dict != nil && !dict.Contains(strings.ToLower(target)) {
		return nil, setupErr(ErrSecretNotInDictionary)
	}
	if limit <= 0 {
		limit = DefaultAttemptLimit
	}
	return &Session{
		ID:      uuid.NewString(),
		target:  target,
		length:  len([]rune(target)),
		limit:   limit,
		dict:    dict,
		history: NewHistory(),
		outcome: OutcomeInProgress,
	}, nil
}

// Submit validates and scores a guess, mutating the session state.
//
// Validation rules, in order:
//   - Session must be in progress.
//   - Guess must have the target's length.
//   - Guess must contain letters only.
//   - Guess must not repeat an earlier accepted guess.
//   - With a dictionary, the guess must be a known word.
//
// A rejected guess leaves the session untouched.
func (s *Session) Submit(guess string) (Round, error) {
	if s.outcome != OutcomeInProgress {
		return Round{}, ErrSessionFinished
	}
	guess = normalize(guess)
	if len([]rune(guess)) != s.length {
		return Round{}, ErrWrongLength
	}
	if !isLetters(guess) {
		return Round{}, ErrNotLetters
	}
	if s.history.Contains(guess) {
		return Round{}, ErrAlreadyTried
	}
	if s.dict != nil && !s.dict.Contains(strings.ToLower(guess)) {
		return Round{}, ErrNotInDictionary
	}

	s.history.Add(guess)
	marks := Classify(guess, s.target)
	round := Round{Guess: guess, Tiles: tiles(guess, marks)}
	s.rounds = append(s.rounds, round)

	if allCorrect(marks) {
		s.outcome = OutcomeWon
	} else if len(s.rounds) >= s.limit {
		s.outcome = OutcomeLost
	}
	return round, nil
}

// Outcome reports the current state.
func (s *Session) Outcome() Outcome { return s.outcome }

// Finished reports whether the session reached a terminal state.
func (s *Session) Finished() bool { return s.outcome != OutcomeInProgress }

// AttemptsUsed is the number of accepted guesses.
func (s *Session) AttemptsUsed() int { return len(s.rounds) }

// AttemptLimit is the number of accepted guesses allowed.
func (s *Session) AttemptLimit() int { return s.limit }

// Remaining is the number of attempts left.
func (s *Session) Remaining() int { return s.limit - len(s.rounds) }

// Length is the target length in letters.
func (s *Session) Length() int { return s.length }

// Target returns the upper-cased target word.
func (s *Session) Target() string { return s.target }

// Rounds returns the accepted rounds in order.
func (s *Session) Rounds() []Round {
	return append([]Round(nil), s.rounds...)
}

// History returns the accepted guesses in order.
func (s *Session) History() []string { return s.history.Guesses() }

func setupErr(err error) error {
	return fmt.Errorf("%w: %w", ErrSetup, err)
}

// normalize trims surrounding whitespace and upper-cases s.
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// isLetters reports whether s consists of letters only.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
