// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/misplaced/absent).
//   - Tile/Round: one classified guess, as handed to the renderer.
//   - Outcome: coarse session state (in_progress/won/lost).
//   - Dictionary: the optional word-validity capability.

package game

import "errors"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":   letter is in the target at this position.
//   - "misplaced": letter is in the target at another, unclaimed position.
//   - "absent":    letter is not in the target, or all its occurrences are claimed.
type Mark string

const (
	MarkCorrect   Mark = "correct"
	MarkMisplaced Mark = "misplaced"
	MarkAbsent    Mark = "absent"
)

// Outcome is the session state. Won and Lost are terminal.
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// DefaultAttemptLimit is the number of accepted guesses a session allows.
const DefaultAttemptLimit = 10

// Tile is one guessed letter together with its classification.
type Tile struct {
	Letter rune
	Mark   Mark
}

// Round is an accepted guess and its per-letter feedback, in guess order.
type Round struct {
	Guess string
	Tiles []Tile
}

// Dictionary reports whether a lowercase word is a known dictionary word.
// A nil Dictionary disables validation.
type Dictionary interface {
	Contains(word string) bool
}

// ErrSetup is wrapped by every error that aborts a session before the first round.
var ErrSetup = errors.New("setup failed")

// Setup errors.
var (
	ErrSecretMismatch        = errors.New("both words are not matching")
	ErrEmptySecret           = errors.New("secret word is empty")
	ErrSecretNotLetters      = errors.New("secret word must contain letters only")
	ErrSecretNotInDictionary = errors.New("not a valid dictionary word")
)

// Round-level rejections. None of them consumes an attempt.
var (
	ErrWrongLength     = errors.New("wrong length of word")
	ErrNotLetters      = errors.New("guess must contain letters only")
	ErrAlreadyTried    = errors.New("already tried")
	ErrNotInDictionary = errors.New("not a valid dictionary word")
	ErrSessionFinished = errors.New("session finished")
)

// ErrInputClosed is returned when the input stream ends mid-session.
var ErrInputClosed = errors.New("input closed")
