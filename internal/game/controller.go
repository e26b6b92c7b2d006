// internal/game/controller.go
//
// Game loop controller.
// Responsibilities:
//   - Acquire the secret (entered twice) and open a Session.
//   - Run rounds until the session is won or lost.
//   - Report rejections and re-prompt without consuming an attempt.
//
// All terminal I/O goes through the injected Terminal; the controller owns
// no global state.

package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Terminal is the I/O collaborator used by the Controller.
type Terminal interface {
	// ReadSecret reads one line without echoing it.
	ReadSecret(prompt string) (string, error)
	// ReadLine reads one visible line.
	ReadLine(prompt string) (string, error)
	Clear()
	// Render draws the accumulated rounds and the remaining-attempts counter.
	Render(rounds []Round, remaining int)
	Alert(msg string)
	// Pause waits for the player to acknowledge an alert.
	Pause() error
	// Announce reports the final outcome.
	Announce(s *Session)
}

// Controller runs one session against a Terminal.
type Controller struct {
	term  Terminal
	dict  Dictionary
	limit int
	log   zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithAttemptLimit overrides DefaultAttemptLimit.
func WithAttemptLimit(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.limit = n
		}
	}
}

// NewController constructs a Controller. dict may be nil to disable
// dictionary validation.
func NewController(term Terminal, dict Dictionary, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		term:  term,
		dict:  dict,
		limit: DefaultAttemptLimit,
		log:   logger.With().Str("component", "controller").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run plays one session to completion.
// Setup failures wrap ErrSetup and end the session before any round.
// The returned Session is nil only when setup failed.
func (c *Controller) Run(ctx context.Context) (*Session, error) {
	s, err := c.setup()
	if err != nil {
		c.log.Warn().Err(err).Msg("setup aborted")
		return nil, err
	}
	log := c.log.With().Str("session", s.ID).Int("length", s.Length()).Logger()
	log.Info().Int("limit", s.AttemptLimit()).Msg("session started")

	for !s.Finished() {
		if err := ctx.Err(); err != nil {
			return s, err
		}
		c.term.Clear()
		c.term.Render(s.Rounds(), s.Remaining())

		line, err := c.term.ReadLine(fmt.Sprintf("Enter your guess (Length: %d): ", s.Length()))
		if err != nil {
			return s, inputErr(err)
		}

		round, err := s.Submit(line)
		if err != nil {
			log.Debug().Err(err).Msg("guess rejected")
			c.term.Alert(rejection(err))
			if err := c.term.Pause(); err != nil {
				return s, inputErr(err)
			}
			continue
		}
		log.Debug().Str("guess", round.Guess).Int("attempts", s.AttemptsUsed()).Msg("guess accepted")
	}

	c.term.Clear()
	c.term.Render(s.Rounds(), s.Remaining())
	c.term.Announce(s)
	log.Info().Str("outcome", string(s.Outcome())).Int("attempts", s.AttemptsUsed()).Msg("session finished")
	return s, nil
}

// setup reads the secret twice and opens a session.
func (c *Controller) setup() (*Session, error) {
	c.term.Clear()
	word, err := c.term.ReadSecret("Enter a word: ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, inputErr(err))
	}
	again, err := c.term.ReadSecret("Repeat word : ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, inputErr(err))
	}
	if normalize(word) != normalize(again) {
		return nil, setupErr(ErrSecretMismatch)
	}
	return NewSession(word, c.limit, c.dict)
}

// rejection maps a round-level error to the message shown to the player.
func rejection(err error) string {
	switch {
	case errors.Is(err, ErrWrongLength):
		return "Wrong Length of Word."
	case errors.Is(err, ErrNotLetters):
		return "Only letters are allowed."
	case errors.Is(err, ErrAlreadyTried):
		return "Already tried."
	case errors.Is(err, ErrNotInDictionary):
		return "Not a valid dictionary word!!"
	default:
		return err.Error()
	}
}

func inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	return err
}
