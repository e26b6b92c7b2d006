// Package cli defines the wordle command and wires its dependencies.
//
// The root command takes a single flag, --dict, which enables the
// dictionary check. The dictionary is loaded explicitly before the game
// controller is built, so a first-run download happens up front and is
// reported on the terminal.
package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/varshneyabhi/wordle/internal/config"
	"github.com/varshneyabhi/wordle/internal/console"
	"github.com/varshneyabhi/wordle/internal/game"
	"github.com/varshneyabhi/wordle/internal/words"
)

// Deps are the collaborators the root command runs against.
type Deps struct {
	Config *config.Config
	Logger zerolog.Logger
	In     io.Reader
	Out    io.Writer
	// LoaderOptions are passed to the dictionary loader.
	LoaderOptions []words.LoaderOption
}

// NewRootCommand builds the wordle command.
func NewRootCommand(deps Deps) *cobra.Command {
	var useDict bool

	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess a hidden word within ten attempts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := deps.Logger.With().Str("component", "cli").Logger()
			term := console.New(deps.In, deps.Out, console.Options{NoColor: deps.Config.ColorDisabled()})

			// A nil *words.Dictionary must not reach the controller as a
			// non-nil interface.
			var dict game.Dictionary
			if useDict {
				d, err := words.NewLoader(deps.Config.Dictionary, term, deps.Logger, deps.LoaderOptions...).Load(cmd.Context())
				if err != nil {
					return err
				}
				log.Debug().Int("words", d.Len()).Msg("dictionary ready")
				dict = d
			}

			ctrl := game.NewController(term, dict, deps.Logger)
			_, err := ctrl.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().BoolVarP(&useDict, "dict", "d", false, "Enable dictionary check for each word.")
	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, deps Deps, args []string) error {
	root := NewRootCommand(deps)
	root.SetArgs(args)
	root.SetIn(deps.In)
	root.SetOut(deps.Out)
	return root.ExecuteContext(ctx)
}
