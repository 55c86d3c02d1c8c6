package cmd

import (
	"github.com/parrot-cli/parrot/internal/proc"
	"github.com/parrot-cli/parrot/internal/replay"
	"github.com/parrot-cli/parrot/internal/store"
	"github.com/spf13/cobra"
)

func newReplayCmd(configPath *string) *cobra.Command {
	var tag string
	c := &cobra.Command{
		Use:   "replay [--tag <TAG>]",
		Short: "Replay recorded commands",
		Long: `Print the commands recorded under a tag, one per line, to stdout. Status
messages go to stderr, so the output can be piped or evaluated:

  parrot replay --tag deploy | sh
  eval "$(parrot replay --tag setup-env)"

Without --tag the recorded tags are offered to fzf (or the program set with
PARROT_SELECTOR / the 'selector' config key) to pick one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			explicit := cmd.Flags().Changed("tag")

			return e.withStore(false, func(st *store.Store) error {
				if explicit {
					return replay.New(st, cmd.OutOrStdout(), e.notices, nil).Tag(tag)
				}
				sel, err := proc.NewSelector(e.cfg.Selector)
				if err != nil {
					return &replay.SelectionError{Err: err}
				}
				return replay.New(st, cmd.OutOrStdout(), e.notices, sel).Pick()
			})
		},
	}
	c.Flags().StringVarP(&tag, "tag", "t", "", "tag of the recording to replay")
	return c
}
