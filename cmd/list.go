package cmd

import (
	"github.com/parrot-cli/parrot/internal/listing"
	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/parrot-cli/parrot/internal/store"
	"github.com/spf13/cobra"
)

func newListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			return e.withStore(false, func(st *store.Store) error {
				if len(st.Recordings) == 0 {
					e.notices.Warnf("no recordings available")
					return nil
				}
				out := cmd.OutOrStdout()
				color := notice.ParseColorMode(e.cfg.Color).Resolve(out)
				return listing.List(out, st, color)
			})
		},
	}
}
