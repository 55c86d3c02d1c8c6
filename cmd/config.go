package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/parrot-cli/parrot/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(configPath *string) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Long: `parrot reads an optional YAML config file (--config, PARROT_CONFIG or
<config-dir>/parrot/config.yaml) and PARROT_* environment variables.

Keys:
  storage_path  backing file for recordings (PARROT_STORAGE_PATH)
  editor        editor for 'record interactive' (PARROT_EDITOR, then $EDITOR, then vim)
  selector      fuzzy selector for 'replay' (PARROT_SELECTOR, default fzf)
  color         auto, always or never (PARROT_COLOR, NO_COLOR is honoured)
  trace         print a trace line per state change (PARROT_TRACE)`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			data, err := cfg.Encode()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ResolvePath(*configPath)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("cannot access %s: %w", path, err)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "parrot: wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	c.AddCommand(show, initCmd)
	return c
}
