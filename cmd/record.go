package cmd

import (
	"fmt"
	"strings"

	"github.com/parrot-cli/parrot/internal/proc"
	"github.com/parrot-cli/parrot/internal/session"
	"github.com/parrot-cli/parrot/internal/store"
	"github.com/spf13/cobra"
)

func newRecordCmd(configPath *string) *cobra.Command {
	record := &cobra.Command{
		Use:   "record",
		Short: "Record commands",
		Long: `Record commands under a tag.

A recording starts with 'record start', collects every command passed to
'record add' (the shell hook from 'parrot init' does this for you) and is
stored by 'record stop'. 'record abort' throws it away.

Examples:
  parrot record start --tag deploy
  parrot record add -- docker build .
  parrot record stop

  # Type the commands in $EDITOR instead
  parrot record interactive --tag deploy`,
	}

	record.AddCommand(
		newRecordStartCmd(configPath),
		newRecordAddCmd(configPath),
		newRecordStopCmd(configPath),
		newRecordAbortCmd(configPath),
		newRecordInteractiveCmd(configPath),
		newRecordStatusCmd(configPath),
	)
	return record
}

// runSession loads the Store, applies fn through a Session and saves.
func runSession(cmd *cobra.Command, configPath string, fn func(s *session.Session) error) error {
	e, err := setup(cmd, configPath)
	if err != nil {
		return err
	}
	return e.withStore(true, func(st *store.Store) error {
		return fn(session.New(st, e.notices))
	})
}

func newRecordStartCmd(configPath *string) *cobra.Command {
	var tag string
	c := &cobra.Command{
		Use:   "start --tag <TAG>",
		Short: "Start recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, *configPath, func(s *session.Session) error {
				s.Start(tag)
				return nil
			})
		},
	}
	c.Flags().StringVarP(&tag, "tag", "t", "", "name or tag of the recording (required)")
	_ = c.MarkFlagRequired("tag")
	return c
}

func newRecordAddCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "add [--] <COMMAND...>",
		Short: "Record a command",
		Long: `Append a command to the active recording. Arguments are joined with single
spaces. Flags are not interpreted, so the recorded command keeps its own;
this includes --config, so select a config file with PARROT_CONFIG instead.
Nothing is recorded when no recording is active.`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := joinCommand(args)
			if err != nil {
				return err
			}
			return runSession(cmd, *configPath, func(s *session.Session) error {
				s.Add(command)
				return nil
			})
		},
	}
}

// joinCommand strips a leading "--" separator and joins the rest.
func joinCommand(args []string) (string, error) {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no command given")
	}
	return strings.Join(args, " "), nil
}

func newRecordStopCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop recording and store the commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, *configPath, func(s *session.Session) error {
				s.Stop()
				return nil
			})
		},
	}
}

func newRecordAbortCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Abort recording and discard the commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSession(cmd, *configPath, func(s *session.Session) error {
				s.Abort()
				return nil
			})
		},
	}
}

func newRecordInteractiveCmd(configPath *string) *cobra.Command {
	var tag string
	c := &cobra.Command{
		Use:   "interactive --tag <TAG>",
		Short: "Write a recording in your editor",
		Long: `Open $EDITOR (default vim) on a temporary file and store every non-blank line
that does not start with '#' as a command, in order. An empty file records
nothing. The editor can be overridden with PARROT_EDITOR or the 'editor'
config key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			ed, err := proc.NewEditor(e.cfg.Editor)
			if err != nil {
				return &session.EditorSpawnError{Editor: e.cfg.Editor, ExitCode: -1, Err: err}
			}
			return e.withStore(true, func(st *store.Store) error {
				_, err := session.New(st, e.notices).Interactive(tag, ed)
				return err
			})
		},
	}
	c.Flags().StringVarP(&tag, "tag", "t", "", "name or tag of the recording (required)")
	_ = c.MarkFlagRequired("tag")
	return c
}

func newRecordStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active recording",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			return e.withStore(false, func(st *store.Store) error {
				status := session.New(st, e.notices).Status()
				out := cmd.OutOrStdout()
				if status.State == session.Idle {
					_, err := fmt.Fprintln(out, "not recording")
					return err
				}
				_, err := fmt.Fprintf(out, "recording %q (%d commands)\n", status.Tag, status.Commands)
				return err
			})
		},
	}
}
