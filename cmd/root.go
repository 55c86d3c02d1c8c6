// Package cmd implements the parrot Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "parrot",
		Short: "Record & replay shell commands",
		Long: `parrot - Record & replay shell commands

Record the commands you run under a tag, then print them again later.
parrot never executes a recording; replay writes the command text to stdout.

Examples:
  # Hook your shell so commands are captured while recording
  eval "$(parrot init bash)"

  # Record a session
  parrot record start --tag deploy
  docker build .
  docker push
  parrot record stop

  # Write the commands down in your editor instead
  parrot record interactive --tag deploy

  # Show and replay recordings
  parrot list
  parrot replay --tag deploy
  parrot replay                  # pick a tag with fzf`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("parrot version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $PARROT_CONFIG or <config-dir>/parrot/config.yaml)")

	root.AddCommand(
		newRecordCmd(&configPath),
		newListCmd(&configPath),
		newReplayCmd(&configPath),
		newInitCmd(),
		newConfigCmd(&configPath),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
