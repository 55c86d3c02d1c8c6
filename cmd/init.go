package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parrot-cli/parrot/internal/shell"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [shell]",
		Short: "Print the shell integration script",
		Long: fmt.Sprintf(`Print a script that hooks your shell so commands are passed to
'parrot record add' while a recording is active.

Supported shells: %s. If omitted, the shell is detected from $SHELL.

Usage:
  fish:  parrot init fish | source
  bash:  eval "$(parrot init bash)"
  zsh:   eval "$(parrot init zsh)"`, strings.Join(shell.Supported(), ", ")),
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shell.Supported(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var explicit string
			if len(args) > 0 {
				explicit = args[0]
			}
			kind, err := shell.Detect(explicit, os.Getenv("SHELL"))
			if err != nil {
				return err
			}
			script, err := shell.Script(kind, binaryName())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}
}

// binaryName returns the name parrot was invoked as, so hooks keep working
// for renamed binaries.
func binaryName() string {
	name := filepath.Base(os.Args[0])
	if name == "" || name == "." || strings.HasSuffix(name, ".test") {
		return "parrot"
	}
	return strings.TrimSuffix(name, ".exe")
}
