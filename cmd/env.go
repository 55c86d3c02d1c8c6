package cmd

import (
	"fmt"

	"github.com/parrot-cli/parrot/internal/config"
	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/parrot-cli/parrot/internal/store"
	"github.com/spf13/cobra"
)

// env bundles what every data command needs: configuration, the backing
// file gateway and the notice printer on the command's stderr.
type env struct {
	cfg     *config.Config
	gateway *store.FileGateway
	notices *notice.Printer
}

func setup(cmd *cobra.Command, configPath string) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	p := notice.New(cmd.ErrOrStderr(), notice.ParseColorMode(cfg.Color))
	if cfg.Trace {
		p.WithTrace(cmd.ErrOrStderr())
	}

	return &env{
		cfg:     cfg,
		gateway: store.NewFileGateway(cfg.StoragePath),
		notices: p,
	}, nil
}

// withStore loads the Store, runs fn and, when save is true, writes the
// Store back. Nothing is saved if fn fails.
func (e *env) withStore(save bool, fn func(st *store.Store) error) error {
	e.notices.Tracef("load", "path", e.gateway.Path())
	st, err := e.gateway.Load()
	if err != nil {
		return fmt.Errorf("failed to load recordings: %w", err)
	}

	if err := fn(st); err != nil {
		return err
	}

	if !save {
		return nil
	}
	e.notices.Tracef("save", "path", e.gateway.Path())
	if err := e.gateway.Save(st); err != nil {
		return fmt.Errorf("failed to save recordings: %w", err)
	}
	return nil
}
