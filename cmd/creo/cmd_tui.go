package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/logging"
	"github.com/creodex/creo-checklist/internal/tui"
)

func (c *cli) newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive terminal checklist",
		Long: `Starts the full-screen terminal checklist.

The terminal belongs to the checklist while it runs, so log lines are
discarded unless --log-file names a file to write them to.`,
		Args: cobra.NoArgs,
		RunE: c.runTUI,
	}
	cmd.Flags().StringVar(&c.logFile, "log-file", "", "write logs to this file while the checklist is open")
	return cmd
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	cat, store, err := c.loadChecklist()
	if err != nil {
		return err
	}

	logger, err := c.tuiLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return tui.Run(cat, store, tui.Options{
		SavePath: c.resolveSavePath(cat),
		Logger:   logger,
	})
}

// tuiLogger returns a logger that never writes to the terminal: a file
// logger when --log-file is set, otherwise a no-op
func (c *cli) tuiLogger() (*zap.Logger, error) {
	if c.logFile == "" {
		return zap.NewNop(), nil
	}
	return logging.New(logging.Options{
		Verbose:     c.verbose,
		Development: true,
		OutputPaths: []string{c.logFile},
	})
}
