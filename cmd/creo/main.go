package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/logging"
	"github.com/creodex/creo-checklist/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// cli holds the persistent flags and the state built from them
type cli struct {
	verbose     bool
	catalogPath string
	savePath    string
	logFile     string

	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "creo",
		Short: "EvoCreo checklist from the command line",
		Long: `Track which creos you have seen and caught.

The checklist is read from the quick-save file beside the catalog
(checklist_save.json) unless --save points elsewhere. Commands that change
state write it back to the same file.

Run without arguments to start the terminal checklist.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{Verbose: c.verbose, Development: true})
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&c.catalogPath, "catalog", "", "catalog file (JSON or YAML); defaults to "+catalog.DefaultFile)
	rootCmd.PersistentFlags().StringVar(&c.savePath, "save", "", "save file; defaults to "+checklist.DefaultSaveFileName+" beside the catalog")

	rootCmd.AddCommand(
		c.newTUICmd(),
		c.newListCmd(),
		c.newStatsCmd(),
		c.newMarkCmd(),
		c.newValidateCmd(),
	)
	return rootCmd
}

// resolveCatalogPath applies the default catalog lookup
func (c *cli) resolveCatalogPath() string {
	if c.catalogPath != "" {
		return c.catalogPath
	}
	if found, err := platform.FindDataFile(catalog.DefaultFile); err == nil {
		return found
	}
	return catalog.DefaultFile
}

// resolveSavePath returns --save or the quick-save file beside cat
func (c *cli) resolveSavePath(cat *catalog.Catalog) string {
	if c.savePath != "" {
		return c.savePath
	}
	return checklist.DefaultSavePath(cat.Dir())
}

// loadChecklist loads the catalog and any existing save file
func (c *cli) loadChecklist() (*catalog.Catalog, *checklist.Store, error) {
	cat, err := catalog.Load(c.resolveCatalogPath())
	if err != nil {
		return nil, nil, err
	}

	store := checklist.NewStore(cat.IDs())
	savePath := c.resolveSavePath(cat)

	res, err := checklist.LoadFileAt(savePath, store)
	switch {
	case errors.Is(err, checklist.ErrNoSave):
		c.logger.Debug("no save file, starting empty", zap.String("path", savePath))
	case err != nil:
		return nil, nil, fmt.Errorf("load %s: %w", savePath, err)
	default:
		c.logger.Debug("save file loaded",
			zap.String("path", savePath),
			zap.Int("applied", res.Applied),
			zap.Strings("unknown", res.Unknown))
	}
	return cat, store, nil
}
