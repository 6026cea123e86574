package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/model"
)

func (c *cli) newMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark <id> <seen|caught> <true|false>",
		Short: "Set one flag of one entry and save",
		Long: `Sets seen or caught on an entry and writes the save file.

Marking caught also marks seen. Seen cannot be cleared while caught is set.`,
		Example: `  creo mark 001 caught true
  creo mark 001 seen false`,
		Args: cobra.ExactArgs(3),
		RunE: c.runMark,
	}
}

func (c *cli) runMark(cmd *cobra.Command, args []string) error {
	id := args[0]
	flag, err := model.ParseFlag(args[1])
	if err != nil {
		return err
	}
	value, err := strconv.ParseBool(args[2])
	if err != nil {
		return fmt.Errorf("invalid value %q: want true or false", args[2])
	}

	cat, store, err := c.loadChecklist()
	if err != nil {
		return err
	}
	if err := store.Set(id, flag, value); err != nil {
		return err
	}

	savePath := c.resolveSavePath(cat)
	n, err := checklist.SaveFileAt(savePath, store)
	if err != nil {
		return err
	}
	c.logger.Debug("checklist saved", zap.String("path", savePath), zap.Int("entries", n))

	entry, _ := cat.Lookup(id)
	f, _ := store.Flags(id)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): seen=%t caught=%t\n", id, entry.DisplayName(), f.Seen, f.Caught)
	return err
}
