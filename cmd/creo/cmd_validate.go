package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creodex/creo-checklist/internal/catalog"
	"github.com/creodex/creo-checklist/internal/checklist"
)

func (c *cli) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog, its icons and the save file",
		Long: `Loads the catalog and reports entries whose icon is missing or unreadable
(they show a placeholder). If a save file exists it is decoded and ids the
catalog does not know are listed.`,
		Args: cobra.NoArgs,
		RunE: c.runValidate,
	}
}

func (c *cli) runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(c.resolveCatalogPath())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "catalog %s: %d entries\n", cat.Path(), cat.Len())
	if footer := cat.Metadata().Footer(); footer != "" {
		fmt.Fprintln(out, footer)
	}

	icons := catalog.NewIconResolver(cat.Dir(), c.logger)
	var placeholders []string
	for _, e := range cat.Entries() {
		if e.HasIcon() && icons.Resolve(e).Placeholder {
			placeholders = append(placeholders, e.ID)
		}
	}
	if len(placeholders) > 0 {
		fmt.Fprintf(out, "icons: %d missing or unreadable: %v\n", len(placeholders), placeholders)
	} else {
		fmt.Fprintln(out, "icons: ok")
	}

	savePath := c.resolveSavePath(cat)
	store := checklist.NewStore(cat.IDs())
	res, err := checklist.LoadFileAt(savePath, store)
	switch {
	case errors.Is(err, checklist.ErrNoSave):
		fmt.Fprintf(out, "save %s: none\n", savePath)
	case err != nil:
		return fmt.Errorf("save %s: %w", savePath, err)
	default:
		fmt.Fprintf(out, "save %s: %d of %d entries\n", savePath, res.Applied, res.Entries)
		if len(res.Unknown) > 0 {
			fmt.Fprintf(out, "save: ignoring unknown ids %v\n", res.Unknown)
		}
	}
	return nil
}
