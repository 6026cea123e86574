package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/creodex/creo-checklist/internal/model"
)

// statsReport is the stats output for yaml and json
type statsReport struct {
	model.Summary `yaml:",inline"`
	Metadata      model.Metadata `json:"metadata,omitzero" yaml:"metadata,omitempty"`
	ChecklistID   string         `json:"checklist_id" yaml:"checklist_id"`
}

func (c *cli) newStatsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show seen/caught/missing counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := c.loadChecklist()
			if err != nil {
				return err
			}
			report := statsReport{
				Summary:     store.Summary(),
				Metadata:    cat.Metadata(),
				ChecklistID: store.ChecklistID(),
			}
			return writeStats(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, yaml or json")
	return cmd
}

func writeStats(w io.Writer, r statsReport, format string) error {
	switch format {
	case formatTable:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("TOTAL", "SEEN", "CAUGHT", "MISSING").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Row(
				fmt.Sprint(r.Total),
				fmt.Sprint(r.Seen),
				fmt.Sprint(r.Caught),
				fmt.Sprint(r.Missing),
			)
		if _, err := fmt.Fprintln(w, t.String()); err != nil {
			return err
		}
		if footer := r.Metadata.Footer(); footer != "" {
			_, err := fmt.Fprintln(w, footer)
			return err
		}
		return nil
	case formatYAML, formatJSON:
		return encode(w, r, format)
	default:
		return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
	}
}
