package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/creodex/creo-checklist/internal/view"
)

// Output formats
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// listedEntry is one row of list output
type listedEntry struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Seen   bool   `json:"seen" yaml:"seen"`
	Caught bool   `json:"caught" yaml:"caught"`
}

func (c *cli) newListCmd() *cobra.Command {
	var (
		criteria view.Criteria
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries with their seen/caught state",
		Long: `Lists entries in catalog order. --query keeps entries whose id equals the
query or whose name contains it, ignoring case. The flag filters combine.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := c.loadChecklist()
			if err != nil {
				return err
			}
			rows := view.Apply(criteria, cat.Entries(), store)
			return writeRows(cmd.OutOrStdout(), rows, format)
		},
	}

	cmd.Flags().StringVarP(&criteria.Query, "query", "q", "", "filter by name or id")
	cmd.Flags().BoolVar(&criteria.SeenOnly, "seen-only", false, "only entries seen but not caught")
	cmd.Flags().BoolVar(&criteria.CaughtOnly, "caught-only", false, "only caught entries")
	cmd.Flags().BoolVar(&criteria.MissingOnly, "missing-only", false, "only entries neither seen nor caught")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, yaml or json")
	return cmd
}

func writeRows(w io.Writer, rows []view.Row, format string) error {
	entries := make([]listedEntry, len(rows))
	for i, r := range rows {
		entries[i] = listedEntry{
			ID:     r.Entry.ID,
			Name:   r.Entry.DisplayName(),
			Seen:   r.Flags.Seen,
			Caught: r.Flags.Caught,
		}
	}

	switch format {
	case formatTable:
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("SEEN", "CAUGHT", "ID", "NAME").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, e := range entries {
			t.Row(mark(e.Seen), mark(e.Caught), e.ID, e.Name)
		}
		_, err := fmt.Fprintln(w, t.String())
		return err
	case formatYAML, formatJSON:
		return encode(w, entries, format)
	default:
		return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
	}
}

func mark(on bool) string {
	if on {
		return "x"
	}
	return ""
}

// encode writes v as YAML or indented JSON
func encode(w io.Writer, v any, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
