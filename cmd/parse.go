package cmd

import (
	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/unitgraph/unitgraph/internal/unit"
)

// ParseCommand represents the parse command.
type ParseCommand struct{}

// GetCobraCommand returns the cobra command for parsing unit expressions.
func (c *ParseCommand) GetCobraCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPRESSION",
		Short: "Parse a compound unit expression and show its structure",
		Long: `Parse a compound unit expression and print its canonical form,
dimension code, and constituent terms, e.g.

  unitgraph parse "kg*m/s2"
  unitgraph parse "kW·h"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := unit.ParseDerived(args[0])
			if err != nil {
				return err
			}

			cmd.Printf("Canonical: %s\n", d.Format(!cfg.Unicode))
			cmd.Printf("Dimension: %s\n\n", d.Dimension())

			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()
			tbl := table.New("Term", "Unit", "Prefix", "Exponent", "Dimension")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

			for _, t := range d.Terms() {
				prefixName := ""
				if p := t.Prefix(); p != nil {
					prefixName = p.Name
				}
				tbl.AddRow(t.Format(!cfg.Unicode), t.Unit().Name, prefixName, t.Exponent(), t.Dimension())
			}

			tbl.Print()
			return nil
		},
	}
}
