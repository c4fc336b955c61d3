package cmd

import (
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/unitgraph/unitgraph/internal/unit"
)

// UnitsCommand represents the units command.
type UnitsCommand struct{}

// GetCobraCommand returns the cobra command listing registered units.
func (c *UnitsCommand) GetCobraCommand() *cobra.Command {
	var dimension string

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the registered units",
		RunE: func(_ *cobra.Command, _ []string) error {
			headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
			columnFmt := color.New(color.FgYellow).SprintfFunc()
			tbl := table.New("Name", "Symbol", "Dimension", "Systems", "Prefixes")
			tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

			units := unit.DefaultRegistry().All()
			sort.Slice(units, func(i, j int) bool {
				if units[i].Dimension != units[j].Dimension {
					return units[i].Dimension < units[j].Dimension
				}
				return units[i].Name < units[j].Name
			})

			for _, u := range units {
				if dimension != "" && u.Dimension != dimension {
					continue
				}
				tbl.AddRow(u.Name, u.DisplaySymbol(!cfg.Unicode), u.Dimension,
					joinSystems(u.Systems), joinGroups(u.PrefixGroups))
			}

			tbl.Print()
			return nil
		},
	}

	unitsCmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Only list units of this dimension code")

	return unitsCmd
}

func joinSystems(systems []unit.System) string {
	parts := make([]string, len(systems))
	for i, s := range systems {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinGroups(groups []unit.PrefixGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = string(g)
	}
	return strings.Join(parts, ", ")
}
