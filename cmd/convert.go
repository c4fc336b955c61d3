package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/unitgraph/unitgraph/internal/conversion"
	"github.com/unitgraph/unitgraph/internal/log"
	"github.com/unitgraph/unitgraph/internal/quantity"
)

// ConvertCommand represents the convert command.
type ConvertCommand struct{}

// GetCobraCommand returns the cobra command for conversions.
func (c *ConvertCommand) GetCobraCommand() *cobra.Command {
	var (
		toSI      bool
		withError bool
	)

	convertCmd := &cobra.Command{
		Use:   "convert VALUE UNIT [DEST-UNIT]",
		Short: "Convert a value between units",
		Long: `Convert a value from one unit to another, e.g.

  unitgraph convert 26.2 mi km
  unitgraph convert 1 "kW*h" J
  unitgraph convert 9.81 m/s2 --si`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := quantity.Parse(args[0] + " " + args[1])
			if err != nil {
				return err
			}

			if dim := q.Unit().Dimension(); dim != "" {
				warmConverter(dim)
			}

			var result *quantity.Quantity
			switch {
			case toSI:
				result, err = q.ConvertToSI()
			case len(args) == 3:
				result, err = q.Convert(args[2])
			default:
				return cmd.Help()
			}
			if err != nil {
				return err
			}

			persistFactor(q, result)

			p := message.NewPrinter(language.English)
			verb := "%." + strconv.Itoa(cfg.Precision) + "f"
			out := p.Sprintf(verb, result.Value())
			out = trimTrailingZeros(out)
			if withError {
				if conv, cerr := conversionFor(q, result); cerr == nil {
					out += p.Sprintf(" ± %g", conv.Factor().AbsoluteError()*abs(q.Value()))
				}
			}
			cmd.Printf("%s %s\n", out, result.Unit().Format(!cfg.Unicode))
			return nil
		},
	}

	convertCmd.Flags().BoolVar(&toSI, "si", false, "Convert to SI units")
	convertCmd.Flags().BoolVar(&withError, "with-error", false, "Print the accumulated floating point error")

	return convertCmd
}

// conversionFor re-resolves the conversion between two quantities' units to
// recover the factor's error term.
func conversionFor(src, dest *quantity.Quantity) (*conversion.Conversion, error) {
	dim := src.Unit().Dimension()
	if dim == "" || dim != dest.Unit().Dimension() {
		return nil, conversion.NewMismatchedDimensionsError(
			src.Unit().String(), dim, dest.Unit().String(), dest.Unit().Dimension())
	}
	cv, err := conversion.GetByDimension(dim)
	if err != nil {
		return nil, err
	}
	return cv.GetConversion(src.Unit(), dest.Unit())
}

// persistFactor records the discovered factor in the cache database.
// Failures are logged and otherwise ignored; persistence is best effort.
func persistFactor(src, dest *quantity.Quantity) {
	conv, err := conversionFor(src, dest)
	if err != nil {
		return
	}
	if err := saveFactor(conv); err != nil {
		log.GetLogger().Debug("Factor not persisted", "error", err)
	}
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
