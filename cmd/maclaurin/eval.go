package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bft-labs/maclaurin/internal/menu"
	mlog "github.com/bft-labs/maclaurin/pkg/log"
	"github.com/bft-labs/maclaurin/pkg/series"
)

func newEvalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval [flags] <cos|expm1|sqrt1m> <x>",
		Short: "Evaluate one approximation and exit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := series.ParseFunc(args[0])
			if err != nil {
				return err
			}
			x, err := menu.ParseNumber(args[1])
			if err != nil {
				return err
			}

			n := a.cfg.Iterations
			v, err := series.Evaluate(f, x, n)
			if err != nil {
				return err
			}
			a.logger.Debug("evaluated",
				mlog.String("func", f.String()), mlog.Float64("x", x), mlog.Int("iterations", n))

			ref := f.Reference(x)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s ≈ %s (%d terms)\n", f.Formula(x), format(v), n)
			fmt.Fprintf(out, "reference  %s\n", format(ref))
			fmt.Fprintf(out, "abs error  %s\n", format(math.Abs(v-ref)))

			if a.cfg.Trace {
				terms, err := series.Terms(f, x, n)
				if err != nil {
					return err
				}
				var sum float64
				for i, t := range terms {
					sum += t
					fmt.Fprintf(out, "  %2d  term %-24s sum %s\n", i+1, format(t), format(sum))
				}
			}
			return nil
		},
	}
	// Flags must precede the function name so that a negative x is positional.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
