package main

import (
	"fmt"
	"io"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
	"github.com/jdenbrok/ALMA2040-Calculations/pkg/validation"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, e := range r.Warnings {
			printResult(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, e validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
	if e.Parameter != "" {
		fmt.Fprintf(w, "    -> %s = %v\n", e.Parameter, e.ActualValue)
	}
	if e.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", e.Expected)
	}
	if n := len(e.Diameters); n > 0 {
		fmt.Fprintf(w, "    at %d diameter(s) from %.2f to %.2f m\n", n, e.Diameters[0], e.Diameters[n-1])
	}
	for _, s := range e.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printCurve(w io.Writer, c *cost.Curve, every int) {
	if every < 1 {
		every = 1
	}

	fmt.Fprintf(w, "Construction Cost vs Antenna Diameter (%s)\n", c.Regime)
	fmt.Fprintln(w, "===============================================")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%8s %10s %12s %12s %12s %12s\n",
		"D [m]", "Antennas", "Antenna", "Receiver", "Correlator", "Total")
	fmt.Fprintf(w, "%8s %10s %12s %12s %12s %12s\n",
		"--------", "----------", "------------", "------------", "------------", "------------")

	for i := 0; i < c.Len(); i++ {
		if i%every != 0 && i != c.Optimum.Index && i != c.Len()-1 {
			continue
		}
		b := c.At(i)
		mark := ""
		if i == c.Optimum.Index {
			mark = "  <- optimum"
		}
		fmt.Fprintf(w, "%8.2f %10.1f %12s %12s %12s %12s%s\n",
			b.DiameterM, b.AntennaCount,
			formatMoney(b.Antenna), formatMoney(b.Receiver), formatMoney(b.Correlator), formatMoney(b.Total),
			mark)
	}

	opt := c.At(c.Optimum.Index)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Optimum")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Diameter:               %.2f m\n", opt.DiameterM)
	fmt.Fprintf(w, "  New antennas:           %d\n", c.Optimum.NewAntennas)
	fmt.Fprintf(w, "  Base cost:              $%s\n", formatMoney(opt.Base))
	fmt.Fprintf(w, "  Antenna term:           $%s\n", formatMoney(opt.Antenna))
	fmt.Fprintf(w, "  Receiver term:          $%s\n", formatMoney(opt.Receiver))
	fmt.Fprintf(w, "  Correlator term:        $%s\n", formatMoney(opt.Correlator))
	fmt.Fprintf(w, "  Total construction:     $%s\n", formatMoney(opt.Total))
}

func formatMoney(v float64) string {
	if v >= 1_000_000_000 {
		return fmt.Sprintf("%.2fB", v/1_000_000_000)
	}
	if v >= 1_000_000 {
		return fmt.Sprintf("%.2fM", v/1_000_000)
	}
	if v >= 1_000 {
		return fmt.Sprintf("%.0fK", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}
