package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-mix/dsp/mix"
)

type panCmd struct {
	Law       string    `default:"constant-power" enum:"constant-power,linear,square-root" help:"Pan law (${enum})."`
	Positions []float64 `arg:"" optional:"" help:"Pan positions in [-1, 1]; defaults to -1 -0.5 0 0.5 1."`
}

func (c panCmd) Run(w io.Writer) error {
	law, ok := mix.ParsePanLaw(c.Law)
	if !ok {
		return fmt.Errorf("unknown pan law %q", c.Law)
	}

	positions := c.Positions
	if len(positions) == 0 {
		positions = []float64{-1, -0.5, 0, 0.5, 1}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Pan\tLeft\tRight\tLeft [dB]\tRight [dB]\n")
	fmt.Fprintf(tw, "---\t----\t-----\t---------\t----------\n")
	for _, p := range positions {
		l, r := mix.PanGains(float32(p), law)
		fmt.Fprintf(tw, "%+.3f\t%.6f\t%.6f\t%.2f\t%.2f\n", p, l, r, toDB(l), toDB(r))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write pan table: %w", err)
	}
	return nil
}
