package main

import (
	"fmt"
	"io"
	"math"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-mix/dsp/mix"
)

type benchCmd struct {
	Samples    int      `default:"100000" help:"Mono samples per call (multiple of 4)."`
	Iterations int      `default:"1000" help:"Calls per kernel."`
	Kernel     []string `help:"Only time these kernels."`
	GainL      float32  `name:"gain-l" default:"0.5" help:"Left channel gain."`
	GainR      float32  `name:"gain-r" default:"0.75" help:"Right channel gain."`
}

func (c benchCmd) Run(w io.Writer) error {
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iterations)
	}
	if c.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Samples)
	}

	src := make([]float32, c.Samples)
	for i := range src {
		src[i] = float32(math.Sin(float64(i) * 0.01))
	}
	dst := make([]float32, 2*c.Samples)
	bytesPerCall := float64(c.Samples) * 4 * 3

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSamples\tns/op\tMB/s\n")
	fmt.Fprintf(tw, "------\t-------\t-----\t----\n")

	ran := 0
	for _, k := range mix.Kernels() {
		if !k.Supported || (len(c.Kernel) > 0 && !slices.Contains(c.Kernel, k.Name)) {
			continue
		}

		start := time.Now()
		for i := 0; i < c.Iterations; i++ {
			if err := mix.MonoToStereoWith(k.Name, dst, src, c.GainL, c.GainR); err != nil {
				return fmt.Errorf("kernel %s: %w", k.Name, err)
			}
		}
		elapsed := time.Since(start)

		nsPerOp := float64(elapsed.Nanoseconds()) / float64(c.Iterations)
		mbPerSec := 0.0
		if nsPerOp > 0 {
			mbPerSec = bytesPerCall / nsPerOp * 1e3
		}
		fmt.Fprintf(tw, "%s\t%d\t%.0f\t%.1f\n", k.Name, c.Samples, nsPerOp, mbPerSec)
		ran++
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write bench table: %w", err)
	}
	if ran == 0 {
		return fmt.Errorf("no supported kernel matched %v", c.Kernel)
	}
	return nil
}
