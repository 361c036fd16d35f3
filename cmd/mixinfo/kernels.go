package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-mix/dsp/mix"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type kernelsCmd struct{}

func (kernelsCmd) Run(w io.Writer) error {
	f := cpu.DetectFeatures()
	if _, err := fmt.Fprintf(w, "arch=%s sse2=%t avx2=%t neon=%t force-generic=%t\n\n",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON, f.ForceGeneric); err != nil {
		return fmt.Errorf("write features: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kernel\tSIMD\tPriority\tWidth\tSupported\tSelected\n")
	fmt.Fprintf(tw, "------\t----\t--------\t-----\t---------\t--------\n")
	for _, k := range mix.Kernels() {
		fmt.Fprintf(tw, "%s\t%v\t%d\t%d\t%s\t%s\n",
			k.Name, k.SIMDLevel, k.Priority, k.Width, yesNo(k.Supported), yesNo(k.Selected))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write kernel table: %w", err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
