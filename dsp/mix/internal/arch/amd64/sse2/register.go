//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the SSE2 kernel. SSE2 is part of the x86-64 baseline, so
// this entry is always usable on amd64.
//
// Priority: 10 (preferred over generic, below AVX2)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "sse2",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		Width:        registry.BlockWidth,
		MonoToStereo: MonoToStereo,
	})
}
