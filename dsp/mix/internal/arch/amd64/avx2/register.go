//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the AVX2 kernel.
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		Width:        2 * registry.BlockWidth,
		MonoToStereo: MonoToStereo,
	})
}
