package generic

import (
	"github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// init registers the pure Go kernel. It is the fallback on every
// architecture and the only kernel under the purego build tag.
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		Width:        registry.BlockWidth,
		MonoToStereo: MonoToStereo,
	})
}
