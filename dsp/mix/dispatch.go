package mix

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	monoToStereoImpl     registry.MonoToStereoFn
	monoToStereoName     string
	monoToStereoInitOnce sync.Once
)

func initMonoToStereoKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("mix: no MonoToStereo kernel registered (missing generic fallback?)")
	}
	if entry.MonoToStereo == nil {
		panic("mix: selected kernel missing MonoToStereo")
	}

	monoToStereoImpl = entry.MonoToStereo
	monoToStereoName = entry.Name
}

func monoToStereoKernel() registry.MonoToStereoFn {
	monoToStereoInitOnce.Do(initMonoToStereoKernel)
	return monoToStereoImpl
}

// Implementation returns the name of the kernel used for this CPU
// ("generic", "sse2" or "avx2").
func Implementation() string {
	monoToStereoInitOnce.Do(initMonoToStereoKernel)
	return monoToStereoName
}

// Kernel describes one registered kernel.
type Kernel struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Width     int  // source samples per vector step
	Supported bool // usable on the running CPU
	Selected  bool // chosen by Implementation
}

// Kernels lists every registered kernel, highest priority first.
func Kernels() []Kernel {
	features := cpu.DetectFeatures()
	selected := Implementation()

	entries := registry.Global.ListEntries()
	out := make([]Kernel, 0, len(entries))
	for _, e := range entries {
		out = append(out, Kernel{
			Name:      e.Name,
			SIMDLevel: e.SIMDLevel,
			Priority:  e.Priority,
			Width:     e.Width,
			Supported: cpu.Supports(features, e.SIMDLevel),
			Selected:  e.Name == selected,
		})
	}
	return out
}

// MonoToStereoWith is MonoToStereo on a named kernel instead of the
// selected one. It exists for benchmarking and cross-checking kernels.
func MonoToStereoWith(kernel string, dst, src []float32, gainL, gainR float32) error {
	entry := registry.Global.Find(kernel)
	if entry == nil || entry.MonoToStereo == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKernel, kernel)
	}
	if !cpu.Supports(cpu.DetectFeatures(), entry.SIMDLevel) {
		return fmt.Errorf("%w: %q needs %v", ErrUnsupportedKernel, kernel, entry.SIMDLevel)
	}

	n := len(src)
	if err := checkMonoToStereo(n, len(dst), len(src)); err != nil {
		return err
	}
	entry.MonoToStereo(dst[:2*n], src, gainL, gainR)
	return nil
}
