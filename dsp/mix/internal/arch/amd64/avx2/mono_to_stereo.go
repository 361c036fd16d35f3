//go:build amd64 && !purego

// Package avx2 holds the 256-bit x86 mono-to-stereo kernel.
package avx2

import "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"

// MonoToStereo writes interleaved stereo: dst[2i] = src[i]*gainL,
// dst[2i+1] = src[i]*gainR. len(src) must be a multiple of 4 and
// len(dst) at least 2*len(src); it panics otherwise.
//
// The main loop handles 8 samples per iteration; a source length that is
// a multiple of 4 but not 8 finishes with one 128-bit block.
func MonoToStereo(dst, src []float32, gainL, gainR float32) {
	if len(src)%registry.BlockWidth != 0 {
		panic("mix: source length is not a multiple of the block width")
	}
	if len(dst) < 2*len(src) {
		panic("mix: slice length mismatch")
	}
	if len(src) == 0 {
		return
	}
	monoToStereoAVX2(dst, src, gainL, gainR)
}

// Assembly function declarations (implemented in mono_to_stereo_amd64.s)

//go:noescape
func monoToStereoAVX2(dst, src []float32, gainL, gainR float32)
