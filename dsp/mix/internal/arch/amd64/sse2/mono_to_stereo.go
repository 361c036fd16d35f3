//go:build amd64 && !purego

// Package sse2 holds the 128-bit x86 mono-to-stereo kernel.
package sse2

import "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/registry"

// MonoToStereo writes interleaved stereo: dst[2i] = src[i]*gainL,
// dst[2i+1] = src[i]*gainR. len(src) must be a multiple of 4 and
// len(dst) at least 2*len(src); it panics otherwise.
// Uses SSE2 to process 4 float32 samples per iteration.
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
	monoToStereoSSE2(dst, src, gainL, gainR)
}

// Assembly function declarations (implemented in mono_to_stereo_amd64.s)

//go:noescape
func monoToStereoSSE2(dst, src []float32, gainL, gainR float32)
