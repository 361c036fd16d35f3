package mix

import (
	"fmt"
	"unsafe"
)

// Frame is one interleaved stereo sample pair. A []Frame has the same
// memory layout as a []float32 of twice the length.
type Frame struct {
	L, R float32
}

// MonoToFrames mixes src into dst with dst[i] = Frame{src[i]*gainL,
// src[i]*gainR}. len(src) must be a multiple of BlockWidth and len(dst)
// at least len(src).
func MonoToFrames(dst []Frame, src []float32, gainL, gainR float32) error {
	if len(dst) < len(src) {
		return fmt.Errorf("%w: dst has %d frames, need %d", ErrShortBuffer, len(dst), len(src))
	}
	return MonoToStereoN(len(src), framesAsFloats(dst), src, gainL, gainR)
}

// framesAsFloats views f as interleaved float32 values without copying.
func framesAsFloats(f []Frame) []float32 {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice(&f[0].L, 2*len(f))
}
