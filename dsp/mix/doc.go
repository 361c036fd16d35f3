// Package mix turns mono float32 audio into stereo by applying a separate
// gain to the left and right channel.
//
// The core operation is
//
//	dst[2*i]   = src[i] * gainL
//	dst[2*i+1] = src[i] * gainR
//
// over interleaved output (L0 R0 L1 R1 ...). Samples are processed in
// blocks of four, so the sample count must be a multiple of BlockWidth.
// Unaligned counts and undersized buffers are rejected with an error and
// nothing is written; the count is never rounded or truncated.
//
// # Kernels
//
// The block loop is served by the best kernel registered for the running
// CPU:
//
//   - generic: portable Go, four lanes per step (all platforms, purego)
//   - sse2: 128-bit x86 assembly (amd64 baseline)
//   - avx2: 256-bit x86 assembly, eight samples per step
//
// Every kernel computes each output as a single float32 product, so their
// results are bit-identical. Implementation reports the selected kernel.
//
// # Concurrency
//
// Functions hold no state, never allocate, and keep no reference to the
// buffers after returning. They are safe for concurrent use on disjoint
// buffers. dst must not overlap src.
//
// # Helpers
//
// Frame and MonoToFrames offer the same operation over a typed stereo
// frame slice. PanGains and DBToGain derive gain pairs, and Mixer bundles
// a fixed gain pair for repeated use. MonoToPlanar64 writes
// deinterleaved float64 output.
package mix
