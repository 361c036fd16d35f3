//go:build amd64 && !purego

package avx2

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vecmath/cpu"
)

func requireAVX2(tb testing.TB) {
	tb.Helper()
	if !cpu.DetectFeatures().HasAVX2 {
		tb.Skip("AVX2 not available on this CPU")
	}
}

func monoToStereoRef(dst, src []float32, gainL, gainR float32) {
	for i, x := range src {
		dst[2*i] = x * gainL
		dst[2*i+1] = x * gainR
	}
}

func TestMonoToStereo_MatchesReference(t *testing.T) {
	requireAVX2(t)

	sizes := []int{4, 8, 12, 16, 20, 28, 32, 36, 64, 100, 1000, 4100}
	gains := [][2]float32{{0, 0}, {1, 1}, {0.5, 2}, {-1, 0.75}, {1e-20, 3e20}}

	for _, n := range sizes {
		for _, g := range gains {
			t.Run(fmt.Sprintf("n=%d_gl=%g_gr=%g", n, g[0], g[1]), func(t *testing.T) {
				src := make([]float32, n)
				for i := range src {
					src[i] = float32(math.Cos(float64(i)*0.37)) * float32(1+i%7)
				}

				got := make([]float32, 2*n)
				want := make([]float32, 2*n)
				MonoToStereo(got, src, g[0], g[1])
				monoToStereoRef(want, src, g[0], g[1])

				for i := range got {
					if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
						t.Fatalf("dst[%d] = %v, want %v", i, got[i], want[i])
					}
				}
			})
		}
	}
}

func TestMonoToStereo_SpecialValues(t *testing.T) {
	requireAVX2(t)

	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	src := []float32{inf, -inf, nan, 0, 1, 2, 3, 4}
	dst := make([]float32, 16)

	MonoToStereo(dst, src, 0, 1)

	for i := 0; i < 3; i++ {
		if l := dst[2*i]; !math.IsNaN(float64(l)) {
			t.Fatalf("left[%d] = %v, want NaN", i, l)
		}
	}
	if !math.IsInf(float64(dst[1]), 1) || !math.IsInf(float64(dst[3]), -1) {
		t.Fatalf("right channel did not keep infinities: %v", dst[:4])
	}
	for i := 3; i < len(src); i++ {
		if dst[2*i] != 0 {
			t.Fatalf("left[%d] = %v, want 0", i, dst[2*i])
		}
		if dst[2*i+1] != src[i] {
			t.Fatalf("right[%d] = %v, want %v", i, dst[2*i+1], src[i])
		}
	}
}

func TestMonoToStereo_LeavesTailUntouched(t *testing.T) {
	requireAVX2(t)

	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	dst := make([]float32, 2*len(src)+3)
	for i := range dst {
		dst[i] = -7
	}

	MonoToStereo(dst, src, 2, 3)

	for i := 2 * len(src); i < len(dst); i++ {
		if dst[i] != -7 {
			t.Fatalf("dst[%d] = %v, kernel wrote past 2*len(src)", i, dst[i])
		}
	}
}

func TestMonoToStereo_Panics(t *testing.T) {
	cases := []struct {
		name string
		dst  []float32
		src  []float32
	}{
		{name: "unaligned", dst: make([]float32, 10), src: make([]float32, 5)},
		{name: "short dst", dst: make([]float32, 15), src: make([]float32, 8)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			MonoToStereo(tc.dst, tc.src, 1, 1)
		})
	}
}

func BenchmarkMonoToStereo_AVX2(b *testing.B) {
	requireAVX2(b)

	for _, n := range []int{64, 256, 1024, 4096, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := make([]float32, n)
			dst := make([]float32, 2*n)

			b.SetBytes(int64(n) * 4 * 3)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				MonoToStereo(dst, src, 1, 1)
			}
		})
	}
}
