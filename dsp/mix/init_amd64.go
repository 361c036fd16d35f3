//go:build amd64 && !purego

package mix

import (
	_ "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/amd64/avx2" // register AVX2 kernel
	_ "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/amd64/sse2" // register SSE2 kernel
	_ "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/generic"    // register generic kernel
)
