//go:build purego || !amd64

package mix

import (
	_ "github.com/cwbudde/algo-mix/dsp/mix/internal/arch/generic" // register generic kernel
)
