// Command mixinfo reports which mono-to-stereo kernels are available on
// this machine, times them, and prints pan-law gain tables.
//
// Usage:
//
//	mixinfo [kernels]
//	mixinfo bench [--samples N] [--iterations N] [--kernel NAME ...]
//	mixinfo pan [--law LAW] [--] [POSITION ...]
//
// Examples:
//
//	mixinfo
//	mixinfo bench --samples 4096 --iterations 10000
//	mixinfo pan --law square-root -- -1 -0.5 0 0.5 1
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	Kernels kernelsCmd `cmd:"" default:"1" help:"List registered kernels and detected CPU features."`
	Bench   benchCmd   `cmd:"" help:"Time every supported kernel on the same buffer."`
	Pan     panCmd     `cmd:"" help:"Print left/right gains for pan positions."`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("mixinfo"),
		kong.Description("Inspect and benchmark the mono-to-stereo mixing kernels."),
		kong.UsageOnError(),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
