// tincture - derive a colour theme from an image
//
// tincture clusters the colours of an image, picks its darkest and lightest
// colours, and renders a themed configuration file from them.
package main

import (
	"context"
	"os"

	"github.com/jmylchreest/tincture/internal/cli"
)

func main() {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
