// Command poolcheck compares the exact pool-feasibility solver against a fast
// estimator over a corpus of item sequences, decides single sequences, and
// generates random corpora.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// An interrupt cancels the command context; compare stops handing out
	// cases and a running SAT cross-check is stopped.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
