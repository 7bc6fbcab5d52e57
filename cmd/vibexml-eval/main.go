// Command vibexml-eval runs blind A/B evaluations comparing VibeXML
// structured prompts against raw text prompts.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/chainguard-dev/clog"

	"github.com/jamesindeed/ai-vibexml-eval/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := clog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = clog.WithLogger(ctx, logger)

	if err := cli.ExecuteContext(ctx); err != nil {
		clog.FromContext(ctx).Errorf("run failed: %v", err)
		os.Exit(1)
	}
}
