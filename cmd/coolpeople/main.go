package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/pkg/logger"
)

// Version information set at build time.
var (
	version   = "dev"
	commit    = ""
	date      = ""
	builtBy   = ""
	treeState = ""
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.WithError(err).WithField("kind", apperrors.KindOf(err).String()).Error("Failed to generate README")
		cancel()
		os.Exit(1)
	}
}
