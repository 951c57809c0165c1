package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/server"
)

// ExecuteServeCommand runs the HTTP front end until the context is canceled.
func ExecuteServeCommand(ctx context.Context, cfg *config.Config) {
	s := newGrabberService(ctx, cfg)

	if err := server.NewServer(cfg, s).Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf(ctx, "HTTP server failed: %v", err)
	}
}
