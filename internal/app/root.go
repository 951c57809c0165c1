package app

import (
	"context"
	"errors"

	"github.com/ayahgrab/ayah-grabber/internal/audio"
	"github.com/ayahgrab/ayah-grabber/internal/client/quranapi"
	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/service/grabber"
)

// newGrabberService builds the grabber service with its API client and merger.
func newGrabberService(ctx context.Context, cfg *config.Config) grabber.Service {
	apiClient, err := quranapi.NewClient(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
	}

	return grabber.NewService(cfg, apiClient, audio.NewMerger())
}

// ExecuteRootCommand is the entry point for the range download command.
// It downloads every verse between the two references and merges them
// into a single tagged audio file.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, startText, endText string) {
	s := newGrabberService(ctx, cfg)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintSessionSummary(ctx)
	}()

	result, err := s.GrabRange(ctx, startText, endText)
	if err != nil {
		// Don't log context cancellation - it's expected when user presses CTRL+C.
		if !errors.Is(err, context.Canceled) {
			logger.Errorf(ctx, "Failed to download range: %v", err)
		}

		return
	}

	logger.Infof(ctx, "Merged %d verse(s) of %s into '%s'",
		result.SegmentsMerged, result.ChapterName, result.OutputPath)
}
