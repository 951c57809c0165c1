package app

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/utils"
)

// ExecuteRecitersCommand lists the reciter directory and optionally saves
// one entry as the configured default.
func ExecuteRecitersCommand(ctx context.Context, cfg *config.Config, saveDefaultID string) {
	s := newGrabberService(ctx, cfg)

	reciters := s.ListReciters(ctx)

	ids := make([]string, 0, len(reciters))
	for id := range reciters {
		ids = append(ids, id)
	}

	// Numeric IDs first in numeric order, anything else after in string order.
	sort.Slice(ids, func(i, j int) bool {
		left, leftErr := strconv.Atoi(ids[i])
		right, rightErr := strconv.Atoi(ids[j])

		if leftErr == nil && rightErr == nil {
			return left < right
		}

		if (leftErr == nil) != (rightErr == nil) {
			return leftErr == nil
		}

		return ids[i] < ids[j]
	})

	logger.Infof(ctx, "Available reciters (%d):", len(ids))

	rows := utils.Map(ids, func(id string) string {
		marker := " "
		if id == cfg.ReciterID {
			marker = "*"
		}

		return fmt.Sprintf("%s %3s  %s", marker, id, reciters[id])
	})

	for _, row := range rows {
		logger.Infof(ctx, "%s", row)
	}

	if saveDefaultID == "" {
		return
	}

	name, ok := reciters[saveDefaultID]
	if !ok {
		logger.Fatalf(ctx, "Unknown reciter ID '%s', nothing saved", saveDefaultID)

		return
	}

	cfg.ReciterID = saveDefaultID

	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)

		return
	}

	logger.Infof(ctx, "Saved '%s' (ID %s) as the default reciter", name, saveDefaultID)
}
