package grabber

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ayahgrab/ayah-grabber/internal/logger"
)

// minimumReportedDuration is the shortest session duration worth printing.
const minimumReportedDuration = 100 * time.Millisecond

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// markSessionStart records the session start time.
func (s *ServiceImpl) markSessionStart() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	if s.stats.StartTime.IsZero() {
		s.stats.StartTime = time.Now()
	}
}

// markSessionEnd records the session end time.
func (s *ServiceImpl) markSessionEnd() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.EndTime = time.Now()
}

// incrementVerseDownloaded counts a verse fetched over the network.
func (s *ServiceImpl) incrementVerseDownloaded(bytes int64) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.VersesDownloaded++
	s.stats.TotalVersesProcessed++
	s.stats.TotalBytesDownloaded += bytes
}

// incrementVerseFromCache counts a verse served from the on-disk cache.
func (s *ServiceImpl) incrementVerseFromCache() {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.VersesFromCache++
	s.stats.TotalVersesProcessed++
}

// incrementVerseFailed counts a verse that could not be fetched and records the error.
func (s *ServiceImpl) incrementVerseFailed(reference VerseReference, err error) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.VersesFailed++
	s.stats.TotalVersesProcessed++
	s.stats.Errors = append(s.stats.Errors, GrabError{
		Reference:    reference.String(),
		Phase:        "downloading verse",
		ErrorMessage: err.Error(),
	})
}

// incrementSegmentSkipped counts a downloaded file dropped during merge.
func (s *ServiceImpl) incrementSegmentSkipped(path string) {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	s.stats.SegmentsSkipped++
	s.stats.Errors = append(s.stats.Errors, GrabError{
		Reference:    path,
		Phase:        "merging segment",
		ErrorMessage: "segment skipped as unreadable or unplayable",
	})
}

// Statistics returns a snapshot of the session counters.
func (s *ServiceImpl) Statistics() SessionStatistics {
	s.statsMutex.Lock()
	defer s.statsMutex.Unlock()

	snapshot := *s.stats
	snapshot.Errors = append([]GrabError(nil), s.stats.Errors...)

	return snapshot
}

// PrintSessionSummary prints a formatted summary of the session statistics.
func (s *ServiceImpl) PrintSessionSummary(ctx context.Context) {
	stats := s.Statistics()

	// If nothing was processed, don't print summary.
	if stats.TotalVersesProcessed == 0 {
		return
	}

	// Check if the context was canceled (CTRL+C or timeout).
	wasInterrupted := ctx.Err() != nil

	logger.Info(ctx, "")
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")

	if wasInterrupted {
		logger.Info(ctx, "            DOWNLOAD SUMMARY (Interrupted)")
	} else {
		logger.Info(ctx, "                   DOWNLOAD SUMMARY")
	}

	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	logger.Infof(ctx, "Verses:           %d total processed", stats.TotalVersesProcessed)

	if stats.VersesDownloaded > 0 {
		logger.Infof(ctx, "  Downloaded:     %d", stats.VersesDownloaded)
	}

	if stats.VersesFromCache > 0 {
		logger.Infof(ctx, "  From Cache:     %d", stats.VersesFromCache)
	}

	if stats.VersesFailed > 0 {
		logger.Infof(ctx, "  Failed:         %d", stats.VersesFailed)
	}

	if stats.SegmentsSkipped > 0 {
		logger.Infof(ctx, "Segments Dropped: %d", stats.SegmentsSkipped)
	}

	if stats.TotalBytesDownloaded > 0 {
		//nolint:gosec // TotalBytesDownloaded is always positive, no overflow risk.
		logger.Infof(ctx, "Data Downloaded:  %s", humanize.Bytes(uint64(stats.TotalBytesDownloaded)))
	}

	s.printDurationStatistics(ctx, &stats)
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
	s.printErrorDetails(ctx, &stats)
	s.printFinalMessage(ctx, wasInterrupted, &stats)
}

// printDurationStatistics prints elapsed time and average speed.
func (s *ServiceImpl) printDurationStatistics(ctx context.Context, stats *SessionStatistics) {
	if stats.StartTime.IsZero() || stats.EndTime.IsZero() {
		return
	}

	duration := stats.EndTime.Sub(stats.StartTime)
	if duration <= minimumReportedDuration {
		return
	}

	logger.Infof(ctx, "Duration:         %s", formatDuration(duration))

	if stats.TotalBytesDownloaded > 0 {
		bytesPerSecond := float64(stats.TotalBytesDownloaded) / duration.Seconds()
		logger.Infof(ctx, "Average Speed:    %s/s", humanize.Bytes(uint64(bytesPerSecond)))
	}
}

// printErrorDetails prints the recovered failures encountered during the session.
func (s *ServiceImpl) printErrorDetails(ctx context.Context, stats *SessionStatistics) {
	if len(stats.Errors) == 0 {
		return
	}

	logger.Info(ctx, "")
	logger.Errorf(ctx, "ERRORS ENCOUNTERED: %d", len(stats.Errors))

	for i := range stats.Errors {
		logger.Info(ctx, "")
		logger.Errorf(ctx, "  [%d] %s", i+1, stats.Errors[i].Reference)
		logger.Errorf(ctx, "      Phase: %s", stats.Errors[i].Phase)
		logger.Errorf(ctx, "      Error: %s", stats.Errors[i].ErrorMessage)
	}

	logger.Info(ctx, "")
	logger.Info(ctx, "═══════════════════════════════════════════════════════════════")
}

// printFinalMessage prints a helpful closing message based on the session results.
func (s *ServiceImpl) printFinalMessage(ctx context.Context, wasInterrupted bool, stats *SessionStatistics) {
	switch {
	case wasInterrupted:
		logger.Info(ctx, "")
		logger.Warn(ctx, "Download interrupted by user (CTRL+C).")

		if stats.VersesDownloaded > 0 {
			logger.Infof(ctx, "Successfully downloaded %d verse(s) before interruption.", stats.VersesDownloaded)
		}
	case len(stats.Errors) > 0:
		logger.Info(ctx, "")
		logger.Warnf(ctx, "%d error(s) occurred during download. See detailed error log above.", len(stats.Errors))
	case stats.VersesDownloaded > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All downloads completed successfully!")
	case stats.VersesFromCache > 0:
		logger.Info(ctx, "")
		logger.Info(ctx, "All verses were already cached locally.")
	}
}
