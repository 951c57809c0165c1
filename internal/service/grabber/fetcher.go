package grabber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ayahgrab/ayah-grabber/internal/constants"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/utils"
)

// File options for overwriting an existing file.
const overwriteFileOptions = os.O_CREATE | os.O_TRUNC | os.O_WRONLY

// verseCachePath returns the deterministic cache path for a verse,
// keyed by chapter, verse and reciter.
func (s *ServiceImpl) verseCachePath(reference VerseReference) string {
	return filepath.Join(
		s.cfg.CachePath,
		fmt.Sprintf("%d_%d_%s%s", reference.Chapter, reference.Verse, s.cfg.ReciterID, constants.ExtensionMP3))
}

// fetchVerse downloads a single verse's audio into the cache directory.
// A file already present at the cache path short-circuits the network
// entirely unless replace_verses is set. On primary URL failure the
// per-verse metadata is queried for the reciter's fallback URL.
// A failed fetch never leaves a file at the cache path.
func (s *ServiceImpl) fetchVerse(ctx context.Context, reference VerseReference) (*fetchVerseResult, error) {
	versePath := s.verseCachePath(reference)

	if !s.cfg.ReplaceVerses {
		if isCached, err := utils.IsFileExist(versePath); err == nil && isCached {
			logger.Debugf(ctx, "Verse %s already cached at '%s'", reference, versePath)

			return &fetchVerseResult{path: versePath, fromCache: true}, nil
		}
	}

	primaryURL := s.apiClient.VerseAudioURL(s.cfg.ReciterID, reference.Chapter, reference.Verse)

	bytesDownloaded, primaryErr := s.downloadToFile(ctx, primaryURL, versePath)
	if primaryErr == nil {
		return &fetchVerseResult{path: versePath, bytesDownloaded: bytesDownloaded}, nil
	}

	// Cancellation is not a reason to hammer the fallback host.
	if errors.Is(primaryErr, context.Canceled) {
		return nil, primaryErr
	}

	logger.Warnf(ctx, "Primary download of verse %s failed, trying fallback URL: %v", reference, primaryErr)

	fallbackURL, err := s.fallbackVerseURL(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("primary failed (%w), fallback unavailable: %w", primaryErr, err)
	}

	bytesDownloaded, err = s.downloadToFile(ctx, fallbackURL, versePath)
	if err != nil {
		return nil, fmt.Errorf("primary failed (%w), fallback failed: %w", primaryErr, err)
	}

	return &fetchVerseResult{path: versePath, bytesDownloaded: bytesDownloaded}, nil
}

// fallbackVerseURL queries the per-verse metadata for the reciter's original URL.
func (s *ServiceImpl) fallbackVerseURL(ctx context.Context, reference VerseReference) (string, error) {
	metadata, err := s.apiClient.GetVerseMetadata(ctx, reference.Chapter, reference.Verse)
	if err != nil {
		return "", err
	}

	fallbackURL := metadata.FallbackURL(s.cfg.ReciterID)
	if fallbackURL == "" {
		return "", fmt.Errorf("%w '%s'", ErrNoFallbackURL, s.cfg.ReciterID)
	}

	return fallbackURL, nil
}

// downloadToFile streams the URL's content to destinationPath.
// The payload goes to a temporary .part file which is renamed only after
// the stream completes, so a failed download never leaves the final path
// present and mistakable for a cached verse.
func (s *ServiceImpl) downloadToFile(ctx context.Context, url, destinationPath string) (int64, error) {
	reader, err := s.apiClient.DownloadFromURL(ctx, url)
	if err != nil {
		return 0, err
	}

	defer reader.Close() //nolint:errcheck // Error on close is not critical here.

	tempPath := destinationPath + constants.ExtensionPart

	// Always overwrite .part files (they indicate incomplete downloads).
	file, err := os.OpenFile(filepath.Clean(tempPath), overwriteFileOptions, constants.DefaultFilePermissions)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	var downloadSucceeded bool

	defer func() {
		closeErr := file.Close()

		if !downloadSucceeded {
			if removeErr := os.Remove(tempPath); removeErr != nil && !os.IsNotExist(removeErr) {
				logger.Warnf(ctx, "Failed to clean up temporary file '%s': %v (close error: %v)",
					tempPath, removeErr, closeErr)
			}
		}
	}()

	bytesWritten, err := s.copyWithSpeedLimit(file, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	if err = os.Rename(tempPath, destinationPath); err != nil {
		return 0, fmt.Errorf("failed to finalize file: %w", err)
	}

	downloadSucceeded = true

	return bytesWritten, nil
}

// copyWithSpeedLimit copies reader to writer, throttled to the configured
// bytes-per-second limit when one is set.
func (s *ServiceImpl) copyWithSpeedLimit(writer io.Writer, reader io.Reader) (int64, error) {
	if s.cfg.ParsedDownloadSpeedLimit == 0 {
		return io.Copy(writer, reader)
	}

	var bytesWritten int64

	for {
		n, err := io.CopyN(writer, reader, s.cfg.ParsedDownloadSpeedLimit)
		bytesWritten += n

		if errors.Is(err, io.EOF) {
			return bytesWritten, nil
		}

		if err != nil {
			return bytesWritten, err
		}

		// Throttle to respect speed limit.
		time.Sleep(time.Second)
	}
}
