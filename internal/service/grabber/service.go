package grabber

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/oshokin/id3v2/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/ayahgrab/ayah-grabber/internal/audio"
	"github.com/ayahgrab/ayah-grabber/internal/client/quranapi"
	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/constants"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/utils"
)

// Service defines the caller-facing operations of the verse grabber.
type Service interface {
	// ListReciters returns the reciter directory (remote or fixed fallback).
	ListReciters(ctx context.Context) map[string]string
	// ResolveReciterID resolves a reciter display name to its identifier.
	// Unknown names resolve to the default reciter with a warning.
	ResolveReciterID(ctx context.Context, displayName string) string
	// ParseReference parses a "chapter:verse" string into a VerseReference.
	ParseReference(text string) (VerseReference, error)
	// ExpandRange expands an inclusive span into document-ordered verse references.
	ExpandRange(ctx context.Context, start, end VerseReference) ([]VerseReference, error)
	// DownloadRange fetches every verse in the span sequentially and returns
	// the local paths of the verses that succeeded, in document order.
	DownloadRange(ctx context.Context, start, end VerseReference) ([]string, error)
	// Concatenate merges the ordered input files into a single output file.
	Concatenate(ctx context.Context, inputPaths []string, outputPath string) (string, error)
	// SynthesizeFilename derives the deterministic output filename for a range.
	SynthesizeFilename(startText, endText, chapterName string) string
	// GrabRange runs the whole workflow: parse, expand, download, merge, tag.
	GrabRange(ctx context.Context, startText, endText string) (*GrabResult, error)
	// Statistics returns a snapshot of the session counters.
	Statistics() SessionStatistics
	// PrintSessionSummary prints a formatted summary of the session statistics.
	PrintSessionSummary(ctx context.Context)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// apiClient is the client for the metadata and audio services.
	apiClient quranapi.Client
	// merger assembles downloaded verse files into one output file.
	merger audio.Merger
	// statsMutex protects stats.
	statsMutex sync.Mutex
	// stats accumulates session counters.
	stats *SessionStatistics
}

// NewService creates and returns a new instance of ServiceImpl.
func NewService(cfg *config.Config, apiClient quranapi.Client, merger audio.Merger) Service {
	return &ServiceImpl{
		cfg:       cfg,
		apiClient: apiClient,
		merger:    merger,
		stats:     &SessionStatistics{},
	}
}

// ListReciters returns the reciter directory (remote or fixed fallback).
func (s *ServiceImpl) ListReciters(ctx context.Context) map[string]string {
	return s.apiClient.GetReciters(ctx)
}

// ResolveReciterID resolves a reciter display name to its identifier by
// exact match against the directory. An unknown name resolves to the
// default reciter; the fallback is logged so a typo doesn't pass unnoticed.
func (s *ServiceImpl) ResolveReciterID(ctx context.Context, displayName string) string {
	for reciterID, name := range s.apiClient.GetReciters(ctx) {
		if name == displayName {
			return reciterID
		}
	}

	logger.Warnf(ctx, "Unknown reciter '%s', defaulting to reciter ID '%s'",
		displayName, config.DefaultReciterID)

	return config.DefaultReciterID
}

// ParseReference parses a "chapter:verse" string into a VerseReference.
func (s *ServiceImpl) ParseReference(text string) (VerseReference, error) {
	return ParseReference(text)
}

// SynthesizeFilename derives the deterministic output filename for a range.
func (s *ServiceImpl) SynthesizeFilename(startText, endText, chapterName string) string {
	return SynthesizeFilename(startText, endText, chapterName)
}

// DownloadRange fetches every verse in the span sequentially, in document order.
func (s *ServiceImpl) DownloadRange(ctx context.Context, start, end VerseReference) ([]string, error) {
	references, err := s.ExpandRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return s.downloadReferences(ctx, references)
}

// downloadReferences fetches the given verses one by one. A verse that
// fails to download is logged, counted and omitted; the rest of the
// sequence still proceeds.
func (s *ServiceImpl) downloadReferences(ctx context.Context, references []VerseReference) ([]string, error) {
	if len(references) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(s.cfg.CachePath, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Progress bars are suppressed when logging is chattier than the bar.
	var bar *progressbar.ProgressBar
	if logger.Level() <= zap.InfoLevel {
		bar = progressbar.Default(int64(len(references)), "Downloading verses")
	}

	paths := make([]string, 0, len(references))

	for _, reference := range references {
		// Check if context was canceled (CTRL+C pressed) - stop immediately.
		select {
		case <-ctx.Done():
			return paths, ctx.Err()
		default:
		}

		result, err := s.fetchVerse(ctx, reference)

		if bar != nil {
			_ = bar.Add(1)
		}

		if err != nil {
			// Don't log context cancellation - it's expected when user presses CTRL+C.
			if !errors.Is(err, context.Canceled) {
				logger.Errorf(ctx, "Failed to download verse %s: %v", reference, err)
			}

			s.incrementVerseFailed(reference, err)

			continue
		}

		paths = append(paths, result.path)

		if result.fromCache {
			s.incrementVerseFromCache()

			continue
		}

		s.incrementVerseDownloaded(result.bytesDownloaded)

		// Add a random pause between downloads to avoid rate limiting.
		utils.RandomPause(0, s.cfg.ParsedMaxDownloadPause)
	}

	return paths, nil
}

// Concatenate merges the ordered input files into a single output file.
func (s *ServiceImpl) Concatenate(ctx context.Context, inputPaths []string, outputPath string) (string, error) {
	if _, err := s.mergeFiles(ctx, inputPaths, outputPath); err != nil {
		return "", err
	}

	return outputPath, nil
}

// mergeFiles runs the merger and records dropped segments in the session statistics.
func (s *ServiceImpl) mergeFiles(
	ctx context.Context,
	inputPaths []string,
	outputPath string,
) (*audio.MergeResult, error) {
	result, err := s.merger.MergeFiles(ctx, inputPaths, outputPath)
	if err != nil {
		return nil, err
	}

	for _, skippedPath := range result.SkippedPaths {
		s.incrementSegmentSkipped(skippedPath)
	}

	return result, nil
}

// GrabRange runs the whole workflow: parse both references, expand the
// range, download every verse, merge the survivors into one file and tag it.
// Returns ErrNothingDownloaded when no verse in the range could be fetched.
func (s *ServiceImpl) GrabRange(ctx context.Context, startText, endText string) (*GrabResult, error) {
	start, err := ParseReference(startText)
	if err != nil {
		return nil, err
	}

	end, err := ParseReference(endText)
	if err != nil {
		return nil, err
	}

	s.markSessionStart()
	defer s.markSessionEnd()

	references, err := s.ExpandRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Downloading %d verse(s): %s to %s", len(references), start, end)

	paths, err := s.downloadReferences(ctx, references)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrNothingDownloaded, startText, endText)
	}

	chapterName := s.apiClient.GetChapterMetadata(ctx, start.Chapter).Name

	if err = os.MkdirAll(s.cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(s.cfg.OutputPath, s.outputFilename(startText, endText, chapterName))

	mergeResult, err := s.mergeFiles(ctx, paths, outputPath)
	if err != nil {
		return nil, err
	}

	s.tagOutputFile(ctx, outputPath, chapterName, start, end)

	logger.Infof(ctx, "Saved merged audio to '%s'", outputPath)

	return &GrabResult{
		OutputPath:       outputPath,
		ChapterName:      chapterName,
		VersesRequested:  len(references),
		VersesDownloaded: len(paths),
		SegmentsMerged:   mergeResult.SegmentsMerged,
	}, nil
}

// outputFilename picks the output file name: the configured override when
// set, the synthesized deterministic name otherwise.
func (s *ServiceImpl) outputFilename(startText, endText, chapterName string) string {
	if s.cfg.OutputFilename == "" {
		return SynthesizeFilename(startText, endText, chapterName)
	}

	filename := utils.SanitizeFilename(s.cfg.OutputFilename)
	if !strings.EqualFold(filepath.Ext(filename), constants.ExtensionMP3) {
		filename += constants.ExtensionMP3
	}

	return filename
}

// tagOutputFile writes ID3 metadata to the merged artifact.
// Tagging is best-effort: a failure leaves a playable untagged file.
func (s *ServiceImpl) tagOutputFile(ctx context.Context, path, chapterName string, start, end VerseReference) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: false})
	if err != nil {
		logger.Warnf(ctx, "Failed to open merged file for tagging: %v", err)

		return
	}

	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle(fmt.Sprintf("%s %s-%s", chapterName, start, end))
	tag.SetAlbum(chapterName)

	if reciterName := s.apiClient.GetReciters(ctx)[s.cfg.ReciterID]; reciterName != "" {
		tag.SetArtist(reciterName)
	}

	if err = tag.Save(); err != nil {
		logger.Warnf(ctx, "Failed to write tags to merged file: %v", err)
	}
}
