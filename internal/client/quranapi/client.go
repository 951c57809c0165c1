package quranapi

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	http_transport "github.com/ayahgrab/ayah-grabber/internal/transport/http"
	"github.com/ayahgrab/ayah-grabber/internal/utils"
)

// Client defines the interface for interacting with the Quran metadata and audio services.
type Client interface {
	// DownloadFromURL downloads content from the specified URL.
	DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error)
	// GetChapterMetadata retrieves metadata for the specified chapter.
	// It never fails: on any network or payload error a degraded record with
	// a placeholder name and zero verse count is returned instead.
	GetChapterMetadata(ctx context.Context, chapterNumber int) *ChapterMetadata
	// GetVerseMetadata retrieves per-verse metadata including per-reciter fallback URLs.
	GetVerseMetadata(ctx context.Context, chapterNumber, verseNumber int) (*VerseMetadata, error)
	// GetReciters retrieves the reciter directory, substituting the fixed
	// fallback catalog on failure. The result is fetched once per session.
	GetReciters(ctx context.Context) map[string]string
	// VerseAudioURL constructs the convention-based primary audio URL for a verse.
	VerseAudioURL(reciterID string, chapterNumber, verseNumber int) string
}

// ClientImpl implements the Client interface.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// apiBaseURL is the base URL for metadata requests.
	apiBaseURL string
	// audioBaseURL is the base URL of the primary audio host.
	audioBaseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// chaptersCache caches chapter metadata to keep range expansion at
	// one remote lookup per distinct chapter.
	chaptersCache *lru.Cache[int, *ChapterMetadata]
	// recitersOnce guards the once-per-session reciter directory fetch.
	recitersOnce sync.Once
	// reciters is the directory resolved by the first GetReciters call.
	// Once set (remote or fallback) it is authoritative for the session.
	reciters map[string]string
}

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP client with the logging and User-Agent transports.
func NewClient(cfg *config.Config) (Client, error) {
	// Both base URLs were validated by the config layer, parse defensively anyway.
	apiBaseURL, err := url.Parse(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}

	audioBaseURL, err := url.Parse(cfg.AudioBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid audio base URL: %w", err)
	}

	// Initialize the HTTP client with custom transport and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, 0),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: http_transport.DefaultTimeout,
	}

	chaptersCache, err := lru.New[int, *ChapterMetadata](chaptersCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create chapters cache: %w", err)
	}

	return &ClientImpl{
		cfg:           cfg,
		apiBaseURL:    apiBaseURL.String(),
		audioBaseURL:  audioBaseURL.String(),
		httpClient:    httpClient,
		chaptersCache: chaptersCache,
	}, nil
}

// DownloadFromURL downloads content from the specified URL.
func (c *ClientImpl) DownloadFromURL(ctx context.Context, url string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return response.Body, nil
}

// GetChapterMetadata retrieves metadata for the specified chapter.
// Uses an LRU cache so a chapter's length is fetched at most once per session.
// Failures degrade to a placeholder record and are not cached, so a later
// call may still recover the real metadata.
func (c *ClientImpl) GetChapterMetadata(ctx context.Context, chapterNumber int) *ChapterMetadata {
	if cached, ok := c.chaptersCache.Get(chapterNumber); ok {
		return cached
	}

	payload, err := fetchJSON[chapterPayload](c, ctx, fmt.Sprintf("%d.json", chapterNumber))
	if err != nil {
		logger.Warnf(ctx, "Failed to fetch metadata for chapter %d: %v", chapterNumber, err)

		return degradedChapterMetadata(chapterNumber)
	}

	if err = payload.validate(); err != nil {
		logger.Warnf(ctx, "Rejected metadata for chapter %d: %v", chapterNumber, err)

		return degradedChapterMetadata(chapterNumber)
	}

	metadata := &ChapterMetadata{
		Number:     chapterNumber,
		Name:       payload.SurahName,
		VerseCount: payload.TotalAyah,
	}

	// Placeholder names are tolerated: an empty name still identifies the chapter by number.
	if metadata.Name == "" {
		metadata.Name = degradedChapterMetadata(chapterNumber).Name
	}

	c.chaptersCache.Add(chapterNumber, metadata)

	return metadata
}

// GetVerseMetadata retrieves per-verse metadata including per-reciter fallback URLs.
func (c *ClientImpl) GetVerseMetadata(ctx context.Context, chapterNumber, verseNumber int) (*VerseMetadata, error) {
	metadata, err := fetchJSON[VerseMetadata](c, ctx, fmt.Sprintf("%d/%d.json", chapterNumber, verseNumber))
	if err != nil {
		return nil, err
	}

	if len(metadata.Audio) == 0 {
		return nil, fmt.Errorf("%w: no audio entries for %d:%d",
			ErrMalformedVersePayload, chapterNumber, verseNumber)
	}

	return metadata, nil
}

// GetReciters retrieves the reciter directory.
// The first call resolves the directory (remote or fallback) and every
// later call returns the same result: no partial merges mid-session.
func (c *ClientImpl) GetReciters(ctx context.Context) map[string]string {
	c.recitersOnce.Do(func() {
		reciters, err := fetchJSON[map[string]string](c, ctx, recitersURI)
		if err != nil {
			logger.Warnf(ctx, "Failed to fetch reciter directory, using built-in fallback: %v", err)

			c.reciters = maps.Clone(fallbackReciters)

			return
		}

		if len(*reciters) == 0 {
			logger.Warn(ctx, "Reciter directory is empty, using built-in fallback")

			c.reciters = maps.Clone(fallbackReciters)

			return
		}

		c.reciters = *reciters
	})

	return c.reciters
}

// VerseAudioURL constructs the convention-based primary audio URL for a verse.
func (c *ClientImpl) VerseAudioURL(reciterID string, chapterNumber, verseNumber int) string {
	return fmt.Sprintf("%s/%s/%d_%d.mp3", c.audioBaseURL, reciterID, chapterNumber, verseNumber)
}
