package grabber

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayahgrab/ayah-grabber/internal/client/quranapi"
	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/constants"
)

// newServiceWithTestServer creates a ServiceImpl wired to a real API client
// pointed at the given test server.
func newServiceWithTestServer(t *testing.T, serverURL string) (*ServiceImpl, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		APIBaseURL:   serverURL,
		AudioBaseURL: serverURL + "/audio",
		ReciterID:    "1",
		CachePath:    t.TempDir(),
	}

	apiClient, err := quranapi.NewClient(cfg)
	require.NoError(t, err)

	service, ok := NewService(cfg, apiClient, nil).(*ServiceImpl)
	require.True(t, ok)

	return service, cfg
}

// TestServiceImpl_FetchVerse_Primary tests the primary download path.
func TestServiceImpl_FetchVerse_Primary(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		if r.URL.Path == "/audio/1/1_1.mp3" {
			_, _ = w.Write([]byte("verse-audio"))

			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service, cfg := newServiceWithTestServer(t, server.URL)
	ctx := context.Background()

	result, err := service.fetchVerse(ctx, VerseReference{Chapter: 1, Verse: 1})
	require.NoError(t, err)
	assert.False(t, result.fromCache)
	assert.Equal(t, int64(len("verse-audio")), result.bytesDownloaded)
	assert.Equal(t, filepath.Join(cfg.CachePath, "1_1_1.mp3"), result.path)

	content, err := os.ReadFile(result.path)
	require.NoError(t, err)
	assert.Equal(t, "verse-audio", string(content))

	// The temporary file must not survive a successful download.
	assert.NoFileExists(t, result.path+constants.ExtensionPart)

	// A second fetch is a cache hit with no network access.
	before := requests.Load()

	again, err := service.fetchVerse(ctx, VerseReference{Chapter: 1, Verse: 1})
	require.NoError(t, err)
	assert.True(t, again.fromCache)
	assert.Equal(t, result.path, again.path)
	assert.Equal(t, before, requests.Load())
}

// TestServiceImpl_FetchVerse_Fallback tests the fallback URL path.
func TestServiceImpl_FetchVerse_Fallback(t *testing.T) {
	t.Parallel()

	var server *httptest.Server

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2/255.json":
			_, _ = fmt.Fprintf(w, `{"audio": {"1": {"originalUrl": "%s/mirror/2_255.mp3"}}}`, server.URL)
		case "/mirror/2_255.mp3":
			_, _ = w.Write([]byte("mirror-audio"))
		default:
			// Primary host knows nothing about this verse.
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	service, cfg := newServiceWithTestServer(t, server.URL)

	result, err := service.fetchVerse(context.Background(), VerseReference{Chapter: 2, Verse: 255})
	require.NoError(t, err)
	assert.False(t, result.fromCache)
	assert.Equal(t, filepath.Join(cfg.CachePath, "2_255_1.mp3"), result.path)

	content, err := os.ReadFile(result.path)
	require.NoError(t, err)
	assert.Equal(t, "mirror-audio", string(content))
}

// TestServiceImpl_FetchVerse_Failures tests that a fully failed fetch leaves no file behind.
func TestServiceImpl_FetchVerse_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     http.HandlerFunc
		expectedErr error
	}{
		{
			name: "primary and fallback metadata both missing",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "no fallback URL for reciter",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/2/255.json" {
					_, _ = w.Write([]byte(`{"audio": {"9": {"originalUrl": "https://mirror.example.com/x.mp3"}}}`))

					return
				}

				w.WriteHeader(http.StatusNotFound)
			},
			expectedErr: ErrNoFallbackURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			service, cfg := newServiceWithTestServer(t, server.URL)

			_, err := service.fetchVerse(context.Background(), VerseReference{Chapter: 2, Verse: 255})
			require.Error(t, err)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			}

			// Nothing may remain at the cache path or next to it:
			// a leftover file would be mistaken for a cached verse on retry.
			versePath := filepath.Join(cfg.CachePath, "2_255_1.mp3")
			assert.NoFileExists(t, versePath)
			assert.NoFileExists(t, versePath+constants.ExtensionPart)
		})
	}
}

// TestServiceImpl_FetchVerse_ReplaceVerses tests the forced re-download policy.
func TestServiceImpl_FetchVerse_ReplaceVerses(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/audio/1/1_1.mp3" {
			_, _ = w.Write([]byte("fresh-audio"))

			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	service, cfg := newServiceWithTestServer(t, server.URL)
	cfg.ReplaceVerses = true

	versePath := filepath.Join(cfg.CachePath, "1_1_1.mp3")
	require.NoError(t, os.WriteFile(versePath, []byte("stale-audio"), constants.DefaultFilePermissions))

	result, err := service.fetchVerse(context.Background(), VerseReference{Chapter: 1, Verse: 1})
	require.NoError(t, err)
	assert.False(t, result.fromCache)

	content, err := os.ReadFile(versePath)
	require.NoError(t, err)
	assert.Equal(t, "fresh-audio", string(content))
}
