package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/service/grabber"
	mock_grabber "github.com/ayahgrab/ayah-grabber/internal/service/grabber/mocks"
)

// newTestServer creates a Server over a mocked grabber service.
func newTestServer(t *testing.T) (*Server, *mock_grabber.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := mock_grabber.NewMockService(ctrl)

	cfg := &config.Config{ReciterID: "1"}

	return NewServer(cfg, mockService), mockService
}

// postGrabForm submits the grab form and returns the response.
func postGrabForm(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, "/grab", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	return recorder
}

// TestServer_HandleIndex tests rendering of the range-selection form.
func TestServer_HandleIndex(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	mockService.EXPECT().
		ListReciters(gomock.Any()).
		Return(map[string]string{
			"1": "Mishary Rashid Al Afasy",
			"4": "Yasser Al Dosari",
		}).
		Times(1)

	request := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	assert.Contains(t, body, "Mishary Rashid Al Afasy")
	assert.Contains(t, body, "Yasser Al Dosari")
	assert.Contains(t, body, `value="1" selected`)
}

// TestServer_HandleIndex_NotFound tests that unknown paths are rejected.
func TestServer_HandleIndex_NotFound(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// TestServer_HandleGrab tests a successful grab job response.
func TestServer_HandleGrab(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	outputPath := filepath.Join(t.TempDir(), "001_AlFaatiha_001-007.mp3")
	require.NoError(t, os.WriteFile(outputPath, []byte("merged-audio"), 0o644))

	mockService.EXPECT().
		GrabRange(gomock.Any(), "1:1", "1:7").
		Return(&grabber.GrabResult{
			OutputPath:       outputPath,
			ChapterName:      "Al-Faatiha",
			VersesRequested:  7,
			VersesDownloaded: 7,
			SegmentsMerged:   7,
		}, nil).
		Times(1)

	recorder := postGrabForm(t, server.Handler(), url.Values{
		"start":   {"1:1"},
		"end":     {"1:7"},
		"reciter": {"4"},
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "audio/mpeg", recorder.Header().Get("Content-Type"))
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "001_AlFaatiha_001-007.mp3")
	assert.Equal(t, "merged-audio", recorder.Body.String())

	// The form's reciter selection drives the job.
	assert.Equal(t, "4", server.cfg.ReciterID)
}

// TestServer_HandleGrab_ReciterScopedToJob tests that a reciter selection
// applies to its own job only and a later form without one falls back to
// the startup default instead of inheriting the previous choice.
func TestServer_HandleGrab_ReciterScopedToJob(t *testing.T) {
	t.Parallel()

	server, mockService := newTestServer(t)

	outputPath := filepath.Join(t.TempDir(), "001_AlFaatiha_001-003.mp3")
	require.NoError(t, os.WriteFile(outputPath, []byte("merged-audio"), 0o644))

	var seenReciterIDs []string

	mockService.EXPECT().
		GrabRange(gomock.Any(), "1:1", "1:3").
		DoAndReturn(func(_ context.Context, _, _ string) (*grabber.GrabResult, error) {
			seenReciterIDs = append(seenReciterIDs, server.cfg.ReciterID)

			return &grabber.GrabResult{
				OutputPath:       outputPath,
				ChapterName:      "Al-Faatiha",
				VersesRequested:  3,
				VersesDownloaded: 3,
				SegmentsMerged:   3,
			}, nil
		}).
		Times(2)

	// First job picks reciter 4 explicitly.
	recorder := postGrabForm(t, server.Handler(), url.Values{
		"start":   {"1:1"},
		"end":     {"1:3"},
		"reciter": {"4"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	// Second job omits the reciter and must get the configured default back.
	recorder = postGrabForm(t, server.Handler(), url.Values{
		"start": {"1:1"},
		"end":   {"1:3"},
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, []string{"4", "1"}, seenReciterIDs)

	// The form keeps preselecting the startup default regardless of past jobs.
	mockService.EXPECT().
		ListReciters(gomock.Any()).
		Return(map[string]string{
			"1": "Mishary Rashid Al Afasy",
			"4": "Yasser Al Dosari",
		}).
		Times(1)

	request := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	indexRecorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(indexRecorder, request)

	require.Equal(t, http.StatusOK, indexRecorder.Code)
	assert.Contains(t, indexRecorder.Body.String(), `value="1" selected`)
}

// TestServer_HandleGrab_ErrorMapping tests HTTP status mapping of job failures.
func TestServer_HandleGrab_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{
			name:         "malformed reference",
			err:          grabber.ErrInvalidReferenceFormat,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "inverted range",
			err:          grabber.ErrInvalidRange,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "nothing downloaded",
			err:          grabber.ErrNothingDownloaded,
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "unexpected failure",
			err:          os.ErrPermission,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, mockService := newTestServer(t)

			mockService.EXPECT().
				GrabRange(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tt.err).
				Times(1)

			recorder := postGrabForm(t, server.Handler(), url.Values{
				"start": {"1:1"},
				"end":   {"1:7"},
			})

			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

// TestServer_HandleGrab_MethodNotAllowed tests rejection of non-POST requests.
func TestServer_HandleGrab_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	request := httptest.NewRequest(http.MethodGet, "/grab", http.NoBody)
	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
