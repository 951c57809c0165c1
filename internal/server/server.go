package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayahgrab/ayah-grabber/internal/audio"
	"github.com/ayahgrab/ayah-grabber/internal/config"
	"github.com/ayahgrab/ayah-grabber/internal/logger"
	"github.com/ayahgrab/ayah-grabber/internal/service/grabber"
)

const (
	// readHeaderTimeout bounds how long a client may take to send request headers.
	readHeaderTimeout = 10 * time.Second

	// shutdownTimeout bounds graceful shutdown on context cancellation.
	shutdownTimeout = 5 * time.Second
)

// Server serves the range-selection form and runs grab jobs.
// Jobs are serialized with a mutex: one download at a time by design.
type Server struct {
	// cfg contains the application configuration.
	// Its ReciterID field is written per job while jobMutex is held;
	// everything read outside the mutex must not come from cfg.
	cfg *config.Config
	// defaultReciterID is the reciter configured at startup.
	// Immutable, safe to read from any handler without locking.
	defaultReciterID string
	// service is the grabber service running the jobs.
	service grabber.Service
	// indexTemplate renders the range-selection form.
	indexTemplate *template.Template
	// jobMutex serializes grab jobs.
	jobMutex sync.Mutex
}

// NewServer creates and returns a new Server instance.
func NewServer(cfg *config.Config, service grabber.Service) *Server {
	return &Server{
		cfg:              cfg,
		defaultReciterID: cfg.ReciterID,
		service:          service,
		indexTemplate:    template.Must(template.New("index").Parse(indexTemplateText)),
	}
}

// Run starts the HTTP server on the configured listen address and shuts it
// down gracefully when the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Listening on %s", s.cfg.ListenAddress)

		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	}
}

// Handler returns the route table of the front end.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/grab", s.handleGrab)

	return mux
}

// handleIndex renders the range-selection form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)

		return
	}

	data := struct {
		Reciters         map[string]string
		DefaultReciterID string
	}{
		Reciters:         s.service.ListReciters(r.Context()),
		DefaultReciterID: s.defaultReciterID,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := s.indexTemplate.Execute(w, data); err != nil {
		logger.Errorf(r.Context(), "Failed to render index page: %v", err)
	}
}

// handleGrab runs one grab job and streams the merged file back as a download.
func (s *Server) handleGrab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)

		return
	}

	ctx := r.Context()
	jobID := uuid.NewString()

	startText := strings.TrimSpace(r.FormValue("start"))
	endText := strings.TrimSpace(r.FormValue("end"))
	reciterID := strings.TrimSpace(r.FormValue("reciter"))

	// One job at a time: the cache and output directories are shared
	// mutable state with no finer-grained locking.
	s.jobMutex.Lock()
	defer s.jobMutex.Unlock()

	// The reciter choice is scoped to this job: a form that omits it gets
	// the startup default, never a previous job's selection.
	if reciterID == "" {
		reciterID = s.defaultReciterID
	}

	s.cfg.ReciterID = reciterID

	logger.InfoKV(ctx, "Grab job accepted",
		"job_id", jobID,
		"start", startText,
		"end", endText,
		"reciter_id", s.cfg.ReciterID)

	result, err := s.service.GrabRange(ctx, startText, endText)
	if err != nil {
		s.writeJobError(ctx, w, jobID, err)

		return
	}

	logger.InfoKV(ctx, "Grab job finished",
		"job_id", jobID,
		"output_path", result.OutputPath,
		"verses_downloaded", result.VersesDownloaded)

	s.serveArtifact(ctx, w, result.OutputPath)
}

// writeJobError maps a failed job to an HTTP status and a plain-text message.
func (s *Server) writeJobError(ctx context.Context, w http.ResponseWriter, jobID string, err error) {
	logger.WarnKV(ctx, "Grab job failed", "job_id", jobID, "error", err.Error())

	switch {
	case errors.Is(err, grabber.ErrInvalidReferenceFormat),
		errors.Is(err, grabber.ErrInvalidRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, grabber.ErrNothingDownloaded),
		errors.Is(err, audio.ErrNoInputFiles):
		http.Error(w, "no verses could be downloaded for this range", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// serveArtifact streams the merged file to the client as an attachment.
func (s *Server) serveArtifact(ctx context.Context, w http.ResponseWriter, path string) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		logger.Errorf(ctx, "Failed to open merged file '%s': %v", path, err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))

	if _, err = io.Copy(w, file); err != nil {
		logger.Warnf(ctx, "Failed to stream merged file to client: %v", err)
	}
}
