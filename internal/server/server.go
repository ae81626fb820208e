// Package server provides the HTTP upload surface of the converter. It is a
// thin I/O shell: it stores the upload to a temporary file, invokes the
// conversion engine, and streams the converted CSV back. No transformation
// logic lives here.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"salesconv/internal/common"
	"salesconv/internal/converter"
	"salesconv/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves the upload page and the convert endpoint.
type Server struct {
	engine    *converter.Engine
	logger    logging.Logger
	tempDir   string
	maxUpload int64
}

// New creates a Server around the given engine. tempDir may be empty to use
// the OS default; maxUploadMB bounds the multipart request size.
func New(engine *converter.Engine, logger logging.Logger, tempDir string, maxUploadMB int) *Server {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 25
	}
	return &Server{
		engine:    engine,
		logger:    logger,
		tempDir:   tempDir,
		maxUpload: int64(maxUploadMB) << 20,
	}
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleHealth)
	r.Get("/upload", s.handleUploadPage)
	r.Post("/convert", s.handleConvert)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleUploadPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, uploadPage)
}

// handleConvert accepts a multipart upload in the "file" field, converts it,
// and returns the converted CSV as an attachment. The temporary copy of the
// upload is removed before the handler returns.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	tempFile, err := os.CreateTemp(s.tempDir, "upload_*.csv")
	if err != nil {
		s.logger.WithError(err).Error("Failed to create temp file")
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	tempPath := tempFile.Name()
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			s.logger.WithError(err).Warn("Failed to remove temp file")
		}
	}()

	if _, err := io.Copy(tempFile, file); err != nil {
		_ = tempFile.Close()
		s.logger.WithError(err).Error("Failed to store upload")
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	if err := tempFile.Close(); err != nil {
		s.logger.WithError(err).Warn("Failed to close temp file")
	}

	rows, err := s.engine.ConvertFile(tempPath)
	if err != nil {
		s.logger.WithError(err).Error("Conversion failed",
			logging.Field{Key: "upload", Value: header.Filename})
		writeError(w, http.StatusUnprocessableEntity, "could not convert file")
		return
	}

	data, err := common.MarshalTemplateCSV(rows)
	if err != nil {
		s.logger.WithError(err).Error("Failed to render output CSV")
		writeError(w, http.StatusInternalServerError, "failed to render output")
		return
	}

	s.logger.Info("Converted upload",
		logging.Field{Key: "upload", Value: header.Filename},
		logging.Field{Key: "rows", Value: len(rows)})

	base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	if base == "" {
		base = "upload"
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s_converted.csv", base))
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
