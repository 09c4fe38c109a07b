package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/judgest/internal/parser"
	"github.com/dgallion1/judgest/internal/pipeline"
	"github.com/dgallion1/judgest/internal/render"
)

// upload is a validated file from a multipart request.
type upload struct {
	filename   string
	data       []byte
	format     string
	hideHeader bool
}

// readUpload parses the multipart form and reads the "file" field. It
// writes the error response itself and returns false on failure.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (*upload, bool) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	defer file.Close()

	up, status, err := s.readPart(file, header.Filename)
	if err != nil {
		jsonError(w, err.Error(), status)
		return nil, false
	}

	up.format, err = s.formatParam(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	up.hideHeader = hideHeaderParam(r)
	return up, true
}

// readPart validates the filename and reads at most MaxUploadBytes.
func (s *Server) readPart(file multipart.File, name string) (*upload, int, error) {
	filename := sanitizeFilename(name)
	if !parser.IsSupportedExtension(filename) {
		return nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}
	return &upload{filename: filename, data: data}, 0, nil
}

func (s *Server) formatParam(r *http.Request) (string, error) {
	format := strings.ToLower(r.FormValue("format"))
	if format == "" {
		format = s.cfg.DefaultFormat
	}
	if _, err := render.ForFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

// hideHeaderParam reads the optional "header" form value; "false" or "0"
// hides the judgment header.
func hideHeaderParam(r *http.Request) bool {
	v := r.FormValue("header")
	if v == "" {
		return false
	}
	show, err := strconv.ParseBool(v)
	return err == nil && !show
}

// handleConvert converts an upload synchronously and returns the rendered
// document as an attachment.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	defer cleanupForm(r)
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts := s.orchestrator.Options()
	opts.HideHeader = opts.HideHeader || up.hideHeader

	start := time.Now()
	res, err := pipeline.Convert(up.data, up.filename, up.format, opts, nil)
	if err != nil {
		s.log.Warn("conversion failed", "filename", up.filename, "error", err)
		s.orchestrator.Stats().Fail(up.format)
		jsonError(w, err.Error(), convertStatus(err))
		return
	}
	s.orchestrator.Stats().Record(up.format, time.Since(start).Milliseconds())

	pkg := res.Package
	w.Header().Set("Content-Type", pkg.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pkg.Filename))
	w.Write(pkg.Data)
}

// handleParse returns the structural parse of an upload as JSON.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	defer cleanupForm(r)
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts := s.orchestrator.Options()
	opts.HideHeader = opts.HideHeader || up.hideHeader

	res, err := pipeline.Convert(up.data, up.filename, "json", opts, nil)
	if err != nil {
		jsonError(w, err.Error(), convertStatus(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res.Judgment)
}

func cleanupForm(r *http.Request) {
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll()
	}
}

// convertStatus maps a conversion error to an HTTP status.
func convertStatus(err error) int {
	if errors.Is(err, parser.ErrNoText) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
