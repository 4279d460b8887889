package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jmasdeu/ankigen/internal/extract"
	"github.com/jmasdeu/ankigen/internal/export"
	"github.com/jmasdeu/ankigen/internal/pipeline"
)

// handleGenerateCards accepts a multipart document upload, runs the pipeline
// on it and returns the suggested cards. The response is JSON by default, or
// CSV (same schema as the file output) when the client asks for text/csv.
func (s *Server) handleGenerateCards(w http.ResponseWriter, r *http.Request) {
	maxBytes := s.cfg.Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !extract.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s (supported: .pdf, .docx)", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	// The extraction libraries want a real file, so spool the upload to a
	// temp path with the original extension preserved.
	tmpPath, err := spoolUpload(file, filepath.Ext(filename), maxBytes)
	if err != nil {
		if errors.Is(err, errUploadTooLarge) {
			jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", maxBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmpPath)

	res, err := pipeline.Run(tmpPath, s.rules, s.log)
	if err != nil {
		jsonError(w, "extraction failed: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if wantsCSV(r) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := export.WriteRows(w, res.Cards); err != nil {
			s.log.Error("write csv response", "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     uuid.NewString(),
		"filename":   filename,
		"paragraphs": res.Paragraphs,
		"sentences":  res.Sentences,
		"sections":   res.Sections,
		"count":      len(res.Cards),
		"cards":      res.Cards,
	})
}

var errUploadTooLarge = errors.New("upload too large")

// spoolUpload copies the uploaded file to a temp path, enforcing the size cap.
func spoolUpload(file io.Reader, ext string, maxBytes int64) (string, error) {
	tmp, err := os.CreateTemp("", "ankigen-upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, io.LimitReader(file, maxBytes+1))
	tmp.Close()
	if err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if n > maxBytes {
		os.Remove(tmpPath)
		return "", errUploadTooLarge
	}
	return tmpPath, nil
}

func wantsCSV(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/csv")
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
