package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmasdeu/ankigen/internal/cards"
	"github.com/jmasdeu/ankigen/internal/config"
)

func testServer(t *testing.T, apiKey string) *Server {
	t.Helper()

	cfg := config.Config{
		OutputPath: "output/suggested_cards.csv",
		Log:        config.LogConfig{Level: "info", Format: "text"},
		Server: config.ServerConfig{
			Port:           8070,
			APIKey:         apiKey,
			MaxUploadBytes: 1 << 20,
		},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(cards.DefaultRules(), log, cfg)
}

// docxBytes builds an in-memory .docx with one paragraph per line.
func docxBytes(t *testing.T, lines []string) []byte {
	t.Helper()

	w := docx.New().WithDefaultTheme()
	for _, line := range lines {
		w.AddParagraph().AddText(line)
	}

	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func studyNotes() []string {
	return []string{
		"2.1. Fotosíntesi",
		"La fotosíntesi és el procés pel qual les plantes converteixen llum en energia química.",
	}
}

func TestHealth(t *testing.T) {
	s := testServer(t, "")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateCards_JSON(t *testing.T) {
	s := testServer(t, "")
	body, contentType := multipartUpload(t, "apunts.docx", docxBytes(t, studyNotes()))

	req := httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		JobID    string       `json:"job_id"`
		Filename string       `json:"filename"`
		Count    int          `json:"count"`
		Sections int          `json:"sections"`
		Cards    []cards.Card `json:"cards"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "apunts.docx", resp.Filename)
	assert.Equal(t, 1, resp.Sections)
	require.Equal(t, 2, resp.Count)
	require.Len(t, resp.Cards, 2)
	assert.Equal(t, cards.TypeBasic, resp.Cards[0].Type)
	assert.Equal(t, "2.1 Fotosíntesi", resp.Cards[0].Section)
	assert.Equal(t, cards.TypeCloze, resp.Cards[1].Type)
	assert.Contains(t, resp.Cards[1].Front, "{{c1::converteixen}}")
}

func TestGenerateCards_CSVResponse(t *testing.T) {
	s := testServer(t, "")
	body, contentType := multipartUpload(t, "apunts.docx", docxBytes(t, studyNotes()))

	req := httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "text/csv")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "type,front,back,section,approved", lines[0])
}

func TestGenerateCards_MissingFile(t *testing.T) {
	s := testServer(t, "")

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/cards", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateCards_UnsupportedExtension(t *testing.T) {
	s := testServer(t, "")
	body, contentType := multipartUpload(t, "apunts.txt", []byte("text pla"))

	req := httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestGenerateCards_AuthRequired(t *testing.T) {
	s := testServer(t, "secret-key")
	body, contentType := multipartUpload(t, "apunts.docx", docxBytes(t, studyNotes()))

	req := httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body, contentType = multipartUpload(t, "apunts.docx", docxBytes(t, studyNotes()))
	req = httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer secret-key")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestGenerateCards_UploadTooLarge(t *testing.T) {
	s := testServer(t, "")
	s.cfg.Server.MaxUploadBytes = 16

	body, contentType := multipartUpload(t, "apunts.docx", bytes.Repeat([]byte("x"), 64))

	req := httptest.NewRequest(http.MethodPost, "/api/cards", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
