package demo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/fin-tools/finhealth/pkg/models/api"
)

// Handler serves canned analysis fixtures so the client can be
// exercised without the real backend. It implements the same contract:
// multipart upload, chat, and report download, including the structured
// `detail` error body.
type Handler struct {
	fixture api.AnalysisResult
}

func NewHandler() *Handler {
	return &Handler{fixture: Fixture()}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed upload request.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "No file uploaded.")
		return
	}
	defer file.Close()

	if !allowedUpload(header.Filename) {
		writeDetail(w, http.StatusBadRequest, "Unsupported file type. Please upload a CSV, XLSX, or PDF file.")
		return
	}

	logger.Info().
		Str("file", header.Filename).
		Str("language", r.FormValue("language")).
		Str("industry", r.FormValue("industry")).
		Msg("serving canned analysis")

	writeJSON(w, logger, h.fixture)
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed chat request.")
		return
	}

	answer := fmt.Sprintf(
		"Based on the demo dataset, your health score is %d (%s revenue trend). You asked: %q.",
		h.fixture.Score, "upward", req.Message,
	)
	writeJSON(w, logger, api.ChatResponse{Answer: answer})
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")
	if reportID != h.fixture.ReportID {
		writeDetail(w, http.StatusNotFound, "Report not found.")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "FinHealth Investor Report %s\n\nScore: %d\n%s\n",
		reportID, h.fixture.Score, h.fixture.AIInsights)
}

func allowedUpload(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".csv") ||
		strings.HasSuffix(lower, ".xlsx") ||
		strings.HasSuffix(lower, ".pdf")
}

func writeJSON(w http.ResponseWriter, logger *zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Detail: detail})
}
