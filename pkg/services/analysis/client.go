package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/fin-tools/finhealth/pkg/adapters"
	"github.com/fin-tools/finhealth/pkg/models/api"
	"github.com/fin-tools/finhealth/pkg/models/domain"
)

// ServerError is a non-success response whose body carried a structured
// `detail` message. The detail is shown to the user verbatim.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the analysis backend. The base URL is fixed at
// construction and reused for every call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("client", "analysis").Logger(),
	}
}

// Upload submits a financial document for analysis as a multipart form
// carrying the file, the display language, and the selected industry.
func (c *Client) Upload(
	ctx context.Context,
	path string,
	language domain.Language,
	industry string,
) (domain.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return domain.Result{}, fmt.Errorf("failed to copy document data: %w", err)
	}
	if err := writer.WriteField("language", string(language)); err != nil {
		return domain.Result{}, fmt.Errorf("failed to write language field: %w", err)
	}
	if err := writer.WriteField("industry", industry); err != nil {
		return domain.Result{}, fmt.Errorf("failed to write industry field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.Result{}, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.log.Debug().Str("file", filepath.Base(path)).Str("industry", industry).Msg("uploading document")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Result{}, newServerError(resp, "Upload failed")
	}

	var result api.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Result{}, fmt.Errorf("failed to decode analysis result: %w", err)
	}
	return adapters.MapAnalysisResultApiToDomain(result), nil
}

// Ask sends one chat message and returns the assistant's answer. An
// empty answer is returned as-is; callers substitute their fallback.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(api.ChatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", newServerError(resp, "Chat failed")
	}

	var chatResp api.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	return chatResp.Answer, nil
}

// ReportURL derives the viewing URL for a generated investor report.
func (c *Client) ReportURL(reportID string) string {
	return fmt.Sprintf("%s/report/%s", c.baseURL, reportID)
}

func newServerError(resp *http.Response, fallback string) *ServerError {
	detail := fallback
	var errBody api.Error
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Detail != "" {
		detail = errBody.Detail
	}
	return &ServerError{StatusCode: resp.StatusCode, Detail: detail}
}
