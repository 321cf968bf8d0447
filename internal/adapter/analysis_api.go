package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

const (
	// AnalyzeEndpoint is the path the analysis request is posted to.
	AnalyzeEndpoint = "/analyze"
	// RequestIDHeader carries the submission id.
	RequestIDHeader = "X-Request-ID"

	defaultAnalysisTimeout = 15 * time.Minute
	maxErrorBodyBytes      = 2048
)

var (
	// ErrTransport wraps failures to reach the analysis service.
	ErrTransport = errors.New("analysis service unreachable")
	// ErrMalformedResponse wraps bodies that are not a valid response.
	ErrMalformedResponse = errors.New("malformed analysis response")
)

// StatusError is returned when the service answers with a non-success status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("analysis service returned %d: %s", e.StatusCode, e.Body)
}

// AnalysisAPI posts analysis requests to the remote service.
type AnalysisAPI interface {
	Analyze(ctx context.Context, requestID string, request m.AnalysisRequest) (m.AnalysisResponse, error)
}

// HTTPAnalysisAPI talks to the analysis service over HTTP.
type HTTPAnalysisAPI struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPAnalysisAPI creates a client for the service at baseURL. A zero
// timeout selects the default.
func NewHTTPAnalysisAPI(baseURL string, timeout time.Duration) *HTTPAnalysisAPI {
	if timeout <= 0 {
		timeout = defaultAnalysisTimeout
	}

	return &HTTPAnalysisAPI{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze sends one request. It does not retry.
func (a *HTTPAnalysisAPI) Analyze(ctx context.Context, requestID string, request m.AnalysisRequest) (m.AnalysisResponse, error) {
	var result m.AnalysisResponse

	body, err := json.Marshal(request)
	if err != nil {
		return result, fmt.Errorf("encode analysis request: %w", err)
	}

	url := a.baseURL + AnalyzeEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("build analysis request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	slog.Debug("posting analysis request", "url", url, "request_id", requestID, "buckets", len(request.Buckets))

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return result, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(excerpt)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return m.AnalysisResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return result, nil
}
