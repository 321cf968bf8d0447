package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"treesummary.dev/pkg/treesummary/internal/adapter"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

var (
	// ErrSubmissionInFlight is returned when a submission is already outstanding.
	ErrSubmissionInFlight = errors.New("an analysis is already in progress")
	// ErrSubmissionSent is returned when a submission is sent twice.
	ErrSubmissionSent = errors.New("submission already sent")
)

// SubmissionErrorKind classifies a failed submission.
type SubmissionErrorKind int

// Failure kinds.
const (
	FailureTransport SubmissionErrorKind = iota
	FailureStatus
	FailureDecode
	FailureOther
)

func (k SubmissionErrorKind) String() string {
	switch k {
	case FailureTransport:
		return "transport"
	case FailureStatus:
		return "status"
	case FailureDecode:
		return "decode"
	default:
		return "other"
	}
}

// SubmissionError is a terminal failure of one submission.
type SubmissionError struct {
	Kind      SubmissionErrorKind
	RequestID string
	Err       error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("analysis %s failed (%s): %v", e.RequestID, e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// AnalysisClient packages the board and settings into requests and allows
// one outstanding submission at a time.
type AnalysisClient struct {
	api      adapter.AnalysisAPI
	inFlight atomic.Bool
	newID    func() string
}

// NewAnalysisClient creates a client posting through api.
func NewAnalysisClient(api adapter.AnalysisAPI) *AnalysisClient {
	return &AnalysisClient{
		api:   api,
		newID: uuid.NewString,
	}
}

// InFlight reports whether a submission is outstanding.
func (c *AnalysisClient) InFlight() bool {
	return c.inFlight.Load()
}

// Begin snapshots board and config into a submission and marks it in flight.
// It must be called from the goroutine that owns the board.
func (c *AnalysisClient) Begin(board *Board, config m.AnalysisConfig) (*Submission, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}

	sub := &Submission{
		ID: c.newID(),
		Request: m.AnalysisRequest{
			Buckets:  board.Snapshot(),
			Settings: config.Clone(),
		},
		client: c,
	}

	slog.Info("analysis submitted", "request_id", sub.ID, "buckets", len(sub.Request.Buckets), "files", board.ItemCount())

	return sub, nil
}

// Submit begins a submission and sends it.
func (c *AnalysisClient) Submit(ctx context.Context, board *Board, config m.AnalysisConfig) (m.AnalysisResponse, error) {
	sub, err := c.Begin(board, config)
	if err != nil {
		return m.AnalysisResponse{}, err
	}

	return sub.Send(ctx)
}

// Submission is one request snapshot awaiting its response.
type Submission struct {
	ID      string
	Request m.AnalysisRequest

	client *AnalysisClient
	sent   atomic.Bool
}

// RequestID identifies the submission in logs and on the wire.
func (s *Submission) RequestID() string {
	return s.ID
}

// Send posts the request and releases the in-flight guard when done. It only
// reads the snapshot, so it may run on any goroutine.
func (s *Submission) Send(ctx context.Context) (m.AnalysisResponse, error) {
	if !s.sent.CompareAndSwap(false, true) {
		return m.AnalysisResponse{}, ErrSubmissionSent
	}
	defer s.client.inFlight.Store(false)

	resp, err := s.client.api.Analyze(ctx, s.ID, s.Request)
	if err != nil {
		subErr := &SubmissionError{Kind: classifyFailure(err), RequestID: s.ID, Err: err}
		slog.Error("analysis failed", "request_id", s.ID, "kind", subErr.Kind.String(), "error", err)

		return m.AnalysisResponse{}, subErr
	}

	slog.Info("analysis completed", "request_id", s.ID, "buckets", len(resp.Buckets))

	return resp, nil
}

func classifyFailure(err error) SubmissionErrorKind {
	var statusErr *adapter.StatusError

	switch {
	case errors.As(err, &statusErr):
		return FailureStatus
	case errors.Is(err, adapter.ErrMalformedResponse):
		return FailureDecode
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return FailureTransport
	default:
		return FailureOther
	}
}
