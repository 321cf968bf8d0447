// Package controller provides the user interfaces of treesummary: a plain
// text output for pipes and a Bubble Tea board for terminals.
package controller

import (
	"context"
	"errors"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// ErrNotInteractive is returned by UIs that cannot run the interactive board.
var ErrNotInteractive = errors.New("the interactive board needs a terminal")

// AnalysisJob is a submitted analysis waiting to be sent.
type AnalysisJob interface {
	RequestID() string
	Send(ctx context.Context) (m.AnalysisResponse, error)
}

// Session is the application state driven by the interactive board. All
// methods except AnalysisJob.Send must be called from the UI event loop.
//
//nolint:interfacebloat // the board exposes the whole operation set.
type Session interface {
	Rows() []m.TreeRow
	Buckets() []m.BucketState
	Config() m.AnalysisConfig

	PickUp(row int) error
	Held() m.Path
	Accepts(target m.BucketID) bool
	Release()
	DropHeld(target m.BucketID) (m.BucketID, error)

	CreateBucket() m.BucketID
	RemoveItem(id m.BucketID, index int) error
	RenameBucket(id m.BucketID, name string) error
	RemoveBucket(id m.BucketID) error
	ScrollBucket(id m.BucketID, direction m.ScrollDirection) error

	OpenSettings() m.SettingsForm
	CloseSettings()
	SettingsOpen() bool
	SaveSettings(form m.SettingsForm) error

	BeginAnalysis() (AnalysisJob, error)
	FinishAnalysis(resp m.AnalysisResponse, err error)
	InFlight() bool
	Results() (m.Document, bool)
	Notice() string
}

// UI defines how workflows present their output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayTree(ctx context.Context, rows []m.TreeRow) error
	DisplayBoard(ctx context.Context, buckets []m.BucketState) error
	DisplayProgress(ctx context.Context, message string)
	DisplayNotice(ctx context.Context, notice string)
	DisplayResults(ctx context.Context, doc m.Document) error
	DisplaySettings(ctx context.Context, config m.AnalysisConfig, diff string) error
	// Interact runs the interactive board until the user quits.
	Interact(ctx context.Context, session Session) error
}
