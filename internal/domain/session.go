package domain

import (
	"context"
	"errors"
	"log/slog"

	"treesummary.dev/pkg/treesummary/internal/adapter"
	"treesummary.dev/pkg/treesummary/internal/controller"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

// Notices shown to the user.
const (
	FailureNotice       = "Analysis failed. Check the log for details and submit again."
	InFlightNotice      = "An analysis is already in progress."
	SettingsSavedNotice = "Settings saved."
	settingsFailNotice  = "Settings could not be saved."
)

// ErrNothingHeld is returned when dropping without a picked-up row.
var ErrNothingHeld = errors.New("nothing picked up")

// Session is the application state: the tree, the board, the active settings,
// the analysis client and the last results. It is mutated only through its
// methods, all from one goroutine.
type Session struct {
	tree   *FileTree
	board  *Board
	store  adapter.SettingsStore
	client *AnalysisClient

	config       m.AnalysisConfig
	drag         *m.DataTransfer
	settingsOpen bool
	results      *m.Document
	notice       string
}

// NewSession loads the settings from store and wires the parts together.
func NewSession(tree *FileTree, board *Board, store adapter.SettingsStore, client *AnalysisClient) *Session {
	return &Session{
		tree:   tree,
		board:  board,
		store:  store,
		client: client,
		config: store.Load(),
		drag:   m.NewDataTransfer(),
	}
}

// Tree returns the file tree.
func (s *Session) Tree() *FileTree {
	return s.tree
}

// Board returns the bucket board.
func (s *Session) Board() *Board {
	return s.board
}

// Rows returns the tree rows.
func (s *Session) Rows() []m.TreeRow {
	return s.tree.Rows()
}

// Buckets returns the state of every bucket.
func (s *Session) Buckets() []m.BucketState {
	return s.board.Buckets()
}

// Config returns a copy of the active settings.
func (s *Session) Config() m.AnalysisConfig {
	return s.config.Clone()
}

// PickUp starts dragging tree row index.
func (s *Session) PickUp(row int) error {
	s.drag.ClearData()

	return s.tree.StartDrag(row, s.drag)
}

// Held returns the path being dragged, "" when none.
func (s *Session) Held() m.Path {
	return m.Path(s.drag.GetData(m.PlainTextFormat))
}

// Accepts reports whether target takes drops.
func (s *Session) Accepts(target m.BucketID) bool {
	return s.board.DragOver(target)
}

// Release cancels the current drag.
func (s *Session) Release() {
	s.drag.ClearData()
}

// DropHeld drops the dragged path onto target and ends the drag.
func (s *Session) DropHeld(target m.BucketID) (m.BucketID, error) {
	if s.Held() == "" {
		return m.NoBucket, ErrNothingHeld
	}

	return s.Drop(target, s.drag)
}

// Drop adds the path carried by dt to target. The drag ends either way.
func (s *Session) Drop(target m.BucketID, dt *m.DataTransfer) (m.BucketID, error) {
	id, err := s.board.Drop(target, dt)
	if dt != nil {
		dt.ClearData()
	}

	return id, err
}

// CreateBucket appends an empty bucket.
func (s *Session) CreateBucket() m.BucketID {
	return s.board.CreateBucket()
}

// RemoveItem removes one item from a bucket.
func (s *Session) RemoveItem(id m.BucketID, index int) error {
	_, err := s.board.RemoveItem(id, index)
	return err
}

// RenameBucket renames a bucket.
func (s *Session) RenameBucket(id m.BucketID, name string) error {
	return s.board.RenameBucket(id, name)
}

// RemoveBucket deletes a bucket.
func (s *Session) RemoveBucket(id m.BucketID) error {
	return s.board.RemoveBucket(id)
}

// ScrollBucket scrolls an overflowing bucket.
func (s *Session) ScrollBucket(id m.BucketID, direction m.ScrollDirection) error {
	_, err := s.board.Scroll(id, direction)
	return err
}

// OpenSettings opens the settings editor with the active settings.
func (s *Session) OpenSettings() m.SettingsForm {
	s.settingsOpen = true

	return s.config.Form()
}

// CloseSettings closes the editor without saving.
func (s *Session) CloseSettings() {
	s.settingsOpen = false
}

// SettingsOpen reports whether the editor is open.
func (s *Session) SettingsOpen() bool {
	return s.settingsOpen
}

// SaveSettings parses form, persists it and closes the editor. The editor
// stays open when the store fails.
func (s *Session) SaveSettings(form m.SettingsForm) error {
	config := m.ParseSettingsForm(form)

	if err := s.store.Save(config); err != nil {
		s.notice = settingsFailNotice
		return err
	}

	s.config = config
	s.settingsOpen = false
	s.notice = SettingsSavedNotice

	return nil
}

// BeginAnalysis snapshots the board and settings. Previous results and
// notices are cleared.
func (s *Session) BeginAnalysis() (controller.AnalysisJob, error) {
	sub, err := s.client.Begin(s.board, s.config)
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) {
			s.notice = InFlightNotice
		}

		return nil, err
	}

	s.results = nil
	s.notice = ""

	return sub, nil
}

// FinishAnalysis records the outcome of a job started by BeginAnalysis.
func (s *Session) FinishAnalysis(resp m.AnalysisResponse, err error) {
	if err != nil {
		slog.Error("analysis did not complete", "error", err)

		s.notice = FailureNotice

		return
	}

	doc := RenderResults(resp)
	s.results = &doc
	s.notice = ""
}

// Submit runs a whole analysis synchronously and returns the rendered results.
func (s *Session) Submit(ctx context.Context) (m.Document, error) {
	job, err := s.BeginAnalysis()
	if err != nil {
		return m.Document{}, err
	}

	resp, err := job.Send(ctx)
	s.FinishAnalysis(resp, err)

	if err != nil {
		return m.Document{}, err
	}

	return *s.results, nil
}

// InFlight reports whether an analysis is outstanding.
func (s *Session) InFlight() bool {
	return s.client.InFlight()
}

// Results returns the last rendered results.
func (s *Session) Results() (m.Document, bool) {
	if s.results == nil {
		return m.Document{}, false
	}

	return *s.results, true
}

// Notice returns the current user-visible notice.
func (s *Session) Notice() string {
	return s.notice
}

var _ controller.Session = (*Session)(nil)
