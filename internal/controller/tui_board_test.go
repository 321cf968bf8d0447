package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

type fakeJob struct {
	id   string
	resp m.AnalysisResponse
	err  error
}

func (j fakeJob) RequestID() string { return j.id }

func (j fakeJob) Send(_ context.Context) (m.AnalysisResponse, error) {
	return j.resp, j.err
}

type fakeSession struct {
	rows     []m.TreeRow
	buckets  []m.BucketState
	held     m.Path
	form     m.SettingsForm
	saved    []m.SettingsForm
	saveErr  error
	open     bool
	inFlight bool
	job      AnalysisJob
	beginErr error
	finished []error
	results  *m.Document
	notice   string
	removed  []int
	scrolled []m.ScrollDirection
	renamed  []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		rows: []m.TreeRow{
			{Name: "project", FullPath: "project", IsDir: true},
			{Name: "App.js", FullPath: "project/App.js", Depth: 1},
			{Name: "index.html", FullPath: "project/index.html", Depth: 1},
		},
	}
}

func (f *fakeSession) Rows() []m.TreeRow { return f.rows }
func (f *fakeSession) Buckets() []m.BucketState { return f.buckets }
func (f *fakeSession) Config() m.AnalysisConfig { return m.DefaultAnalysisConfig() }
func (f *fakeSession) Held() m.Path { return f.held }
func (f *fakeSession) Accepts(_ m.BucketID) bool { return true }
func (f *fakeSession) Release() { f.held = "" }
func (f *fakeSession) CloseSettings() { f.open = false }
func (f *fakeSession) SettingsOpen() bool { return f.open }
func (f *fakeSession) InFlight() bool { return f.inFlight }
func (f *fakeSession) Notice() string { return f.notice }

func (f *fakeSession) OpenSettings() m.SettingsForm {
	f.open = true
	return f.form
}

func (f *fakeSession) PickUp(row int) error {
	if row < 0 || row >= len(f.rows) || f.rows[row].IsDir {
		return errors.New("not a file")
	}

	f.held = f.rows[row].FullPath

	return nil
}

func (f *fakeSession) DropHeld(target m.BucketID) (m.BucketID, error) {
	if f.held == "" {
		return m.NoBucket, errors.New("nothing held")
	}

	if target == m.NoBucket {
		target = f.CreateBucket()
	}

	for i := range f.buckets {
		if f.buckets[i].ID == target {
			f.buckets[i].Items = append(f.buckets[i].Items, f.held)
		}
	}

	f.held = ""

	return target, nil
}

func (f *fakeSession) CreateBucket() m.BucketID {
	id := m.BucketID(len(f.buckets) + 1)
	f.buckets = append(f.buckets, m.BucketState{ID: id, Name: m.DefaultBucketName, PageSize: 10})

	return id
}

func (f *fakeSession) RemoveItem(_ m.BucketID, index int) error {
	f.removed = append(f.removed, index)
	return nil
}

func (f *fakeSession) RenameBucket(_ m.BucketID, name string) error {
	f.renamed = append(f.renamed, name)
	return nil
}

func (f *fakeSession) RemoveBucket(id m.BucketID) error {
	for i := range f.buckets {
		if f.buckets[i].ID == id {
			f.buckets = append(f.buckets[:i], f.buckets[i+1:]...)
			return nil
		}
	}

	return errors.New("no such bucket")
}

func (f *fakeSession) ScrollBucket(_ m.BucketID, direction m.ScrollDirection) error {
	f.scrolled = append(f.scrolled, direction)
	return nil
}

func (f *fakeSession) SaveSettings(form m.SettingsForm) error {
	f.saved = append(f.saved, form)
	if f.saveErr != nil {
		f.notice = "Failed to save settings"
		return f.saveErr
	}

	f.open = false
	f.notice = "Settings saved"

	return nil
}

func (f *fakeSession) BeginAnalysis() (AnalysisJob, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}

	f.inFlight = true

	return f.job, nil
}

func (f *fakeSession) FinishAnalysis(_ m.AnalysisResponse, err error) {
	f.inFlight = false
	f.finished = append(f.finished, err)

	if err != nil {
		f.notice = "Analysis failed"
	}
}

func (f *fakeSession) Results() (m.Document, bool) {
	if f.results == nil {
		return m.Document{}, false
	}

	return *f.results, true
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, b *boardModel, msgs ...tea.Msg) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = b.Update(msg)
	}

	return cmd
}

func TestBoardModel_DragFromTreeToBoard(t *testing.T) {
	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Equal(t, m.Path("project/App.js"), session.held)
	assert.Equal(t, paneBoard, b.focus)

	press(t, b, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, session.buckets, 1)
	assert.Equal(t, []m.Path{"project/App.js"}, session.buckets[0].Items)
	assert.Equal(t, "Dropped into New Bucket", b.status)
	assert.Equal(t, boardSlot{bucket: 1, item: -1}, b.currentSlot())
}

func TestBoardModel_PickUpDirectoryFails(t *testing.T) {
	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Empty(t, session.held)
	assert.Equal(t, paneTree, b.focus)
	assert.Equal(t, "not a file", b.status)
}

func TestBoardModel_EscReleasesHeldPath(t *testing.T) {
	session := newFakeSession()
	session.held = "project/App.js"
	b := newBoardModel(context.Background(), session)

	press(t, b, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, session.held)
	assert.Equal(t, "Drag cancelled", b.status)
}

func TestBoardModel_CreateAndRenameBucket(t *testing.T) {
	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("n"), runes("n"))
	require.Len(t, session.buckets, 2)
	assert.Equal(t, boardSlot{bucket: 2, item: -1}, b.currentSlot())

	press(t, b, runes("r"))
	assert.Equal(t, modeRename, b.mode)

	press(t, b, runes("!"), runes("q"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, b.mode)
	assert.Equal(t, []string{m.DefaultBucketName + "!q"}, session.renamed)
}

func TestBoardModel_RenameEscKeepsName(t *testing.T) {
	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("n"), runes("r"), runes("x"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeBrowse, b.mode)
	assert.Empty(t, session.renamed)
}

func TestBoardModel_RemoveItemUsesScrollOffset(t *testing.T) {
	items := make([]m.Path, 25)
	for i := range items {
		items[i] = m.Path(fmt.Sprintf("f%02d.js", i))
	}

	session := newFakeSession()
	session.buckets = []m.BucketState{{
		ID:         1,
		Name:       "Big",
		Items:      items,
		Phase:      m.PhaseOverflowing,
		Scrollable: true,
		Offset:     10,
		PageSize:   10,
		Controls:   []m.ScrollDirection{m.ScrollBack, m.ScrollForward},
	}}
	b := newBoardModel(context.Background(), session)
	b.focus = paneBoard

	press(t, b, tea.KeyMsg{Type: tea.KeyDown}, runes("x"))

	assert.Equal(t, []int{10}, session.removed)
	assert.Equal(t, "Item removed", b.status)
	assert.Contains(t, b.View(), "◀ 11-20 of 25 ▶")
}

func TestBoardModel_ScrollAndDeleteBucket(t *testing.T) {
	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("n"), tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, []m.ScrollDirection{m.ScrollForward, m.ScrollBack}, session.scrolled)

	press(t, b, runes("D"))
	assert.Empty(t, session.buckets)
	assert.Equal(t, "Bucket deleted", b.status)
}

func TestBoardModel_SettingsEditor(t *testing.T) {
	session := newFakeSession()
	session.form = m.DefaultAnalysisConfig().Form()
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("s"))
	require.Equal(t, modeSettings, b.mode)
	assert.True(t, session.open)
	assert.Equal(t, "js,py,html,css", b.fields[fieldExtensions].Value())

	press(t, b, runes(",go"))
	press(t, b,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	require.Len(t, session.saved, 1)
	assert.Equal(t, "js,py,html,css,go", session.saved[0].FileExtensions)
	assert.Equal(t, "node_modules,dist", session.saved[0].IgnorePaths)
	assert.Equal(t, "10", session.saved[0].SupersummaryInterval)
	assert.False(t, session.saved[0].GenerateFinalSummary)
	assert.True(t, session.saved[0].GenerateModernisationSummary)
	assert.Equal(t, modeBrowse, b.mode)
	assert.Equal(t, "Settings saved", b.status)
}

func TestBoardModel_SettingsSaveFailureKeepsEditor(t *testing.T) {
	session := newFakeSession()
	session.saveErr = errors.New("disk full")
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("s"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeSettings, b.mode)
	assert.Equal(t, "Failed to save settings", b.status)

	press(t, b, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, b.mode)
	assert.False(t, session.open)
}

func TestBoardModel_Analysis(t *testing.T) {
	t.Run("success shows results", func(t *testing.T) {
		session := newFakeSession()
		session.job = fakeJob{id: "req-1"}
		b := newBoardModel(context.Background(), session)

		cmd := press(t, b, runes("a"))
		require.NotNil(t, cmd)
		assert.True(t, session.inFlight)
		assert.Contains(t, b.View(), "Analyzing...")

		msg := runAnalysis(context.Background(), session.job)()
		session.results = &m.Document{Title: "Analysis Results", Sections: []m.Section{{Level: 2, Title: "UI"}}}

		press(t, b, msg)

		require.Len(t, session.finished, 1)
		assert.NoError(t, session.finished[0])
		assert.Equal(t, modeResults, b.mode)
		assert.Contains(t, b.View(), "UI")

		press(t, b, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, modeBrowse, b.mode)
	})

	t.Run("failure shows notice", func(t *testing.T) {
		session := newFakeSession()
		session.job = fakeJob{id: "req-1", err: errors.New("boom")}
		b := newBoardModel(context.Background(), session)

		press(t, b, runes("a"))
		press(t, b, runAnalysis(context.Background(), session.job)())

		assert.Equal(t, modeBrowse, b.mode)
		assert.Equal(t, "Analysis failed", b.status)
	})

	t.Run("rejected while in flight", func(t *testing.T) {
		session := newFakeSession()
		session.beginErr = errors.New("in flight")
		session.notice = "An analysis is already running."
		b := newBoardModel(context.Background(), session)

		cmd := press(t, b, runes("a"))

		assert.Nil(t, cmd)
		assert.Equal(t, "An analysis is already running.", b.status)
	})
}

func TestBoardModel_AnalysisFinishingDuringEdits(t *testing.T) {
	results := &m.Document{Title: "Analysis Results", Sections: []m.Section{{Level: 2, Title: "UI"}}}

	t.Run("settings editor keeps its input", func(t *testing.T) {
		session := newFakeSession()
		session.job = fakeJob{id: "req-1"}
		session.form = m.DefaultAnalysisConfig().Form()
		b := newBoardModel(context.Background(), session)

		press(t, b, runes("a"), runes("s"), runes(",go"))

		msg := runAnalysis(context.Background(), session.job)()
		session.results = results
		press(t, b, msg)

		assert.Equal(t, modeSettings, b.mode)
		assert.True(t, session.open)
		assert.Equal(t, "js,py,html,css,go", b.fields[fieldExtensions].Value())
		assert.Equal(t, ResultsReadyStatus, b.status)

		press(t, b, tea.KeyMsg{Type: tea.KeyEsc})
		assert.Equal(t, modeBrowse, b.mode)
		assert.False(t, session.open)

		press(t, b, runes("v"))
		assert.Equal(t, modeResults, b.mode)
	})

	t.Run("rename keeps its input", func(t *testing.T) {
		session := newFakeSession()
		session.job = fakeJob{id: "req-1"}
		b := newBoardModel(context.Background(), session)

		press(t, b, runes("n"), runes("a"), runes("r"), runes("!"))

		msg := runAnalysis(context.Background(), session.job)()
		session.results = results
		press(t, b, msg)

		assert.Equal(t, modeRename, b.mode)
		assert.Equal(t, ResultsReadyStatus, b.status)

		press(t, b, tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, []string{m.DefaultBucketName + "!"}, session.renamed)
	})
}

func TestBoardModel_StaleAnalysisCompletionIgnored(t *testing.T) {
	session := newFakeSession()
	first := fakeJob{id: "req-1"}
	session.job = first
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("a"))
	stale := runAnalysis(context.Background(), first)()

	// The first job released the guard before its completion was delivered.
	session.inFlight = false
	session.job = fakeJob{id: "req-2"}
	press(t, b, runes("a"))
	require.Equal(t, "req-2", b.pending)

	session.results = &m.Document{Title: "Analysis Results"}
	press(t, b, stale)

	assert.Empty(t, session.finished)
	assert.Equal(t, modeBrowse, b.mode)
	assert.True(t, session.inFlight)

	press(t, b, runAnalysis(context.Background(), session.job)())

	require.Len(t, session.finished, 1)
	assert.Equal(t, modeResults, b.mode)
	assert.Empty(t, b.pending)
}

func TestBoardModel_CopyResults(t *testing.T) {
	var copied string

	original := clipboardWrite
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}

	t.Cleanup(func() { clipboardWrite = original })

	session := newFakeSession()
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("y"))
	assert.Equal(t, "No results yet", b.status)

	session.results = &m.Document{Title: "Analysis Results"}
	press(t, b, runes("y"))

	assert.Equal(t, "# Analysis Results\n\n", copied)
	assert.Equal(t, "Results copied to clipboard", b.status)
}

func TestBoardModel_CopyResultsClipboardError(t *testing.T) {
	original := clipboardWrite
	clipboardWrite = func(string) error { return errors.New("no clipboard") }

	t.Cleanup(func() { clipboardWrite = original })

	session := newFakeSession()
	session.results = &m.Document{Title: "Analysis Results"}
	b := newBoardModel(context.Background(), session)

	press(t, b, runes("y"))

	assert.Equal(t, "Clipboard unavailable", b.status)
}

func TestBoardModel_Quit(t *testing.T) {
	b := newBoardModel(context.Background(), newFakeSession())

	cmd := press(t, b, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBoardModel_ViewListsTreeAndBuckets(t *testing.T) {
	session := newFakeSession()
	session.buckets = []m.BucketState{{ID: 1, Name: "Frontend", Items: []m.Path{"project/App.js"}, PageSize: 10}}
	b := newBoardModel(context.Background(), session)

	view := b.View()

	assert.Contains(t, view, "project/")
	assert.Contains(t, view, "index.html")
	assert.Contains(t, view, "Frontend (1)")
	assert.Contains(t, view, "project/App.js")
	assert.Contains(t, view, "drop here for a new bucket")
}

func TestWindow(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5"}

	assert.Equal(t, lines, window(lines, 0, 10))
	assert.Equal(t, []string{"0", "1", "2"}, window(lines, 0, 3))
	assert.Equal(t, []string{"2", "3", "4"}, window(lines, 3, 3))
	assert.Equal(t, []string{"3", "4", "5"}, window(lines, 5, 3))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(-1, 3))
	assert.Equal(t, 2, clampIndex(7, 3))
	assert.Equal(t, 0, clampIndex(4, 0))
}
