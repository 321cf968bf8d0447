package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"treesummary.dev/pkg/treesummary/internal/adapter"
	adaptermocks "treesummary.dev/pkg/treesummary/internal/adapter/mocks"
	"treesummary.dev/pkg/treesummary/internal/controller"
	controllermocks "treesummary.dev/pkg/treesummary/internal/controller/mocks"
	domain "treesummary.dev/pkg/treesummary/internal/domain"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

type workflowMocks struct {
	fs       *adaptermocks.MockSourceFSAdapter
	settings *adaptermocks.MockSettingsStore
	reports  *adaptermocks.MockReportStore
	plans    *adaptermocks.MockPlanStore
	api      *adaptermocks.MockAnalysisAPI
	ui       *controllermocks.MockUI
}

func newWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		fs:       adaptermocks.NewMockSourceFSAdapter(t),
		settings: adaptermocks.NewMockSettingsStore(t),
		reports:  adaptermocks.NewMockReportStore(t),
		plans:    adaptermocks.NewMockPlanStore(t),
		api:      adaptermocks.NewMockAnalysisAPI(t),
		ui:       controllermocks.NewMockUI(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.settings, mocks.reports, mocks.plans, mocks.api, mocks.ui)

	return wf, mocks
}

func TestWorkflow_Tree_Demo(t *testing.T) {
	wf, mocks := newWorkflow(t)

	mocks.ui.EXPECT().DisplayTree(mock.Anything, mock.MatchedBy(func(rows []m.TreeRow) bool {
		return len(rows) == 14 && rows[0].FullPath == "project"
	})).Return(nil).Once()

	require.NoError(t, wf.Tree(context.Background(), domain.TreeArgs{Demo: true}))
}

func TestWorkflow_Tree_ScansRootsWithSettings(t *testing.T) {
	wf, mocks := newWorkflow(t)

	config := m.DefaultAnalysisConfig()
	config.FileExtensions = []string{"go"}
	opts := adapter.NamespaceOptions{IgnorePaths: config.IgnorePaths, Extensions: config.FileExtensions}

	mocks.settings.EXPECT().Load().Return(config).Once()
	mocks.fs.EXPECT().Namespace(mock.Anything, m.Path("cmd"), opts).
		Return(m.NewDirNode("cmd", m.NewFileNode("root.go", "cmd/root.go")), nil).Once()
	mocks.fs.EXPECT().Namespace(mock.Anything, m.Path("internal"), opts).
		Return(m.NewDirNode("internal", m.NewFileNode("x.go", "internal/x.go")), nil).Once()

	mocks.ui.EXPECT().DisplayTree(mock.Anything, []m.TreeRow{
		{Name: "cmd", FullPath: "cmd", IsDir: true},
		{Name: "root.go", FullPath: "cmd/root.go", Depth: 1},
		{Name: "internal", FullPath: "internal", IsDir: true},
		{Name: "x.go", FullPath: "internal/x.go", Depth: 1},
	}).Return(nil).Once()

	err := wf.Tree(context.Background(), domain.TreeArgs{Roots: []m.Path{"cmd", "internal"}, Parallel: 2})
	require.NoError(t, err)
}

func TestWorkflow_Tree_ScanError(t *testing.T) {
	wf, mocks := newWorkflow(t)

	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.fs.EXPECT().Namespace(mock.Anything, m.Path("."), mock.Anything).
		Return(m.PathNode{}, errors.New("permission denied")).Once()

	err := wf.Tree(context.Background(), domain.TreeArgs{})
	assert.ErrorContains(t, err, "permission denied")
}

func TestWorkflow_Board_RunsInteractiveSession(t *testing.T) {
	wf, mocks := newWorkflow(t)

	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.ui.EXPECT().Interact(mock.Anything, mock.Anything).
		Run(func(_ context.Context, session controller.Session) {
			assert.Len(t, session.Rows(), 14)
			assert.Empty(t, session.Buckets())
		}).
		Return(nil).Once()

	require.NoError(t, wf.Board(context.Background(), domain.BoardArgs{TreeArgs: domain.TreeArgs{Demo: true}}))
}

func TestWorkflow_Analyze(t *testing.T) {
	wf, mocks := newWorkflow(t)

	plan := m.Plan{Buckets: []m.PlanBucket{
		{Name: "UI", Files: []string{"project/src/App.js"}},
		{Name: "Docs", Files: []string{"project/README.md"}},
	}}

	mocks.plans.EXPECT().LoadPlan(m.Path("plan.yaml")).Return(plan, nil).Once()
	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.ui.EXPECT().DisplayBoard(mock.Anything, mock.MatchedBy(func(buckets []m.BucketState) bool {
		return len(buckets) == 2 && buckets[0].Name == "UI"
	})).Return(nil).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, "Analyzing 2 file(s) in 2 bucket(s)...").Once()
	mocks.api.EXPECT().Analyze(mock.Anything, mock.Anything, mock.MatchedBy(func(req m.AnalysisRequest) bool {
		return len(req.Buckets) == 2 && req.Buckets[1].Name == "Docs" && req.Settings.SupersummaryInterval == 10
	})).Return(m.AnalysisResponse{Buckets: []m.BucketResult{{
		Name:      "UI",
		Summaries: m.FileSummaries{{Path: "project/src/App.js", Summary: "Does X"}},
	}}}, nil).Once()
	mocks.ui.EXPECT().DisplayResults(mock.Anything, mock.MatchedBy(func(doc m.Document) bool {
		return len(doc.Sections) == 2 && doc.Sections[1].Title == "project/src/App.js"
	})).Return(nil).Once()
	mocks.reports.EXPECT().SaveReport(m.Path("out"), mock.Anything, mock.Anything).
		Return(m.Path("out/summary_output_20240101-1200.md"), nil).Once()
	mocks.ui.EXPECT().DisplayNotice(mock.Anything, "Results saved to out/summary_output_20240101-1200.md").Once()

	err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Plan: "plan.yaml", Output: "out"})
	require.NoError(t, err)
}

func TestWorkflow_Analyze_Failure(t *testing.T) {
	wf, mocks := newWorkflow(t)

	mocks.plans.EXPECT().LoadPlan(mock.Anything).
		Return(m.Plan{Buckets: []m.PlanBucket{{Name: "UI", Files: []string{"a.js"}}}}, nil).Once()
	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.ui.EXPECT().DisplayBoard(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayProgress(mock.Anything, mock.Anything).Once()
	mocks.api.EXPECT().Analyze(mock.Anything, mock.Anything, mock.Anything).
		Return(m.AnalysisResponse{}, &adapter.StatusError{StatusCode: 502, Body: "bad gateway"}).Once()
	mocks.ui.EXPECT().DisplayNotice(mock.Anything, domain.FailureNotice).Once()

	err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Plan: "plan.yaml"})

	var subErr *domain.SubmissionError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, domain.FailureStatus, subErr.Kind)
}

func TestWorkflow_Analyze_PlanErrors(t *testing.T) {
	t.Run("empty plan", func(t *testing.T) {
		wf, mocks := newWorkflow(t)
		mocks.plans.EXPECT().LoadPlan(mock.Anything).Return(m.Plan{}, nil).Once()

		err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Plan: "plan.yaml"})
		assert.ErrorIs(t, err, domain.ErrEmptyPlan)
	})

	t.Run("blank file", func(t *testing.T) {
		wf, mocks := newWorkflow(t)
		mocks.plans.EXPECT().LoadPlan(mock.Anything).
			Return(m.Plan{Buckets: []m.PlanBucket{{Name: "UI", Files: []string{" "}}}}, nil).Once()

		err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Plan: "plan.yaml"})
		assert.ErrorIs(t, err, domain.ErrEmptyPayload)
	})

	t.Run("unreadable plan", func(t *testing.T) {
		wf, mocks := newWorkflow(t)
		mocks.plans.EXPECT().LoadPlan(mock.Anything).Return(m.Plan{}, errors.New("no such file")).Once()

		err := wf.Analyze(context.Background(), domain.AnalyzeArgs{Plan: "plan.yaml"})
		assert.ErrorContains(t, err, "load plan")
	})
}

func TestWorkflow_ShowSettings(t *testing.T) {
	wf, mocks := newWorkflow(t)

	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.ui.EXPECT().DisplaySettings(mock.Anything, m.DefaultAnalysisConfig(), "").Return(nil).Once()

	require.NoError(t, wf.ShowSettings(context.Background()))
}

func TestWorkflow_UpdateSettings(t *testing.T) {
	wf, mocks := newWorkflow(t)

	interval := "25"
	final := false

	want := m.DefaultAnalysisConfig()
	want.SupersummaryInterval = 25
	want.GenerateFinalSummary = false

	mocks.settings.EXPECT().Load().Return(m.DefaultAnalysisConfig()).Once()
	mocks.settings.EXPECT().Save(want).Return(nil).Once()
	mocks.ui.EXPECT().DisplaySettings(mock.Anything, want, mock.MatchedBy(func(diff string) bool {
		return assert.Contains(t, diff, "-supersummaryInterval: 10") &&
			assert.Contains(t, diff, "+supersummaryInterval: 25") &&
			assert.Contains(t, diff, "-generateFinalSummary: true") &&
			assert.Contains(t, diff, "+generateFinalSummary: false") &&
			assert.NotContains(t, diff, "+fileExtensions")
	})).Return(nil).Once()

	err := wf.UpdateSettings(context.Background(), domain.SettingsUpdate{
		SupersummaryInterval: &interval,
		GenerateFinalSummary: &final,
	})
	require.NoError(t, err)
}
