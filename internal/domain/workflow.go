package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"treesummary.dev/pkg/treesummary/internal/adapter"
	"treesummary.dev/pkg/treesummary/internal/controller"
	m "treesummary.dev/pkg/treesummary/internal/model"
)

// ErrEmptyPlan is returned for a plan without buckets.
var ErrEmptyPlan = errors.New("plan has no buckets")

// TreeArgs selects the namespaces to load.
type TreeArgs struct {
	Roots    []m.Path
	Demo     bool
	Parallel int
}

// BoardArgs contains the arguments of the interactive board.
type BoardArgs struct {
	TreeArgs
}

// AnalyzeArgs contains the arguments of a non-interactive analysis.
type AnalyzeArgs struct {
	Plan   m.Path
	Output m.Path
}

// SettingsUpdate holds the settings fields to change; nil fields are kept.
type SettingsUpdate struct {
	FileExtensions               *string
	IgnorePaths                  *string
	SupersummaryInterval         *string
	GenerateFinalSummary         *bool
	GenerateModernisationSummary *bool
}

// Workflow defines the use cases behind the CLI commands.
type Workflow interface {
	Tree(ctx context.Context, args TreeArgs) error
	Board(ctx context.Context, args BoardArgs) error
	Analyze(ctx context.Context, args AnalyzeArgs) error
	ShowSettings(ctx context.Context) error
	UpdateSettings(ctx context.Context, update SettingsUpdate) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.SettingsStore
	adapter.ReportStore
	adapter.PlanStore
	controller.UI
	client *AnalysisClient
	now    func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	settingsStore adapter.SettingsStore,
	reportStore adapter.ReportStore,
	planStore adapter.PlanStore,
	api adapter.AnalysisAPI,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		SettingsStore:   settingsStore,
		ReportStore:     reportStore,
		PlanStore:       planStore,
		UI:              ui,
		client:          NewAnalysisClient(api),
		now:             time.Now,
	}
}

func (w *workflow) Tree(ctx context.Context, args TreeArgs) error {
	tree, err := w.loadTree(ctx, args)
	if err != nil {
		return err
	}

	return w.DisplayTree(ctx, tree.Rows())
}

func (w *workflow) Board(ctx context.Context, args BoardArgs) error {
	tree, err := w.loadTree(ctx, args.TreeArgs)
	if err != nil {
		return err
	}

	session := NewSession(tree, NewBoard(), w.SettingsStore, w.client)

	return w.Interact(ctx, session)
}

func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	plan, err := w.LoadPlan(args.Plan)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}

	board, err := boardFromPlan(plan)
	if err != nil {
		return err
	}

	session := NewSession(NewFileTree(), board, w.SettingsStore, w.client)

	if err := w.DisplayBoard(ctx, board.Buckets()); err != nil {
		return err
	}

	w.DisplayProgress(ctx, fmt.Sprintf("Analyzing %d file(s) in %d bucket(s)...", board.ItemCount(), board.Len()))

	doc, err := session.Submit(ctx)
	if err != nil {
		w.DisplayNotice(ctx, session.Notice())
		return fmt.Errorf("analyze: %w", err)
	}

	if err := w.DisplayResults(ctx, doc); err != nil {
		return err
	}

	if args.Output == "" {
		return nil
	}

	path, err := w.SaveReport(args.Output, doc, w.now())
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplayNotice(ctx, fmt.Sprintf("Results saved to %s", path))

	return nil
}

func (w *workflow) ShowSettings(ctx context.Context) error {
	return w.DisplaySettings(ctx, w.Load(), "")
}

func (w *workflow) UpdateSettings(ctx context.Context, update SettingsUpdate) error {
	session := NewSession(NewFileTree(), NewBoard(), w.SettingsStore, w.client)
	before := session.Config()

	form := session.OpenSettings()
	update.apply(&form)

	if err := session.SaveSettings(form); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	after := session.Config()

	diff, err := settingsDiff(before, after)
	if err != nil {
		slog.Debug("settings diff failed", "error", err)
	}

	return w.DisplaySettings(ctx, after, diff)
}

func (u SettingsUpdate) apply(form *m.SettingsForm) {
	if u.FileExtensions != nil {
		form.FileExtensions = *u.FileExtensions
	}

	if u.IgnorePaths != nil {
		form.IgnorePaths = *u.IgnorePaths
	}

	if u.SupersummaryInterval != nil {
		form.SupersummaryInterval = *u.SupersummaryInterval
	}

	if u.GenerateFinalSummary != nil {
		form.GenerateFinalSummary = *u.GenerateFinalSummary
	}

	if u.GenerateModernisationSummary != nil {
		form.GenerateModernisationSummary = *u.GenerateModernisationSummary
	}
}

// loadTree builds the tree from the demo namespace or from the given roots,
// walking the roots concurrently with the active settings as filters.
func (w *workflow) loadTree(ctx context.Context, args TreeArgs) (*FileTree, error) {
	if args.Demo {
		return NewFileTree(DemoNamespace()), nil
	}

	roots := args.Roots
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	config := w.Load()
	opts := adapter.NamespaceOptions{
		IgnorePaths: config.IgnorePaths,
		Extensions:  config.FileExtensions,
	}

	nodes := make([]m.PathNode, len(roots))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, root := range roots {
		i, root := i, root
		group.Go(func() error {
			node, err := w.Namespace(groupCtx, root, opts)
			if err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			nodes[i] = node

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return NewFileTree(nodes...), nil
}

func boardFromPlan(plan m.Plan) (*Board, error) {
	if len(plan.Buckets) == 0 {
		return nil, ErrEmptyPlan
	}

	board := NewBoard()

	for _, planned := range plan.Buckets {
		id := board.CreateNamedBucket(planned.Name)

		for _, file := range planned.Files {
			if _, err := board.DropOntoBucket(id, m.Path(file)); err != nil {
				return nil, fmt.Errorf("bucket %q: %w", planned.Name, err)
			}
		}
	}

	return board, nil
}

func settingsDiff(before, after m.AnalysisConfig) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(settingsText(before)),
		B:        difflib.SplitLines(settingsText(after)),
		FromFile: "before",
		ToFile:   "after",
		Context:  1,
	})
}

func settingsText(config m.AnalysisConfig) string {
	form := config.Form()

	var b strings.Builder

	fmt.Fprintf(&b, "fileExtensions: %s\n", form.FileExtensions)
	fmt.Fprintf(&b, "ignorePaths: %s\n", form.IgnorePaths)
	fmt.Fprintf(&b, "supersummaryInterval: %s\n", form.SupersummaryInterval)
	fmt.Fprintf(&b, "generateFinalSummary: %t\n", form.GenerateFinalSummary)
	fmt.Fprintf(&b, "generateModernisationSummary: %t\n", form.GenerateModernisationSummary)

	return b.String()
}
