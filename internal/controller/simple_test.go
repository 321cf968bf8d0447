package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayTree(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayTree(context.Background(), []m.TreeRow{
		{Name: "project", FullPath: "project", IsDir: true},
		{Name: "src", FullPath: "project/src", Depth: 1, IsDir: true},
		{Name: "App.js", FullPath: "project/src/App.js", Depth: 2},
		{Name: "README.md", FullPath: "project/README.md", Depth: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, "project/\n  src/\n    App.js\n  README.md\n\n2 file(s)\n", buf.String())
}

func TestSimpleUI_DisplayBoard(t *testing.T) {
	tests := []struct {
		name         string
		buckets      []m.BucketState
		wantContains []string
	}{
		{
			name:         "empty board",
			buckets:      nil,
			wantContains: []string{"Total Buckets 0"},
		},
		{
			name: "buckets with items",
			buckets: []m.BucketState{
				{ID: 1, Name: "Frontend", Items: []m.Path{"a.js", "b.js"}, Phase: m.PhasePopulated},
				{ID: 2, Name: "Empty", Phase: m.PhaseEmpty},
			},
			wantContains: []string{"Frontend", "Empty", "populated", "empty", "Total Buckets 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()

			require.NoError(t, ui.DisplayBoard(context.Background(), tt.buckets))

			// tablewriter upper-cases header and footer cells.
			out := strings.ToLower(buf.String())
			for _, want := range tt.wantContains {
				assert.Contains(t, out, strings.ToLower(want))
			}
		})
	}
}

func TestSimpleUI_DisplayNoticeAndProgress(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayProgress(context.Background(), "Analyzing 2 file(s) in 1 bucket(s)...")
	ui.DisplayNotice(context.Background(), "")
	ui.DisplayNotice(context.Background(), "Analysis failed.")

	assert.Equal(t, "Analyzing 2 file(s) in 1 bucket(s)...\nAnalysis failed.\n", buf.String())
}

func TestSimpleUI_DisplayResults(t *testing.T) {
	ui, buf := newTestSimpleUI()

	doc := m.Document{
		Title: "Analysis Results",
		Sections: []m.Section{
			{Level: 2, Kind: m.SectionBucket, Title: "UI"},
			{Level: 3, Kind: m.SectionFile, Title: "a.js", Body: "Renders the header."},
		},
	}

	require.NoError(t, ui.DisplayResults(context.Background(), doc))
	assert.Equal(t, "\n# Analysis Results\n\n## UI\n\n### a.js\n\nRenders the header.\n\n", buf.String())
}

func TestSimpleUI_DisplaySettings(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplaySettings(context.Background(), m.DefaultAnalysisConfig(), "-supersummaryInterval: 10\n+supersummaryInterval: 5\n")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "js,py,html,css")
	assert.Contains(t, out, "node_modules,dist")
	assert.Contains(t, out, "+supersummaryInterval: 5")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.DisplayTree(ctx, nil), context.Canceled)
	assert.ErrorIs(t, ui.DisplayBoard(ctx, nil), context.Canceled)
	ui.DisplayNotice(ctx, "ignored")
	assert.Empty(t, buf.String())
}

func TestSimpleUI_InteractNeedsTerminal(t *testing.T) {
	ui, _ := newTestSimpleUI()

	assert.ErrorIs(t, ui.Interact(context.Background(), newFakeSession()), ErrNotInteractive)
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestRenderTreeRow(t *testing.T) {
	assert.Equal(t, "    App.js", renderTreeRow(m.TreeRow{Name: "App.js", Depth: 2}))
	assert.Equal(t, "src/", renderTreeRow(m.TreeRow{Name: "src", IsDir: true}))
}

func TestStripDiagramFences(t *testing.T) {
	body := "Before\n```mermaid\ngraph TD\n  A-->B\n```\nAfter\n```go\nx := 1\n```"

	assert.Equal(t, "Before\nAfter\n```go\nx := 1\n```", stripDiagramFences(body))
}

func TestRenderDocument(t *testing.T) {
	doc := m.Document{
		Title: "Analysis Results",
		Sections: []m.Section{
			{Level: 2, Kind: m.SectionBucket, Title: "UI"},
			{Level: 3, Kind: m.SectionFile, Title: "a.js", Body: "Flow:\n```mermaid\ngraph TD\n```"},
		},
		Diagrams: []m.Diagram{{Section: 1, Kind: "mermaid", Source: "graph TD"}},
	}

	out := renderDocument(doc, 0)

	assert.Contains(t, out, "Analysis Results")
	assert.Contains(t, out, "Flow:")
	assert.Contains(t, out, "graph TD")
	assert.NotContains(t, out, "```mermaid")
}

func TestRenderDocument_RendersMarkdownBodies(t *testing.T) {
	original := markdownStyle
	markdownStyle = styles.DarkStyle

	t.Cleanup(func() { markdownStyle = original })

	doc := m.Document{
		Title: "Analysis Results",
		Sections: []m.Section{
			{Level: 3, Kind: m.SectionFile, Title: "a.js", Body: "Exports **three** helpers:\n\n- item one\n- item two"},
		},
	}

	out := ansi.Strip(renderDocument(doc, 60))

	assert.Contains(t, out, "• item one")
	assert.Contains(t, out, "• item two")
	assert.Contains(t, out, "three")
	assert.NotContains(t, out, "**three**")
	assert.NotContains(t, out, "- item one")
}

func TestRenderMarkdown_FallsBackToRawText(t *testing.T) {
	assert.Equal(t, "**raw**", renderMarkdown(nil, "**raw**"))
}
