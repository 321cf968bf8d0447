package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	input  io.Reader
}

// NewTUI creates a TUI writing to the command output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{output: cmd.OutOrStdout(), input: cmd.InOrStdin()}
}

// DisplayTree shows the namespace, paged when it does not fit the terminal.
func (t *TUI) DisplayTree(ctx context.Context, rows []m.TreeRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	files := 0

	for _, row := range rows {
		line := renderTreeRow(row)
		if row.IsDir {
			line = headingStyle.Render(line)
		} else {
			files++
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render(fmt.Sprintf("%d file(s)", files)))
	b.WriteString("\n")

	return t.page(ctx, "File tree", b.String())
}

// DisplayBoard prints the bucket table.
func (t *TUI) DisplayBoard(ctx context.Context, buckets []m.BucketState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s\n%s", titleStyle.Render("Buckets"), renderBoardTable(buckets))

	return err
}

// DisplayProgress prints a progress line.
func (t *TUI) DisplayProgress(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	_, _ = fmt.Fprintln(t.output, subtleStyle.Render("⏳ "+message))
}

// DisplayNotice prints a notice line.
func (t *TUI) DisplayNotice(ctx context.Context, notice string) {
	if err := ctx.Err(); err != nil || notice == "" {
		return
	}

	_, _ = fmt.Fprintln(t.output, noticeStyle.Render(notice))
}

// DisplayResults shows the rendered results, paged when long.
func (t *TUI) DisplayResults(ctx context.Context, doc m.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, _ := t.size()

	return t.page(ctx, doc.Title, renderDocument(doc, width))
}

// DisplaySettings prints the settings table and the diff of a change.
func (t *TUI) DisplaySettings(ctx context.Context, config m.AnalysisConfig, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Analysis settings"))
	b.WriteString("\n")
	b.WriteString(renderSettingsTable(config))

	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			b.WriteString(successStyle.Render(line) + "\n")
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			b.WriteString(noticeStyle.Render(line) + "\n")
		default:
			b.WriteString(subtleStyle.Render(line) + "\n")
		}
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// Interact runs the interactive board until the user quits.
func (t *TUI) Interact(ctx context.Context, session Session) error {
	model := newBoardModel(ctx, session)
	model.width, model.height = t.size()

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	return nil
}

func (t *TUI) size() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			return width, height
		}
	}

	return 0, 0
}

// page prints content directly when it fits, otherwise opens a pager.
func (t *TUI) page(ctx context.Context, title, content string) error {
	width, height := t.size()

	if height == 0 || strings.Count(content, "\n") < height-2 {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(newPagerModel(title, content, width, height),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

// pagerModel scrolls a long text in a viewport.
type pagerModel struct {
	title    string
	viewport viewport.Model
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-2, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.viewport.Width = msg.Width
		p.viewport.Height = max(msg.Height-2, 1)

		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)

	return p, cmd
}

func (p pagerModel) View() string {
	footer := subtleStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", p.viewport.ScrollPercent()*100))

	return titleStyle.Render(p.title) + "\n" + p.viewport.View() + "\n" + footer
}
