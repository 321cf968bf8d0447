package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// NewUI returns the TUI on terminals and the SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTree prints the namespace indented by depth.
func (s *SimpleUI) DisplayTree(ctx context.Context, rows []m.TreeRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTreeText(rows))

	return nil
}

func renderTreeText(rows []m.TreeRow) string {
	var b strings.Builder

	files := 0

	for _, row := range rows {
		name := row.Name
		if row.IsDir {
			name += "/"
		} else {
			files++
		}

		fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", row.Depth), name)
	}

	fmt.Fprintf(&b, "\n%d file(s)\n", files)

	return b.String()
}

// DisplayBoard prints one table row per bucket.
func (s *SimpleUI) DisplayBoard(ctx context.Context, buckets []m.BucketState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderBoardTable(buckets))

	return nil
}

func renderBoardTable(buckets []m.BucketState) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Bucket", "Files", "State"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	totalFiles := 0

	for _, bucket := range buckets {
		table.Append([]string{bucket.Name, strconv.Itoa(len(bucket.Items)), bucket.Phase.String()})

		totalFiles += len(bucket.Items)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Buckets %d", len(buckets)),
		strconv.Itoa(totalFiles),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayProgress prints a progress line.
func (s *SimpleUI) DisplayProgress(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", message)
}

// DisplayNotice prints a notice line.
func (s *SimpleUI) DisplayNotice(ctx context.Context, notice string) {
	if err := ctx.Err(); err != nil || notice == "" {
		return
	}

	s.printf("%s\n", notice)
}

// DisplayResults prints the results as markdown.
func (s *SimpleUI) DisplayResults(ctx context.Context, doc m.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", doc.Markdown())

	return nil
}

// DisplaySettings prints the settings and, when given, the diff of a change.
func (s *SimpleUI) DisplaySettings(ctx context.Context, config m.AnalysisConfig, diff string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSettingsTable(config))

	if diff != "" {
		s.printf("\n%s", diff)
	}

	return nil
}

func renderSettingsTable(config m.AnalysisConfig) string {
	var tableBuffer bytes.Buffer

	form := config.Form()

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk([][]string{
		{"File extensions", form.FileExtensions},
		{"Ignore paths", form.IgnorePaths},
		{"Supersummary interval", form.SupersummaryInterval},
		{"Final summary", strconv.FormatBool(form.GenerateFinalSummary)},
		{"Modernisation summary", strconv.FormatBool(form.GenerateModernisationSummary)},
	})
	table.Render()

	return tableBuffer.String()
}

// Interact is not available without a terminal.
func (s *SimpleUI) Interact(_ context.Context, _ Session) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
