package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

const reportTimestampLayout = "20060102-1504"

// ReportStore persists rendered analysis results.
type ReportStore interface {
	SaveReport(dir m.Path, doc m.Document, at time.Time) (m.Path, error)
}

// LocalReportStore writes markdown reports into a local directory.
type LocalReportStore struct{}

// NewReportStore creates a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// ReportFileName returns the report file name for a run started at at.
func ReportFileName(at time.Time) string {
	return fmt.Sprintf("summary_output_%s.md", at.Format(reportTimestampLayout))
}

// SaveReport writes doc as markdown into dir and returns the file path.
func (s *LocalReportStore) SaveReport(dir m.Path, doc m.Document, at time.Time) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName(at))

	if err := writeFileAtomic(path, []byte(doc.Markdown())); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Info("report saved", "path", path, "sections", len(doc.Sections))

	return m.Path(path), nil
}
