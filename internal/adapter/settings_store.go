package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// SettingsKey is the storage key holding the analysis configuration.
const SettingsKey = "analyzerSettings"

// SettingsStore loads and saves the analysis configuration.
type SettingsStore interface {
	// Load never fails: a missing or unreadable record yields the defaults.
	Load() m.AnalysisConfig
	Save(config m.AnalysisConfig) error
}

// settingsRecord is the stored form of the configuration. Lists are kept as
// comma-joined strings, the way the editor shows them.
type settingsRecord struct {
	FileExtensions               *string `json:"fileExtensions"`
	IgnorePaths                  *string `json:"ignorePaths"`
	SupersummaryInterval         *int    `json:"supersummaryInterval"`
	GenerateFinalSummary         *bool   `json:"generateFinalSummary"`
	GenerateModernisationSummary *bool   `json:"generateModernisationSummary"`
}

// FileSettingsStore keeps settings in a JSON key-value file.
type FileSettingsStore struct {
	path string
}

// NewFileSettingsStore creates a store backed by the file at path.
func NewFileSettingsStore(path m.Path) *FileSettingsStore {
	return &FileSettingsStore{path: string(path)}
}

// Load reads the configuration, falling back to defaults for a missing file,
// a missing key or a malformed record. Absent fields keep their default.
func (s *FileSettingsStore) Load() m.AnalysisConfig {
	defaults := m.DefaultAnalysisConfig()

	entries, err := s.readEntries()
	if err != nil {
		slog.Debug("settings unreadable, using defaults", "path", s.path, "error", err)
		return defaults
	}

	raw, ok := entries[SettingsKey]
	if !ok {
		return defaults
	}

	var record settingsRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		slog.Debug("settings record malformed, using defaults", "path", s.path, "error", err)
		return defaults
	}

	return record.apply(defaults)
}

// Save writes the configuration under SettingsKey, keeping other keys.
func (s *FileSettingsStore) Save(config m.AnalysisConfig) error {
	entries, err := s.readEntries()
	if err != nil {
		entries = map[string]json.RawMessage{}
	}

	raw, err := json.Marshal(newSettingsRecord(config))
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	entries[SettingsKey] = raw

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		slog.Error("failed to save settings", "path", s.path, "error", err)
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

func (s *FileSettingsStore) readEntries() (map[string]json.RawMessage, error) {
	// #nosec G304 - the settings path comes from the local configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}

		return nil, err
	}

	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func newSettingsRecord(config m.AnalysisConfig) settingsRecord {
	extensions := strings.Join(config.FileExtensions, ",")
	ignore := strings.Join(config.IgnorePaths, ",")
	interval := config.SupersummaryInterval
	final := config.GenerateFinalSummary
	modernisation := config.GenerateModernisationSummary

	return settingsRecord{
		FileExtensions:               &extensions,
		IgnorePaths:                  &ignore,
		SupersummaryInterval:         &interval,
		GenerateFinalSummary:         &final,
		GenerateModernisationSummary: &modernisation,
	}
}

func (r settingsRecord) apply(config m.AnalysisConfig) m.AnalysisConfig {
	if r.FileExtensions != nil {
		config.FileExtensions = m.SplitList(*r.FileExtensions)
	}

	if r.IgnorePaths != nil {
		config.IgnorePaths = m.SplitList(*r.IgnorePaths)
	}

	if r.SupersummaryInterval != nil {
		config.SupersummaryInterval = *r.SupersummaryInterval
		if config.SupersummaryInterval < 1 {
			config.SupersummaryInterval = m.DefaultSupersummaryInterval
		}
	}

	if r.GenerateFinalSummary != nil {
		config.GenerateFinalSummary = *r.GenerateFinalSummary
	}

	if r.GenerateModernisationSummary != nil {
		config.GenerateModernisationSummary = *r.GenerateModernisationSummary
	}

	return config
}

// writeFileAtomic replaces path with data through a temp file and rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}
