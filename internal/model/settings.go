package model

import (
	"strconv"
	"strings"
)

// DefaultSupersummaryInterval is used when no valid interval is configured.
const DefaultSupersummaryInterval = 10

// AnalysisConfig holds the options sent with every analysis request.
type AnalysisConfig struct {
	FileExtensions               []string `json:"file_extensions"`
	IgnorePaths                  []string `json:"ignore_paths"`
	SupersummaryInterval         int      `json:"supersummary_interval"`
	GenerateFinalSummary         bool     `json:"generate_final_summary"`
	GenerateModernisationSummary bool     `json:"generate_modernisation_summary"`
}

// DefaultAnalysisConfig returns the configuration used before anything is saved.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		FileExtensions:               []string{"js", "py", "html", "css"},
		IgnorePaths:                  []string{"node_modules", "dist"},
		SupersummaryInterval:         DefaultSupersummaryInterval,
		GenerateFinalSummary:         true,
		GenerateModernisationSummary: true,
	}
}

// Clone returns a deep copy.
func (c AnalysisConfig) Clone() AnalysisConfig {
	c.FileExtensions = append([]string(nil), c.FileExtensions...)
	c.IgnorePaths = append([]string(nil), c.IgnorePaths...)

	return c
}

// SettingsForm is the raw input of the settings editor.
type SettingsForm struct {
	FileExtensions               string
	IgnorePaths                  string
	SupersummaryInterval         string
	GenerateFinalSummary         bool
	GenerateModernisationSummary bool
}

// Form renders the config back into editor fields.
func (c AnalysisConfig) Form() SettingsForm {
	return SettingsForm{
		FileExtensions:               strings.Join(c.FileExtensions, ","),
		IgnorePaths:                  strings.Join(c.IgnorePaths, ","),
		SupersummaryInterval:         strconv.Itoa(c.SupersummaryInterval),
		GenerateFinalSummary:         c.GenerateFinalSummary,
		GenerateModernisationSummary: c.GenerateModernisationSummary,
	}
}

// ParseSettingsForm turns editor input into a config. List fields are
// comma-split, trimmed and deduplicated. An interval that is not a positive
// integer becomes DefaultSupersummaryInterval.
func ParseSettingsForm(form SettingsForm) AnalysisConfig {
	return AnalysisConfig{
		FileExtensions:               SplitList(form.FileExtensions),
		IgnorePaths:                  SplitList(form.IgnorePaths),
		SupersummaryInterval:         ParseInterval(form.SupersummaryInterval),
		GenerateFinalSummary:         form.GenerateFinalSummary,
		GenerateModernisationSummary: form.GenerateModernisationSummary,
	}
}

// SplitList splits a comma-joined list, dropping blanks and repeats.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || seen[part] {
			continue
		}

		seen[part] = true
		out = append(out, part)
	}

	return out
}

// ParseInterval parses a supersummary interval, falling back to the default.
func ParseInterval(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return DefaultSupersummaryInterval
	}

	return n
}
