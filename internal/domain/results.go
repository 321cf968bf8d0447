package domain

import (
	"regexp"
	"strings"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// Headings used when rendering a response.
const (
	ResultsTitle              = "Analysis Results"
	RecommendationsTitle      = "Modernisation Recommendations"
	SupersummaryTitle         = "Bucket Supersummary"
	FinalSummaryTitle         = "Final Summary"
	ModernisationSummaryTitle = "Modernisation Summary"

	unnamedBucket = "Unnamed Bucket"
)

var listItemPattern = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])\s`)

// RenderResults turns a response into a document: one section per bucket,
// file, recommendation block and supersummary, then the overall summaries.
// Absent parts are skipped. Diagrams are collected once all sections exist.
func RenderResults(resp m.AnalysisResponse) m.Document {
	doc := m.Document{Title: ResultsTitle}

	for _, result := range resp.Buckets {
		name := strings.TrimSpace(result.Name)
		if name == "" {
			name = unnamedBucket
		}

		doc.Sections = append(doc.Sections, m.Section{Level: 2, Kind: m.SectionBucket, Title: name})

		for _, summary := range result.Summaries {
			doc.Sections = append(doc.Sections, m.Section{
				Level: 3,
				Kind:  m.SectionFile,
				Title: EscapeHeading(string(summary.Path)),
				Body:  NormalizeMarkdown(summary.Summary),
			})

			if text, ok := present(summary.ModernisationRecommendations); ok {
				doc.Sections = append(doc.Sections, m.Section{
					Level: 4,
					Kind:  m.SectionRecommendations,
					Title: RecommendationsTitle,
					Body:  NormalizeMarkdown(text),
				})
			}
		}

		if text, ok := present(result.Supersummary); ok {
			doc.Sections = append(doc.Sections, m.Section{
				Level: 3,
				Kind:  m.SectionSupersummary,
				Title: SupersummaryTitle,
				Body:  NormalizeMarkdown(text),
			})
		}
	}

	if text, ok := present(resp.FinalSummary); ok {
		doc.Sections = append(doc.Sections, m.Section{
			Level: 2,
			Kind:  m.SectionFinalSummary,
			Title: FinalSummaryTitle,
			Body:  NormalizeMarkdown(text),
		})
	}

	if text, ok := present(resp.ModernisationSummary); ok {
		doc.Sections = append(doc.Sections, m.Section{
			Level: 2,
			Kind:  m.SectionModernisationSummary,
			Title: ModernisationSummaryTitle,
			Body:  NormalizeMarkdown(text),
		})
	}

	return CollectDiagrams(doc)
}

// EscapeHeading escapes '#' so a path cannot change the heading level.
func EscapeHeading(title string) string {
	return strings.ReplaceAll(title, "#", `\#`)
}

// NormalizeMarkdown puts a blank line in front of a list that directly
// follows a paragraph line. Code fences are left untouched.
func NormalizeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, 0, len(lines))
	inFence := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)

			continue
		}

		if !inFence && i > 0 && listItemPattern.MatchString(line) {
			prev := strings.TrimSpace(lines[i-1])
			if prev != "" && !listItemPattern.MatchString(lines[i-1]) && !strings.HasPrefix(prev, "```") {
				out = append(out, "")
			}
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}

func present(text *string) (string, bool) {
	if text == nil || strings.TrimSpace(*text) == "" {
		return "", false
	}

	return *text, true
}
