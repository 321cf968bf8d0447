package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

func decodeResponse(t *testing.T, body string) m.AnalysisResponse {
	t.Helper()

	var resp m.AnalysisResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	return resp
}

func TestRenderResults_SingleFile(t *testing.T) {
	doc := RenderResults(decodeResponse(t, `{"buckets":[{"name":"UI","summaries":{"App.js":{"summary":"Does X"}}}]}`))

	assert.Equal(t, ResultsTitle, doc.Title)
	assert.Equal(t, []m.Section{
		{Level: 2, Kind: m.SectionBucket, Title: "UI"},
		{Level: 3, Kind: m.SectionFile, Title: "App.js", Body: "Does X"},
	}, doc.Sections)
	assert.Empty(t, doc.Diagrams)
}

func TestRenderResults_FullResponse(t *testing.T) {
	doc := RenderResults(decodeResponse(t, `{
		"buckets":[
			{"name":"Core","summaries":{
				"src/a#1.js":{"summary":"A","modernisation_recommendations":"Use ESM"},
				"src/b.js":"B"},
			 "supersummary":"Core overview"},
			{"name":"","summaries":{}}
		],
		"final_summary":"Everything",
		"modernisation_summary":"Upgrade"}`))

	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
	}

	assert.Equal(t, []string{
		"Core",
		`src/a\#1.js`,
		RecommendationsTitle,
		"src/b.js",
		SupersummaryTitle,
		"Unnamed Bucket",
		FinalSummaryTitle,
		ModernisationSummaryTitle,
	}, titles)

	assert.Equal(t, 4, doc.Sections[2].Level)
	assert.Equal(t, "Use ESM", doc.Sections[2].Body)
	assert.Equal(t, "Core overview", doc.Sections[4].Body)
	assert.Equal(t, m.SectionFinalSummary, doc.Sections[6].Kind)
	assert.Equal(t, 2, doc.Sections[7].Level)
}

func TestRenderResults_SkipsAbsentAndBlankParts(t *testing.T) {
	doc := RenderResults(decodeResponse(t, `{
		"buckets":[{"name":"UI","summaries":{"a.js":{"summary":"x","modernisation_recommendations":""}},"supersummary":null}],
		"final_summary":"  ",
		"modernisation_summary":null}`))

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, m.SectionFile, doc.Sections[1].Kind)
}

func TestRenderResults_Empty(t *testing.T) {
	doc := RenderResults(m.AnalysisResponse{})

	assert.True(t, doc.Empty())
	assert.Equal(t, "# Analysis Results\n\n", doc.Markdown())
}

func TestNormalizeMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "blank line before list",
			input: "Intro:\n- one\n- two",
			want:  "Intro:\n\n- one\n- two",
		},
		{
			name:  "numbered list",
			input: "Steps\n1. first\n2. second",
			want:  "Steps\n\n1. first\n2. second",
		},
		{
			name:  "list already separated",
			input: "Intro\n\n* one",
			want:  "Intro\n\n* one",
		},
		{
			name:  "code fence untouched",
			input: "```\nx := 1\n- not a list\n```",
			want:  "```\nx := 1\n- not a list\n```",
		},
		{
			name:  "windows line endings",
			input: "Intro\r\n- one\r\n",
			want:  "Intro\n\n- one",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMarkdown(tt.input))
		})
	}
}

func TestDocumentMarkdown(t *testing.T) {
	doc := RenderResults(decodeResponse(t, `{
		"buckets":[
			{"name":"UI","summaries":{"App.js":{"summary":"Does X"}},"supersummary":"All UI"},
			{"name":"Docs","summaries":{"README.md":{"summary":"Explains"}}}],
		"final_summary":"Done"}`))

	assert.Equal(t, "# Analysis Results\n\n"+
		"## UI\n\n"+
		"### App.js\n\nDoes X\n\n"+
		"### Bucket Supersummary\n\nAll UI\n\n"+
		"---\n\n"+
		"## Docs\n\n"+
		"### README.md\n\nExplains\n\n"+
		"## Final Summary\n\nDone\n\n", doc.Markdown())
}
