package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RequestBucket is one bucket inside an analysis request.
type RequestBucket struct {
	Name  string `json:"name"`
	Files []Path `json:"files"`
}

// AnalysisRequest is the snapshot posted to the analysis service.
type AnalysisRequest struct {
	Buckets  []RequestBucket `json:"buckets"`
	Settings AnalysisConfig  `json:"settings"`
}

// AnalysisResponse is the body returned by the analysis service.
type AnalysisResponse struct {
	Buckets              []BucketResult `json:"buckets"`
	FinalSummary         *string        `json:"final_summary,omitempty"`
	ModernisationSummary *string        `json:"modernisation_summary,omitempty"`
}

// BucketResult holds the summaries produced for one bucket.
type BucketResult struct {
	Name         string        `json:"name"`
	Summaries    FileSummaries `json:"summaries"`
	Supersummary *string       `json:"supersummary,omitempty"`
}

// FileSummary is the narrative produced for a single file.
type FileSummary struct {
	Path                         Path
	Summary                      string
	ModernisationRecommendations *string
}

// FileSummaries keeps summaries in the order the service sent them.
type FileSummaries []FileSummary

type fileSummaryBody struct {
	Summary                      *string `json:"summary"`
	ModernisationRecommendations *string `json:"modernisation_recommendations,omitempty"`
}

// UnmarshalJSON decodes a path-keyed object, keeping key order. A value may be
// a bare string, taken as the summary itself.
func (s *FileSummaries) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("summaries: expected object, got %v", tok)
	}

	var out FileSummaries

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("summaries: expected key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("summaries[%s]: %w", key, err)
		}

		summary, err := decodeFileSummary(Path(key), raw)
		if err != nil {
			return err
		}

		out = append(out, summary)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = out

	return nil
}

// MarshalJSON encodes the summaries as a path-keyed object in slice order.
func (s FileSummaries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, summary := range s {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(string(summary.Path))
		if err != nil {
			return nil, err
		}

		text := summary.Summary

		value, err := json.Marshal(fileSummaryBody{
			Summary:                      &text,
			ModernisationRecommendations: summary.ModernisationRecommendations,
		})
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func decodeFileSummary(path Path, raw json.RawMessage) (FileSummary, error) {
	summary := FileSummary{Path: path}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return summary, nil
	}

	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &summary.Summary); err != nil {
			return summary, fmt.Errorf("summaries[%s]: %w", path, err)
		}

		return summary, nil
	}

	var body fileSummaryBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return summary, fmt.Errorf("summaries[%s]: %w", path, err)
	}

	if body.Summary != nil {
		summary.Summary = *body.Summary
	}

	summary.ModernisationRecommendations = body.ModernisationRecommendations

	return summary, nil
}
