package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-scout/internal/types"
)

func TestPrintCollectedProfiles(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCollectedProfiles([]types.CandidateProfile{
		{Identifier: "jane-doe", DisplayName: "Jane Doe", Headline: "Data Engineer"},
		{Identifier: "john-smith"},
	})

	out := buf.String()
	assert.Contains(t, out, "COLLECTED PROFILES")
	assert.Contains(t, out, "Profiles collected: 2")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Data Engineer")
	// Identifier used when no display name is known.
	assert.Contains(t, out, "john-smith")
}

func TestPrintQueryResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQueryResults([]types.QueryResult{
		{
			ID:         "profile_jane-doe",
			Metadata:   types.DocumentMetadata{Name: "Jane Doe", Title: "Data Engineer"},
			Similarity: 0.912,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RETRIEVED PROFILES")
	assert.Contains(t, out, "#1  Jane Doe")
	assert.Contains(t, out, "Similarity: 0.912")
}

func TestPrintQueryResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQueryResults(nil)

	assert.Contains(t, buf.String(), "No matching profiles found")
}

func TestPrintAnalysis(t *testing.T) {
	tests := []struct {
		name   string
		result types.AnalysisResult
		want   string
	}{
		{"narrative", types.AnalysisResult{Analysis: "Jane is the strongest fit."}, "Jane is the strongest fit."},
		{"no matches", types.AnalysisResult{NoMatches: true}, "No stored profiles matched"},
		{"provider error", types.AnalysisResult{Error: "analysis failed: quota"}, "analysis failed: quota"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewPrinter(&buf).PrintAnalysis(tt.result)
			assert.Contains(t, buf.String(), "CANDIDATE ANALYSIS")
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestPrintScreening(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScreening(types.ScreeningResult{
		Candidates: []types.CandidateScore{
			{Metadata: types.DocumentMetadata{Name: "Jane Doe"}, Score: 8.5, Scored: true},
			{Metadata: types.DocumentMetadata{Identifier: "john-smith"}, ScoreText: "N/A (provider error)"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "SCREENING SCORES")
	assert.Contains(t, out, "Jane Doe: 8.5/10")
	assert.Contains(t, out, "john-smith: N/A (provider error)")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport("Interview Jane first.")

	assert.Contains(t, buf.String(), "HIRING REPORT")
	assert.Contains(t, buf.String(), "Interview Jane first.")
}
