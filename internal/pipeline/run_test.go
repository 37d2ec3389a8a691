package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/types"
)

type fakeCollector struct {
	profiles []types.CandidateProfile
	role     string
	location string
	count    int
}

func (c *fakeCollector) Collect(_ context.Context, role, location string, count int) []types.CandidateProfile {
	c.role = role
	c.location = location
	c.count = count
	return c.profiles
}

type fakeAnalysis struct {
	analysis  types.AnalysisResult
	screening types.ScreeningResult
	report    string
	reportErr error

	screenQuery string
}

func (a *fakeAnalysis) Analyze(_ context.Context, _, _ string, _ int) types.AnalysisResult {
	return a.analysis
}

func (a *fakeAnalysis) Screen(_ context.Context, query string, _ int) types.ScreeningResult {
	a.screenQuery = query
	return a.screening
}

func (a *fakeAnalysis) GenerateReport(_ context.Context, _ types.ScreeningResult) (string, error) {
	return a.report, a.reportErr
}

func matchedAnalysis() types.AnalysisResult {
	return types.AnalysisResult{
		Analysis: "Jane is the strongest fit.",
		Query:    "Data Engineer with skills matching: Python pipelines",
		Profiles: []types.QueryResult{{ID: "profile_jane-doe"}},
	}
}

func TestRun_AllStagesInOrder(t *testing.T) {
	collector := &fakeCollector{profiles: []types.CandidateProfile{{Identifier: "jane-doe"}}}
	analysis := &fakeAnalysis{
		analysis: matchedAnalysis(),
		screening: types.ScreeningResult{
			Candidates: []types.CandidateScore{{Score: 8, Scored: true, ScoreText: "8"}},
		},
		report: "Interview Jane first.",
	}

	var events []ProgressEvent
	opts := RunOptions{
		Role:     "Data Engineer",
		Location: "Berlin",
		Count:    3,
		K:        5,
		OnProgress: func(event ProgressEvent) {
			events = append(events, event)
		},
	}

	var buf bytes.Buffer
	err := run(context.Background(), opts, collector, analysis, observability.NewPrinter(&buf))
	require.NoError(t, err)

	assert.Equal(t, "Data Engineer", collector.role)
	assert.Equal(t, "Berlin", collector.location)
	assert.Equal(t, 3, collector.count)
	// Screening reuses the exact retrieval query the analysis built.
	assert.Equal(t, analysis.analysis.Query, analysis.screenQuery)

	require.Len(t, events, 4)
	assert.Equal(t, StepCollectProfiles, events[0].Step)
	assert.Equal(t, StepAnalyze, events[1].Step)
	assert.Equal(t, StepScreen, events[2].Step)
	assert.Equal(t, StepReport, events[3].Step)
	// Every event in a run carries the same run ID.
	for _, event := range events[1:] {
		assert.Equal(t, events[0].RunID, event.RunID)
	}
	assert.NotEmpty(t, events[0].RunID)
}

func TestRun_NoMatchesStopsAfterAnalysis(t *testing.T) {
	analysis := &fakeAnalysis{analysis: types.AnalysisResult{NoMatches: true}}

	var events []ProgressEvent
	opts := RunOptions{
		OnProgress: func(event ProgressEvent) { events = append(events, event) },
	}

	var buf bytes.Buffer
	err := run(context.Background(), opts, &fakeCollector{}, analysis, observability.NewPrinter(&buf))
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, StepCollectProfiles, events[0].Step)
	assert.Equal(t, StepAnalyze, events[1].Step)
	assert.Empty(t, analysis.screenQuery)
}

func TestRun_ReportFailure(t *testing.T) {
	analysis := &fakeAnalysis{
		analysis:  matchedAnalysis(),
		screening: types.ScreeningResult{Candidates: []types.CandidateScore{{ScoreText: "8"}}},
		reportErr: errors.New("quota exceeded"),
	}

	var buf bytes.Buffer
	err := run(context.Background(), RunOptions{}, &fakeCollector{}, analysis, observability.NewPrinter(&buf))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating report failed")
}

func TestRunPipeline_RequiresAPIKey(t *testing.T) {
	err := RunPipeline(context.Background(), RunOptions{})
	assert.Error(t, err)
}
