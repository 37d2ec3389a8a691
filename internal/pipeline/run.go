// Package pipeline provides the high-level orchestration for the candidate
// sourcing run: collect profiles, analyze them against the role, screen each
// candidate, and produce a hiring report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-scout/internal/analyzer"
	"github.com/jonathan/talent-scout/internal/embedding"
	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/profile"
	"github.com/jonathan/talent-scout/internal/profileapi"
	"github.com/jonathan/talent-scout/internal/search"
	"github.com/jonathan/talent-scout/internal/store"
	"github.com/jonathan/talent-scout/internal/types"
)

// Step and category names used in progress events.
const (
	CategoryCollection = "collection"
	CategoryAnalysis   = "analysis"
	CategoryScreening  = "screening"
	CategoryReporting  = "reporting"

	StepCollectProfiles = "collect_profiles"
	StepAnalyze         = "analyze_candidates"
	StepScreen          = "screen_candidates"
	StepReport          = "generate_report"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Role         string
	Location     string
	Count        int
	Description  string
	K            int
	Collection   string
	DataDir      string
	DatabaseURL  string
	APIKey       string
	RapidAPIKey  string
	RapidAPIHost string
	UseBrowser   bool
	Verbose      bool
	Delay        time.Duration
	OnProgress   ProgressCallback
}

// collectorStage is the profile-acquisition surface of the run.
type collectorStage interface {
	Collect(ctx context.Context, role, location string, count int) []types.CandidateProfile
}

// analysisStage is the retrieval-and-generation surface of the run.
type analysisStage interface {
	Analyze(ctx context.Context, jobRole, jobDescription string, k int) types.AnalysisResult
	Screen(ctx context.Context, query string, k int) types.ScreeningResult
	GenerateReport(ctx context.Context, screening types.ScreeningResult) (string, error)
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, category, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:     step,
			Category: category,
			Message:  message,
			RunID:    runID,
			Content:  content,
		})
	}
}

// RunPipeline orchestrates the full sourcing run. The four stages execute
// strictly in order; each consumes the durable output of the previous one
// through the document store rather than in-memory handoff, so a run can be
// resumed from any stage against the same collection.
func RunPipeline(ctx context.Context, opts RunOptions) error {
	if opts.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	printer := observability.NewPrinter(os.Stdout)

	provider, err := embedding.NewGeminiProvider(ctx, opts.APIKey, "")
	if err != nil {
		return fmt.Errorf("creating embedding provider failed: %w", err)
	}
	defer provider.Close()

	documents, err := store.Open(ctx, store.Config{
		Collection:  opts.Collection,
		DataDir:     opts.DataDir,
		DatabaseURL: opts.DatabaseURL,
		Embedder:    provider,
	})
	if err != nil {
		return fmt.Errorf("opening document store failed: %w", err)
	}
	defer documents.Close()

	client, err := llm.NewClient(ctx, nil, opts.APIKey)
	if err != nil {
		return fmt.Errorf("creating LLM client failed: %w", err)
	}
	defer client.Close()

	searcher := search.NewWebSearcher(&search.WebSearcherConfig{
		UseBrowser: opts.UseBrowser,
		Verbose:    opts.Verbose,
	})

	fetcher, err := profileapi.NewClient(&profileapi.Config{
		APIKey:  opts.RapidAPIKey,
		APIHost: opts.RapidAPIHost,
	})
	if err != nil {
		return fmt.Errorf("creating profile API client failed: %w", err)
	}

	collector := profile.NewCollector(search.NewDiscoverer(searcher), fetcher, documents)
	analysis := analyzer.New(documents, client)
	analysis.SetDelay(opts.Delay)

	return run(ctx, opts, collector, analysis, printer)
}

// run executes the four stages against already-constructed components.
func run(ctx context.Context, opts RunOptions, collector collectorStage, analysis analysisStage, printer *observability.Printer) error {
	runID := uuid.New().String()

	fmt.Printf("Step 1/4: Collecting up to %d profiles for %q...\n", opts.Count, opts.Role)
	profiles := collector.Collect(ctx, opts.Role, opts.Location, opts.Count)
	if opts.Verbose {
		printer.PrintCollectedProfiles(profiles)
	}
	emitProgress(&opts, runID, StepCollectProfiles, CategoryCollection,
		fmt.Sprintf("Collected %d profiles", len(profiles)), nil)

	fmt.Printf("Step 2/4: Analyzing candidates against the role...\n")
	result := analysis.Analyze(ctx, opts.Role, opts.Description, opts.K)
	if opts.Verbose {
		printer.PrintQueryResults(result.Profiles)
	}
	printer.PrintAnalysis(result)
	emitProgress(&opts, runID, StepAnalyze, CategoryAnalysis,
		fmt.Sprintf("Analyzed %d retrieved profiles", len(result.Profiles)), result)

	if result.NoMatches {
		fmt.Printf("No stored profiles matched; skipping screening and report.\n")
		return nil
	}

	fmt.Printf("Step 3/4: Screening candidates individually...\n")
	screening := analysis.Screen(ctx, result.Query, opts.K)
	printer.PrintScreening(screening)
	emitProgress(&opts, runID, StepScreen, CategoryScreening,
		fmt.Sprintf("Scored %d candidates", len(screening.Candidates)), screening)

	fmt.Printf("Step 4/4: Generating hiring report...\n")
	report, err := analysis.GenerateReport(ctx, screening)
	if err != nil {
		return fmt.Errorf("generating report failed: %w", err)
	}
	printer.PrintReport(report)
	emitProgress(&opts, runID, StepReport, CategoryReporting, "Generated hiring report", nil)

	fmt.Printf("Done! Run %s complete.\n", runID)
	return nil
}
