// Package analyzer implements retrieval-augmented candidate analysis:
// retrieve the best-matching profiles for a role, assemble them into a
// deterministic prompt context, and delegate the comparative evaluation to
// a text-generation provider.
package analyzer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

// Generator is the text-generation capability the analyzer delegates to.
// llm.Client satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Retriever is the document-store read surface the analyzer needs.
type Retriever interface {
	Query(ctx context.Context, queryText string, k int) []types.QueryResult
}

// Analyzer runs retrieval-augmented analysis over a profile collection.
type Analyzer struct {
	retriever Retriever
	generator Generator
	delay     time.Duration
}

// New creates an Analyzer.
func New(retriever Retriever, generator Generator) *Analyzer {
	return &Analyzer{retriever: retriever, generator: generator}
}

// SetDelay sets the pause inserted between consecutive generation calls
// during screening. Zero means no pause.
func (a *Analyzer) SetDelay(d time.Duration) {
	a.delay = d
}

// Analyze evaluates candidates for a role. An empty retrieval produces a
// NoMatches result and a generation failure produces an Error result; both
// are returned values, never panics, so the caller always gets a shaped
// outcome.
func (a *Analyzer) Analyze(ctx context.Context, jobRole, jobDescription string, k int) types.AnalysisResult {
	searchQuery := BuildQuery(jobRole, jobDescription)

	results := a.retriever.Query(ctx, searchQuery, k)
	if len(results) == 0 {
		return types.AnalysisResult{Query: searchQuery, NoMatches: true}
	}

	template := prompts.MustGet("analysis.json", "analyze-candidates")
	prompt := prompts.Format(template, map[string]string{
		"JobRole":        jobRole,
		"JobDescription": jobDescription,
		"FormattedDocs":  FormatDocs(results),
	})

	analysis, err := a.generator.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return types.AnalysisResult{
			Query:    searchQuery,
			Profiles: results,
			Error:    fmt.Sprintf("analysis failed: %v", err),
		}
	}

	return types.AnalysisResult{
		Analysis: analysis,
		Profiles: results,
		Query:    searchQuery,
	}
}

// BuildQuery combines a role and description into the retrieval query text.
// Screening reuses it so both stages rank against the same embedding.
func BuildQuery(jobRole, jobDescription string) string {
	return fmt.Sprintf("%s with skills matching: %s", jobRole, jobDescription)
}

// FormatDocs renders retrieved profiles as numbered context blocks, in the
// retrieval order. The generation provider sees the best match first, which
// is deliberate: it primes the narrative toward the strongest candidates.
func FormatDocs(results []types.QueryResult) string {
	blocks := make([]string, 0, len(results))
	for i, result := range results {
		var sb strings.Builder
		fmt.Fprintf(&sb, "PROFILE %d:\n", i+1)
		fmt.Fprintf(&sb, "Name: %s\n", orUnknown(result.Metadata.Name))
		fmt.Fprintf(&sb, "Title: %s\n", orUnknown(result.Metadata.Title))
		fmt.Fprintf(&sb, "LinkedIn: %s\n\n", orUnknown(result.Metadata.URL))
		sb.WriteString(result.Document)
		sb.WriteString("\n")
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

func orUnknown(value string) string {
	if value == "" {
		return "Unknown"
	}
	return value
}
