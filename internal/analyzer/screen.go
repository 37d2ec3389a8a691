package analyzer

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

// Screen retrieves the top k profiles for a screening query and scores each
// one 1-10 with an individual generation call. A candidate whose score call
// fails is recorded as unscored and the batch continues. Consecutive calls
// are spaced by the configured delay to stay under provider rate limits.
func (a *Analyzer) Screen(ctx context.Context, query string, k int) types.ScreeningResult {
	screening := types.ScreeningResult{Query: query}

	results := a.retriever.Query(ctx, query, k)
	template := prompts.MustGet("analysis.json", "score-candidate")

	for i, result := range results {
		if i > 0 && a.delay > 0 {
			select {
			case <-ctx.Done():
				return screening
			case <-time.After(a.delay):
			}
		}
		prompt := prompts.Format(template, map[string]string{
			"Query":    query,
			"Document": result.Document,
		})

		scoreText, err := a.generator.GenerateContent(ctx, prompt, llm.TierLite)
		if err != nil {
			log.Printf("[SCREEN] Failed to score %s: %v", result.Metadata.Identifier, err)
			screening.Candidates = append(screening.Candidates, types.CandidateScore{
				Metadata:  result.Metadata,
				ScoreText: "N/A (provider error)",
			})
			continue
		}

		candidate := types.CandidateScore{
			Metadata:  result.Metadata,
			ScoreText: strings.TrimSpace(scoreText),
		}
		if score, ok := parseScore(scoreText); ok {
			candidate.Score = score
			candidate.Scored = true
		}
		screening.Candidates = append(screening.Candidates, candidate)
	}

	return screening
}

// parseScore extracts the leading numeric score from a generated response.
// Providers are told to lead with the number but sometimes prefix it
// ("Score: 8"), so the first number anywhere on the first line counts.
func parseScore(text string) (float64, bool) {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}

	fields := strings.FieldsFunc(firstLine, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	for _, field := range fields {
		score, err := strconv.ParseFloat(field, 64)
		if err != nil {
			continue
		}
		if score >= 0 && score <= 10 {
			return score, true
		}
	}
	return 0, false
}
