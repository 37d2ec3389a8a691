package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/talent-scout/internal/llm"
	"github.com/jonathan/talent-scout/internal/prompts"
	"github.com/jonathan/talent-scout/internal/types"
)

// GenerateReport produces a narrative hiring report from screening scores.
func (a *Analyzer) GenerateReport(ctx context.Context, screening types.ScreeningResult) (string, error) {
	if len(screening.Candidates) == 0 {
		return "", fmt.Errorf("no candidates to report on")
	}

	var lines []string
	for _, candidate := range screening.Candidates {
		name := candidate.Metadata.Name
		if name == "" {
			name = candidate.Metadata.Identifier
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, candidate.ScoreText))
	}

	template := prompts.MustGet("analysis.json", "generate-report")
	prompt := prompts.Format(template, map[string]string{
		"CandidateScores": strings.Join(lines, "\n"),
	})

	report, err := a.generator.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", fmt.Errorf("failed to generate report: %w", err)
	}
	return report, nil
}
