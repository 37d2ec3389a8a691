// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-scout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCollectedProfiles outputs a summary of the profiles stored during collection.
func (p *Printer) PrintCollectedProfiles(profiles []types.CandidateProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profiles collected: %d\n", len(profiles)))

	count := min(len(profiles), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		profile := profiles[i]
		name := profile.DisplayName
		if name == "" {
			name = profile.Identifier
		}
		sb.WriteString(fmt.Sprintf("• %s", name))
		if profile.Headline != "" {
			headline := profile.Headline
			if len(headline) > 40 {
				headline = headline[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf(" — %s", headline))
		}
		sb.WriteString("\n")
	}
	if len(profiles) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(profiles)-maxItemsToShow))
	}

	p.printBox("COLLECTED PROFILES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQueryResults outputs retrieved profiles with similarity scores.
func (p *Printer) PrintQueryResults(results []types.QueryResult) {
	if len(results) == 0 {
		p.printBox("RETRIEVED PROFILES", "No matching profiles found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Retrieved %d profiles:\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		name := result.Metadata.Name
		if name == "" {
			name = result.ID
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Similarity: %.3f\n", result.Similarity))
		if result.Metadata.Title != "" {
			title := result.Metadata.Title
			if len(title) > 45 {
				title = title[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Title: %s\n", title))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(results)-maxItemsToShow))
	}

	p.printBox("RETRIEVED PROFILES", sb.String())
}

// PrintAnalysis outputs the analysis narrative, or the failure reason when
// retrieval or generation did not produce one.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintAnalysis(result types.AnalysisResult) {
	switch {
	case result.NoMatches:
		p.printBox("CANDIDATE ANALYSIS", "No stored profiles matched the query")
	case result.Error != "":
		p.printBox("CANDIDATE ANALYSIS", fmt.Sprintf("⚠ %s", result.Error))
	default:
		// The narrative is free-form prose; print it unboxed so long
		// lines survive intact.
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "CANDIDATE ANALYSIS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintln(p.out, result.Analysis)
	}
}

// PrintScreening outputs per-candidate screening scores.
func (p *Printer) PrintScreening(screening types.ScreeningResult) {
	if len(screening.Candidates) == 0 {
		p.printBox("SCREENING SCORES", "No candidates to screen")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scored %d candidates:\n\n", len(screening.Candidates)))

	for i, candidate := range screening.Candidates {
		name := candidate.Metadata.Name
		if name == "" {
			name = candidate.Metadata.Identifier
		}
		if candidate.Scored {
			sb.WriteString(fmt.Sprintf("• %s: %.1f/10\n", name, candidate.Score))
		} else {
			sb.WriteString(fmt.Sprintf("• %s: %s\n", name, candidate.ScoreText))
		}
		if i >= maxItemsToShow-1 && len(screening.Candidates) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(screening.Candidates)-maxItemsToShow))
			break
		}
	}

	p.printBox("SCREENING SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the final hiring report.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReport(report string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "HIRING REPORT")
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintln(p.out, report)
}
