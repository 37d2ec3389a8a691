package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze stored candidates against a role",
	Long:  "Retrieve the best-matching stored profiles for a role and job description and generate a comparative analysis with interview recommendations.",
	RunE:  runAnalyze,
}

var (
	analyzeRole        string
	analyzeDescription string
	analyzeK           int
	analyzeAPIKey      string
	analyzeVerbose     bool
	analyzeStore       storeFlags
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Job role to analyze candidates for (required)")
	analyzeCmd.Flags().StringVarP(&analyzeDescription, "description", "d", "", "Job description used for retrieval and analysis (required)")
	analyzeCmd.Flags().IntVarP(&analyzeK, "k", "k", 5, "Number of profiles to retrieve")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().StringVar(&analyzeStore.collection, "collection", "", "Document store collection name")
	analyzeCmd.Flags().StringVar(&analyzeStore.dataDir, "data-dir", "", "Directory for file-backed persistence (optional, defaults to DATA_DIR env var)")
	analyzeCmd.Flags().StringVar(&analyzeStore.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = analyzeCmd.MarkFlagRequired("role")
	_ = analyzeCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey, err := resolveAPIKey(analyzeAPIKey)
	if err != nil {
		return err
	}

	analyzeStore.resolve()
	documents, provider, err := openStore(ctx, apiKey, analyzeStore)
	if err != nil {
		return err
	}
	defer provider.Close()
	defer documents.Close()

	analysis, client, err := newAnalyzer(ctx, apiKey, documents)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Fprintf(os.Stdout, "Analyzing candidates for %q...\n", analyzeRole)
	result := analysis.Analyze(ctx, analyzeRole, analyzeDescription, analyzeK)

	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		printer.PrintQueryResults(result.Profiles)
	}
	printer.PrintAnalysis(result)

	return nil
}
