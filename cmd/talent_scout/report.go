package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/analyzer"
	"github.com/jonathan/talent-scout/internal/observability"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Screen stored candidates and generate a hiring report",
	Long:  "Retrieve and score the best-matching stored profiles for a role, then summarize the scores into a final hiring report.",
	RunE:  runReport,
}

var (
	reportRole         string
	reportDescription  string
	reportK            int
	reportDelaySeconds int
	reportAPIKey       string
	reportVerbose      bool
	reportStore        storeFlags
)

func init() {
	reportCmd.Flags().StringVarP(&reportRole, "role", "r", "", "Job role to report on (required)")
	reportCmd.Flags().StringVarP(&reportDescription, "description", "d", "", "Job description used for retrieval and scoring (required)")
	reportCmd.Flags().IntVarP(&reportK, "k", "k", 5, "Number of profiles to retrieve")
	reportCmd.Flags().IntVar(&reportDelaySeconds, "delay", 2, "Seconds to pause between scoring calls")
	reportCmd.Flags().StringVar(&reportAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print detailed debug information")
	reportCmd.Flags().StringVar(&reportStore.collection, "collection", "", "Document store collection name")
	reportCmd.Flags().StringVar(&reportStore.dataDir, "data-dir", "", "Directory for file-backed persistence (optional, defaults to DATA_DIR env var)")
	reportCmd.Flags().StringVar(&reportStore.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = reportCmd.MarkFlagRequired("role")
	_ = reportCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey, err := resolveAPIKey(reportAPIKey)
	if err != nil {
		return err
	}

	reportStore.resolve()
	documents, provider, err := openStore(ctx, apiKey, reportStore)
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
	analysis.SetDelay(time.Duration(reportDelaySeconds) * time.Second)

	fmt.Fprintf(os.Stdout, "Screening candidates for %q...\n", reportRole)
	screening := analysis.Screen(ctx, analyzer.BuildQuery(reportRole, reportDescription), reportK)

	printer := observability.NewPrinter(os.Stdout)
	if reportVerbose {
		printer.PrintScreening(screening)
	}

	if len(screening.Candidates) == 0 {
		fmt.Fprintf(os.Stdout, "No stored profiles matched; nothing to report.\n")
		return nil
	}

	report, err := analysis.GenerateReport(ctx, screening)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	printer.PrintReport(report)

	return nil
}
