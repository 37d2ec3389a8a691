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

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Score stored candidates individually against a role",
	Long:  "Retrieve the best-matching stored profiles for a role and score each one 1-10 with a separate, rate-limited generation call.",
	RunE:  runScreen,
}

var (
	screenRole         string
	screenDescription  string
	screenK            int
	screenDelaySeconds int
	screenAPIKey       string
	screenStore        storeFlags
)

func init() {
	screenCmd.Flags().StringVarP(&screenRole, "role", "r", "", "Job role to screen candidates for (required)")
	screenCmd.Flags().StringVarP(&screenDescription, "description", "d", "", "Job description used for retrieval and scoring (required)")
	screenCmd.Flags().IntVarP(&screenK, "k", "k", 5, "Number of profiles to retrieve")
	screenCmd.Flags().IntVar(&screenDelaySeconds, "delay", 2, "Seconds to pause between scoring calls")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	screenCmd.Flags().StringVar(&screenStore.collection, "collection", "", "Document store collection name")
	screenCmd.Flags().StringVar(&screenStore.dataDir, "data-dir", "", "Directory for file-backed persistence (optional, defaults to DATA_DIR env var)")
	screenCmd.Flags().StringVar(&screenStore.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = screenCmd.MarkFlagRequired("role")
	_ = screenCmd.MarkFlagRequired("description")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey, err := resolveAPIKey(screenAPIKey)
	if err != nil {
		return err
	}

	screenStore.resolve()
	documents, provider, err := openStore(ctx, apiKey, screenStore)
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
	analysis.SetDelay(time.Duration(screenDelaySeconds) * time.Second)

	fmt.Fprintf(os.Stdout, "Screening candidates for %q...\n", screenRole)
	screening := analysis.Screen(ctx, analyzer.BuildQuery(screenRole, screenDescription), screenK)

	observability.NewPrinter(os.Stdout).PrintScreening(screening)

	return nil
}
