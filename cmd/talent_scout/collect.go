package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/observability"
	"github.com/jonathan/talent-scout/internal/profile"
	"github.com/jonathan/talent-scout/internal/profileapi"
	"github.com/jonathan/talent-scout/internal/search"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Discover and store candidate profiles for a role",
	Long:  "Search the web for public profile identifiers matching a role and location, fetch each profile, normalize it, and store it in the vector document store.",
	RunE:  runCollect,
}

var (
	collectRole         string
	collectLocation     string
	collectCount        int
	collectAPIKey       string
	collectRapidAPIKey  string
	collectRapidAPIHost string
	collectUseBrowser   bool
	collectVerbose      bool
	collectStore        storeFlags
)

func init() {
	collectCmd.Flags().StringVarP(&collectRole, "role", "r", "", "Job role to search candidates for (required)")
	collectCmd.Flags().StringVarP(&collectLocation, "location", "l", "", "Geographic location filter")
	collectCmd.Flags().IntVarP(&collectCount, "count", "n", 5, "Number of profiles to collect")
	collectCmd.Flags().StringVar(&collectAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	collectCmd.Flags().StringVar(&collectRapidAPIKey, "rapidapi-key", "", "RapidAPI key for the profile API (optional, defaults to RAPIDAPI_KEY env var)")
	collectCmd.Flags().StringVar(&collectRapidAPIHost, "rapidapi-host", "", "RapidAPI host override (optional, defaults to RAPIDAPI_HOST env var)")
	collectCmd.Flags().BoolVar(&collectUseBrowser, "use-browser", false, "Use headless browser for JS-heavy result pages (requires Chrome)")
	collectCmd.Flags().BoolVarP(&collectVerbose, "verbose", "v", false, "Print detailed debug information")
	collectCmd.Flags().StringVar(&collectStore.collection, "collection", "", "Document store collection name")
	collectCmd.Flags().StringVar(&collectStore.dataDir, "data-dir", "", "Directory for file-backed persistence (optional, defaults to DATA_DIR env var)")
	collectCmd.Flags().StringVar(&collectStore.databaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	_ = collectCmd.MarkFlagRequired("role")

	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	apiKey, err := resolveAPIKey(collectAPIKey)
	if err != nil {
		return err
	}

	rapidAPIKey := collectRapidAPIKey
	if rapidAPIKey == "" {
		rapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	}
	rapidAPIHost := collectRapidAPIHost
	if rapidAPIHost == "" {
		rapidAPIHost = os.Getenv("RAPIDAPI_HOST")
	}

	collectStore.resolve()
	documents, provider, err := openStore(ctx, apiKey, collectStore)
	if err != nil {
		return err
	}
	defer provider.Close()
	defer documents.Close()

	fetcher, err := profileapi.NewClient(&profileapi.Config{
		APIKey:  rapidAPIKey,
		APIHost: rapidAPIHost,
	})
	if err != nil {
		return fmt.Errorf("RAPIDAPI_KEY environment variable or --rapidapi-key flag is required: %w", err)
	}

	searcher := search.NewWebSearcher(&search.WebSearcherConfig{
		UseBrowser: collectUseBrowser,
		Verbose:    collectVerbose,
	})
	collector := profile.NewCollector(search.NewDiscoverer(searcher), fetcher, documents)

	fmt.Fprintf(os.Stdout, "Collecting up to %d profiles for %q...\n", collectCount, collectRole)
	profiles := collector.Collect(ctx, collectRole, collectLocation, collectCount)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintCollectedProfiles(profiles)

	return nil
}
