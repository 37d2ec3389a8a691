package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-scout/internal/config"
	"github.com/jonathan/talent-scout/internal/pipeline"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full sourcing pipeline end-to-end",
	Long: `Orchestrates the entire sourcing process: discovery -> fetching -> normalization -> storage -> analysis -> screening -> report.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath   string
	runRole         string
	runLocation     string
	runCount        int
	runDescription  string
	runK            int
	runCollection   string
	runDataDir      string
	runDatabaseURL  string
	runAPIKey       string
	runRapidAPIKey  string
	runRapidAPIHost string
	runDelaySecs    int
	runUseBrowser   bool
	runVerbose      bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRole, "role", "r", "", "Job role to source candidates for")
	runCommand.Flags().StringVarP(&runLocation, "location", "l", "", "Geographic location filter")
	runCommand.Flags().IntVarP(&runCount, "count", "n", 0, "Number of profiles to collect")
	runCommand.Flags().StringVarP(&runDescription, "description", "d", "", "Job description used for retrieval and analysis")
	runCommand.Flags().IntVarP(&runK, "k", "k", 0, "Number of profiles to retrieve per query")
	runCommand.Flags().StringVar(&runCollection, "collection", "", "Document store collection name")
	runCommand.Flags().StringVar(&runDataDir, "data-dir", "", "Directory for file-backed persistence")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().IntVar(&runDelaySecs, "delay", 0, "Seconds to pause between scoring calls")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JS-heavy result pages (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API keys can be passed as flags, or read from env vars
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	runCommand.Flags().StringVar(&runRapidAPIKey, "rapidapi-key", "", "RapidAPI key for the profile API (optional, defaults to RAPIDAPI_KEY env var)")
	runCommand.Flags().StringVar(&runRapidAPIHost, "rapidapi-host", "", "RapidAPI host override (optional, defaults to RAPIDAPI_HOST env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("role") {
		cfg.Role = runRole
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = runLocation
	}
	if cmd.Flags().Changed("count") {
		cfg.Count = runCount
	}
	if cmd.Flags().Changed("description") {
		cfg.Description = runDescription
	}
	if cmd.Flags().Changed("k") {
		cfg.K = runK
	}
	if cmd.Flags().Changed("collection") {
		cfg.Collection = runCollection
	}
	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir = runDataDir
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("rapidapi-key") {
		cfg.RapidAPIKey = runRapidAPIKey
	}
	if cmd.Flags().Changed("rapidapi-host") {
		cfg.RapidAPIHost = runRapidAPIHost
	}
	if cmd.Flags().Changed("delay") {
		cfg.DelaySeconds = runDelaySecs
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Count:        5,
		K:            5,
		DelaySeconds: 2,
	})

	// Step 4: Environment fallbacks for credentials and storage
	cfg.ApplyEnv()

	// Step 5: Validate required fields
	if cfg.Role == "" {
		return fmt.Errorf("--role must be provided (via flag or config)")
	}
	if cfg.Description == "" {
		return fmt.Errorf("--description must be provided (via flag or config)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.RapidAPIKey == "" {
		return fmt.Errorf("RAPIDAPI_KEY environment variable or --rapidapi-key flag is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pipeline.RunPipeline(ctx, pipeline.RunOptions{
		Role:         cfg.Role,
		Location:     cfg.Location,
		Count:        cfg.Count,
		Description:  cfg.Description,
		K:            cfg.K,
		Collection:   cfg.Collection,
		DataDir:      cfg.DataDir,
		DatabaseURL:  cfg.DatabaseURL,
		APIKey:       cfg.APIKey,
		RapidAPIKey:  cfg.RapidAPIKey,
		RapidAPIHost: cfg.RapidAPIHost,
		UseBrowser:   cfg.UseBrowser,
		Verbose:      cfg.Verbose,
		Delay:        time.Duration(cfg.DelaySeconds) * time.Second,
	})
}
