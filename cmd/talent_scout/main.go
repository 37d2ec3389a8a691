// Package main provides the entry point for the Talent Scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "talent_scout",
	Short: "Talent Scout candidate sourcing CLI",
	Long:  "Talent Scout discovers public candidate profiles for a role, stores them in a vector document store, and produces retrieval-augmented analyses, screening scores, and hiring reports.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
