// Package main provides the renewal command line tool for scoring and
// evaluating customer records without running the HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "renewal",
	Short:        "Customer renewal evaluation tool",
	Long:         "Scores customer feature records locally, suggests follow-up actions and asks the remote classifier whether the customer is likely to renew.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
