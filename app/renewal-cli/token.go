package main

import (
	"customerRenewal/pkg/utils"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token for the evaluation history endpoints",
	RunE:  runToken,
}

var (
	tokenSubject string
	tokenRole    string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "ops", "Token subject")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "ADMIN", "Token role")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	token, err := utils.GenerateJWT(os.Getenv("JWT_SECRET"), tokenSubject, tokenRole, tokenTTL)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
