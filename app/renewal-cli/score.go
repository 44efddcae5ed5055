package main

import (
	"customerRenewal/business/evaluation"
	"fmt"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a customer record locally",
	Long:  "Computes the heuristic renewal score, its confidence label and the recommended actions for one record. The remote classifier is not called.",
	RunE:  runScore,
}

var scoreFile string

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to feature record JSON file, or - for stdin (required)")
	_ = scoreCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	record, err := readRecord(scoreFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	svc := evaluation.NewEvaluationService(nil, nil)
	if err := writeJSON(cmd.OutOrStdout(), svc.Assess(record)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
