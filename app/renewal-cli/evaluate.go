package main

import (
	"context"
	"customerRenewal/business/evaluation"
	"customerRenewal/internal/repository/predictor"
	"customerRenewal/pkg/config"
	"customerRenewal/pkg/logger"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a customer record against the remote classifier",
	Long:  "Runs the local scorer and recommendation selector, then asks the remote classifier for a renewal verdict. Local results are always printed; a classifier failure makes the command exit non-zero.",
	RunE:  runEvaluate,
}

var (
	evaluateFile     string
	evaluateLogLevel string
)

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFile, "file", "f", "", "Path to feature record JSON file, or - for stdin (required)")
	evaluateCmd.Flags().StringVar(&evaluateLogLevel, "log-level", "warn", "Log level written to stderr")
	_ = evaluateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	record, err := readRecord(evaluateFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.InitWithWriter(os.Stderr, cfg.App.Environment, evaluateLogLevel)

	repo := predictor.NewPredictorRepository(predictor.PredictorConfig{
		EndpointURL:   cfg.Predictor.EndpointURL,
		Token:         cfg.Predictor.Token,
		AuthScheme:    cfg.Predictor.AuthScheme,
		BasicUsername: cfg.Predictor.BasicUsername,
		BasicPassword: cfg.Predictor.BasicPassword,
		Timeout:       cfg.Predictor.Timeout,
		ContactID:     cfg.Predictor.ContactID,
	})
	svc := evaluation.NewEvaluationService(repo, nil)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ev, err := svc.Evaluate(ctx, record)
	if err != nil {
		return err
	}
	if err := writeJSON(cmd.OutOrStdout(), ev); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if ev.Prediction.Failed() {
		return errors.New(ev.Prediction.Error.Message)
	}
	return nil
}
