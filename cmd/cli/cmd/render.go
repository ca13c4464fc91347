package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"service-pricing/core/output"
	"service-pricing/core/scenario"
	"service-pricing/internal/config"
	"service-pricing/internal/errors"
	"service-pricing/internal/logging"
)

// render evaluates scenarios and writes them in the selected format
func render(cmd *cobra.Command, source string, scenarios []scenario.Scenario) error {
	cfg := config.Get()

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter, err := output.NewDefaultRegistry(cfg.Output.ShowReport).Lookup(format)
	if err != nil {
		return err
	}

	results, err := scenario.EvaluateAll(cmd.Context(), scenarios)
	if err != nil {
		return err
	}

	result := output.NewResult(source, cfg.Pricing.Currency, results)
	log := logging.With(zap.String("id", result.ID), zap.String("source", source))
	log.Debug("rendering result",
		zap.String("format", format),
		zap.Int("scenarios", len(results)),
	)
	if err := formatter.Render(cmd.OutOrStdout(), result); err != nil {
		return errors.Internal("failed to write "+format+" output", err)
	}
	return nil
}
