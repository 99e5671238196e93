package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/saas-metrics/internal/config"
	"github.com/iwvelando/saas-metrics/internal/metrics"
	"github.com/iwvelando/saas-metrics/pkg/output"
	"github.com/iwvelando/saas-metrics/pkg/validation"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute the full metrics record from the configured inputs",
	RunE:  runCalculate,
}

func init() {
	f := calculateCmd.Flags()
	f.String("output-format", "", "type of output override: pretty, csv")
	f.String("industry", "", "industry profile override ("+strings.Join(config.Industries(), ", ")+")")

	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	log := zap.L().With(zap.String("command", "calculate"))

	inputs := cfg.Inputs
	industry := cfg.Industry
	if override, _ := cmd.Flags().GetString("industry"); override != "" {
		industry = override
		inputs = config.DefaultInputs(industry)
	}

	outputFormat := cfg.Output.Format
	if override, _ := cmd.Flags().GetString("output-format"); override != "" {
		outputFormat = override
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		return eris.Wrap(err, "calculate: output format")
	}

	warnings := config.ValidateInputs(inputs)
	for _, warning := range warnings {
		log.Warn("input warning", zap.String("warning", warning))
	}

	calculated := metrics.Calculate(inputs)
	report := output.Report{
		Industry:   industry,
		Inputs:     inputs,
		Metrics:    calculated,
		KeyMetrics: metrics.KeyMetrics(inputs, calculated),
		Warnings:   warnings,
	}

	switch outputFormat {
	case "csv":
		output.CsvFormat(report)
	default:
		output.PrettyFormat(report)
	}

	return nil
}
