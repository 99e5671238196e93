// Package config defines the calculator's configuration and input records and
// includes functions for loading and validating them.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/saas-metrics/pkg/constants"
	"github.com/iwvelando/saas-metrics/pkg/validation"
)

// Configuration holds all configuration for saas-metrics.
type Configuration struct {
	Industry string        `yaml:"industry,omitempty" mapstructure:"industry"`
	Inputs   Inputs        `yaml:"inputs,omitempty" mapstructure:"inputs"`
	Logging  LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Output   OutputConfig  `yaml:"output,omitempty" mapstructure:"output"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" mapstructure:"format"` // pretty, csv
}

// Load reads the YAML configuration at path and merges it over the defaults
// for the configured industry. Fields absent from the file keep their profile
// defaults, so a config file only needs the handful of inputs being edited.
// Environment variables prefixed SAAS_METRICS_ override file values.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("SAAS_METRICS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, eris.Wrapf(err, "config: read %s", path)
	}

	// The industry profile supplies defaults for every input field, so it has
	// to be resolved before the inputs block is decoded over it.
	industry := v.GetString("industry")
	if industry == "" {
		industry = constants.DefaultIndustry
	}

	conf := &Configuration{
		Industry: industry,
		Inputs:   DefaultInputs(industry),
		Logging:  LoggingConfig{Level: "info", Format: "json"},
		Output:   OutputConfig{Format: constants.OutputFormatPretty},
	}
	if err := v.Unmarshal(conf); err != nil {
		return nil, eris.Wrap(err, "config: decode")
	}

	return conf, nil
}

// ValidateInputs performs soft validation of an input record and returns
// warnings. Nothing here is fatal; the engine is total and downstream
// consumers expect a result even for questionable inputs.
func ValidateInputs(in Inputs) []string {
	var warnings []string

	appendWarning := func(w string) {
		if w != "" {
			warnings = append(warnings, w)
		}
	}

	appendWarning(validation.CheckPercent("mqlToSQLConversion", in.MQLToSQLConversion))
	appendWarning(validation.CheckPercent("sqlToOppConversion", in.SQLToOppConversion))
	appendWarning(validation.CheckPercent("winRate", in.WinRate))
	appendWarning(validation.CheckPercent("cogsPercent", in.COGSPercent))

	appendWarning(validation.CheckNonNegative("beginningARR", in.BeginningARR))
	appendWarning(validation.CheckNonNegative("totalCustomers", in.TotalCustomers))
	appendWarning(validation.CheckNonNegative("totalSalesMarketing", in.TotalSalesMarketing))
	appendWarning(validation.CheckNonNegative("marketingSpend", in.MarketingSpend))
	appendWarning(validation.CheckNonNegative("rdSpend", in.RDSpend))
	appendWarning(validation.CheckNonNegative("gaSpend", in.GASpend))

	appendWarning(validation.CheckOrdering("mqlsGenerated", in.MQLsGenerated, "leadsGenerated", in.LeadsGenerated))
	appendWarning(validation.CheckOrdering("customersChurned", in.CustomersChurned, "totalCustomers", in.TotalCustomers))
	appendWarning(validation.CheckOrdering("engagedAccounts", in.EngagedAccounts, "targetAccounts", in.TargetAccounts))
	appendWarning(validation.CheckOrdering("paidClicks", in.PaidClicks, "paidImpressions", in.PaidImpressions))

	if in.ChurnedARR > in.BeginningARR*constants.ThousandsPerMillion {
		warnings = append(warnings, "churnedARR exceeds beginning ARR; retention metrics will be negative")
	}

	return warnings
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LoggingConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level := cfg.Level
	if level == "" {
		level = "info"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(parsed)

	if cfg.OutputFile != "" {
		zapCfg.OutputPaths = []string{cfg.OutputFile}
		zapCfg.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
