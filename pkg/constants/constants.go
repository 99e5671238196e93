// Package constants provides shared constants for the saas-metrics application.
package constants

// Unit scale constants. ARR-style inputs arrive in a mix of $M and $K; these
// factors are the only sanctioned way to move between scales.
const (
	// ThousandsPerMillion converts a $M quantity to $K.
	ThousandsPerMillion = 1000.0

	// DollarsPerThousand converts a $K quantity to raw dollars.
	DollarsPerThousand = 1000.0

	// DollarsPerMillion converts a $M quantity to raw dollars.
	DollarsPerMillion = 1000000.0

	// MonthsPerYear is the number of months in a year.
	MonthsPerYear = 12

	// DaysPerMonth is the simplified month length used for pipeline velocity.
	DaysPerMonth = 30.0

	// PercentageMultiplier is used for percentage conversions.
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places).
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent).
	CurrencyTolerance = 0.01
)

// Focus-mode opacity levels for the relationship graph.
const (
	// OpacityFocused is applied to the selected node.
	OpacityFocused = 1.0

	// OpacityPrimary is applied to direct inputs and outputs of the selected node.
	OpacityPrimary = 0.8

	// OpacitySecondary is applied to the two-degree neighborhood.
	OpacitySecondary = 0.6

	// OpacityDimmed is applied to everything outside the focus neighborhood.
	OpacityDimmed = 0.2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultIndustry is the input profile used when none is configured.
	DefaultIndustry = "enterprise-saas"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Graph traversal defaults
const (
	// DefaultTraversalDepth bounds upstream/downstream path expansion.
	DefaultTraversalDepth = 3
)

// Sparkline defaults
const (
	// DefaultSparklinePoints is the number of synthetic history points generated
	// per metric.
	DefaultSparklinePoints = 12

	// SparklineVolatility is the relative noise amplitude around the current value.
	SparklineVolatility = 0.08
)
