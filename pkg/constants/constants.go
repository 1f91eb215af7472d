// Package constants provides shared constants for the accounting-tutor application.
package constants

// Formula constants
const (
	// DaysPerYear is the day-count basis used for discounting bills
	DaysPerYear = 365

	// MonthsPerYear is the month-count basis used for renewal interest
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultProfitRatio is the profit share (in percent) assumed for a
	// co-venturer when no usable ratio was entered
	DefaultProfitRatio = 50.0

	// DisplayDecimals is the precision used when presenting money amounts
	DisplayDecimals = 2
)

// CurrencySymbol prefixes formatted money amounts.
const CurrencySymbol = "₹"

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// EnvPrefix prefixes environment variable overrides, e.g. ACCOUNTING_TUTOR_SERVER_ADDRESS
	EnvPrefix = "ACCOUNTING_TUTOR"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultReadTimeout is the default HTTP read timeout
	DefaultReadTimeout = "10s"

	// DefaultWriteTimeout is the default HTTP write timeout
	DefaultWriteTimeout = "10s"
)

// Identity provider defaults
const (
	// DefaultIdentityEndpoint is the base URL of the Identity Toolkit REST API
	DefaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"

	// DefaultAuthTimeout bounds a single identity provider call
	DefaultAuthTimeout = "15s"
)
