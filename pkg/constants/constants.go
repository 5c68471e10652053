// Package constants provides shared constants for the penalty-estimator application.
package constants

// DateTimeLayout is the format expected for due and settled dates in case
// files.
const DateTimeLayout = "2006-01"

// Adjustment constants shared by the evaluators.
const (
	// RepeatOffenseMultiplier scales a jurisdiction-adjusted traffic fine
	// when prior offenses are flagged.
	RepeatOffenseMultiplier = "1.5"

	// BusinessEntityMultiplier scales a tax penalty when the filer is a
	// business.
	BusinessEntityMultiplier = "1.2"

	// DefaultJurisdictionMultiplier applies to unknown jurisdiction codes.
	DefaultJurisdictionMultiplier = "1.0"

	// MonthlyAccrualRate is the per-month accrual shared by the time-based tax
	// penalty types.
	MonthlyAccrualRate = "0.01"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Digit grouping constants
const (
	// GroupingIndian groups as 12,34,567 (lakh/crore).
	GroupingIndian = "indian"

	// GroupingWestern groups as 1,234,567.
	GroupingWestern = "western"

	// DefaultCurrencySymbol is prefixed to formatted amounts.
	DefaultCurrencySymbol = "₹"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default case file name
	DefaultConfigFile = "cases.yaml"

	// ExampleConfigFile is the example case file name
	ExampleConfigFile = "cases.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// ServerAddressEnv overrides the configured listen address
	ServerAddressEnv = "PENALTY_SERVER_ADDR"
)
