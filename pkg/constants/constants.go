// Package constants provides shared constants for the marui-portal application.
package constants

import "time"

// DateLayout is the format used for upload, input and creation dates.
const DateLayout = "2006-01-02"

// Calendar constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12
	// MonthsPerQuarter is the number of months rolled into one quarter
	MonthsPerQuarter = 3
	// QuartersPerYear is the number of quarters in a year
	QuartersPerYear = 4
	// WeeksPerMonth is the flat divisor used for weekly sales targets
	WeeksPerMonth = 4
)

// Metric constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
	// AchievedThreshold is the inclusive lower edge of the achieved band
	AchievedThreshold = 100.0
	// NearTargetThreshold is the inclusive lower edge of the near-target band
	NearTargetThreshold = 90.0
	// DisplayDecimals is the number of decimals percentages are shown with
	DisplayDecimals = 1
	// DefaultBurnRateWindow is the number of trailing months averaged for burn rate
	DefaultBurnRateWindow = 3
	// DefaultRiskThreshold is the utilization at which an activity raises a risk alert
	DefaultRiskThreshold = 90.0
	// DefaultTopActivities is the number of activities listed on the budget dashboard
	DefaultTopActivities = 5
	// DefaultTopPerformers is the number of segments listed as top performers
	DefaultTopPerformers = 3
	// ContributionTotal is the percentage product contributions of a campaign must sum to
	ContributionTotal = 100.0
	// CurrencyTolerance is the tolerance for currency comparisons
	CurrencyTolerance = 0.01
)

// Division names that carry a scoping rule.
const (
	// DivisionIT is the division visible to the Divisi User role
	DivisionIT = "IT"
	// DivisionSalesKomersial is the division visible to the Divisi Sales Komersial role
	DivisionSalesKomersial = "Sales Komersial"
	// FilterAll is the sentinel used by selection filters for "no filtering"
	FilterAll = "All"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"
	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Template format constants
const (
	// TemplateFormatCSV produces a comma-separated template
	TemplateFormatCSV = "csv"
	// TemplateFormatXLSX produces an Excel workbook template
	TemplateFormatXLSX = "xlsx"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
	// DefaultEnvFile is the dotenv file loaded before configuration
	DefaultEnvFile = ".env"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
	// DefaultMaxUploadSizeBytes is the default maximum upload size for templates (5 MB)
	DefaultMaxUploadSizeBytes int64 = 5 * 1024 * 1024
	// RoleHeader carries the role selected in the role switcher
	RoleHeader = "X-Portal-Role"
	// DefaultShutdownTimeout bounds a graceful server shutdown
	DefaultShutdownTimeout = 10 * time.Second
	// ReadHeaderTimeout bounds reading request headers
	ReadHeaderTimeout = 5 * time.Second
)
