// Package constants provides shared constants for the paisawise calculators.
package constants

// DateLayout is the month format used by schedule builders and scenario
// files (e.g. "2026-04").
const DateLayout = "2006-01"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// QuartersPerYear is the number of quarters in a year
	QuartersPerYear = 4

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Calculator input bounds shared between validation tags and semantic checks
const (
	// MinRatePercent is the lowest annual rate any calculator accepts
	MinRatePercent = 0.1

	// MaxRatePercent is the highest annual rate any calculator accepts
	MaxRatePercent = 50.0

	// MaxTenureMonths caps loan and deposit tenures (50 years)
	MaxTenureMonths = 600

	// MaxTenureYears caps year-denominated tenures
	MaxTenureYears = 50

	// MaxAmount caps any single monetary input (one lakh crore)
	MaxAmount = 1e12

	// OptimisticRatePercent is the threshold above which return-rate
	// inputs draw a warning rather than an error
	OptimisticRatePercent = 30.0

	// LongTenureWarningMonths is the threshold above which loan tenures
	// draw a warning (40 years)
	LongTenureWarningMonths = 480
)

// Statutory constants for the Indian instruments
const (
	// PPFMinYearlyDeposit is the statutory minimum yearly PPF contribution
	PPFMinYearlyDeposit = 500.0

	// PPFMaxYearlyDeposit is the statutory maximum yearly PPF contribution
	PPFMaxYearlyDeposit = 150000.0

	// PPFTermYears is the initial PPF maturity term
	PPFTermYears = 15

	// PPFExtensionYears is the length of one PPF extension block
	PPFExtensionYears = 5

	// PPFDefaultRatePercent is the currently notified PPF rate
	PPFDefaultRatePercent = 7.1

	// GratuityCap is the statutory ceiling on tax-free gratuity
	GratuityCap = 2000000.0

	// GratuityMinServiceYears is the minimum service for gratuity eligibility
	GratuityMinServiceYears = 5.0

	// HRAMetroPercent is the basic-salary percentage used for metro cities
	HRAMetroPercent = 50.0

	// HRANonMetroPercent is the basic-salary percentage for other cities
	HRANonMetroPercent = 40.0

	// DefaultSWRPercent is the default safe withdrawal rate for FIRE math
	DefaultSWRPercent = 4.0

	// DefaultSWPHorizonMonths is the withdrawal horizon assumed when a
	// plan does not state one (30 years)
	DefaultSWPHorizonMonths = 360
)

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
	// DefaultConfigFile is the default application configuration file name
	DefaultConfigFile = "paisawise.yaml"

	// DefaultScenarioFile is the default scenario file name for the CLI
	DefaultScenarioFile = "scenario.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimitPerMinute is the default per-client request budget
	DefaultRateLimitPerMinute = 120
)
