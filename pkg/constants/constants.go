// Package constants provides shared constants for the business-forecast engine.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// ForecastHorizonMonths is the projection horizon for all monthly series
	ForecastHorizonMonths = 36

	// ForecastYears is the number of annual P&L columns derived from the horizon
	ForecastYears = 3

	// CashLedgerMonths is the length of the detailed cash ledger
	CashLedgerMonths = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)

// Forecast floors and dampers
const (
	// MarketingFloorEUR is the minimum monthly marketing spend to avoid a
	// zero-acquisition degenerate forecast in the first months
	MarketingFloorEUR = 1500.0

	// MarketingFloorFixedShare is the share of month-1 fixed costs that also
	// bounds the marketing floor from below
	MarketingFloorFixedShare = 0.30

	// BillableDaysPerFTE is the monthly billable-day cap per full-time head
	// in the capacity (services) dynamics
	BillableDaysPerFTE = 20.0

	// InitialMRREUR seeds the recurring dynamics before growth compounds
	InitialMRREUR = 800.0

	// InitialMonthlyVisits seeds the funnel dynamics
	InitialMonthlyVisits = 8000.0
)

// Funding constants
const (
	// FundingBuffer is the safety multiplier applied to the recommended ask
	FundingBuffer = 1.10

	// EquityFloorEUR is the minimum equity contribution in the initial plan
	EquityFloorEUR = 10000.0

	// EquityShareOfUses is the target equity share of total uses
	EquityShareOfUses = 0.30

	// BurnWindowMonths is the window used to average early burn for the ask
	BurnWindowMonths = 6
)

// Calibration constants
const (
	// CalibrationJitter is the relative spread applied around range midpoints
	CalibrationJitter = 0.15

	// InvestmentJitter is the relative spread applied to default investment
	// amounts per project
	InvestmentJitter = 0.25

	// InvestmentSeedOffset decorrelates the investment draws from the
	// calibration draws while keeping both stable per project
	InvestmentSeedOffset = 77

	// AggressiveRunwayMonths is the target runway for venture-style objectives
	AggressiveRunwayMonths = 18

	// ConservativeRunwayMonths is the target runway otherwise
	ConservativeRunwayMonths = 12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
