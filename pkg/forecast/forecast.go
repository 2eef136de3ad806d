// Package forecast simulates 36 months of revenue, costs, and EBITDA from a
// calibration snapshot and the resolved sector profile.
package forecast

import (
	"math"

	"github.com/bizforge/business-forecast/pkg/calibration"
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/mathutil"
	"github.com/bizforge/business-forecast/pkg/sector"
	"go.uber.org/zap"
)

// Series holds the six parallel monthly sequences over the forecast horizon,
// indexed 0..35 for months 1..36. All values are EUR rounded to 2 decimals;
// the identity EBITDA = Revenue - COGS - Marketing - Fixed - Payroll holds
// per month.
type Series struct {
	Revenue   []float64
	COGS      []float64
	Marketing []float64
	Fixed     []float64
	Payroll   []float64
	EBITDA    []float64
}

// Months returns the horizon length of the series.
func (s Series) Months() int {
	return len(s.Revenue)
}

// Engine computes monthly series. It holds no state between projections.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a forecast engine with the given logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Project simulates the full horizon for one calibrated project. The
// dynamics family on the snapshot selects how revenue forms; fixed costs,
// payroll, marketing floor, and the EBITDA identity are shared.
func (e *Engine) Project(cal calibration.Snapshot, profile sector.Profile) Series {
	months := constants.ForecastHorizonMonths

	revenue := make([]float64, months)
	cogs := make([]float64, months)
	marketing := make([]float64, months)
	fixed := make([]float64, months)
	payroll := make([]float64, months)
	ebitda := make([]float64, months)

	fixedMonthly := mathutil.Max(profile.FixedOpex, cal.OpexFloor)
	for i := 0; i < months; i++ {
		fixed[i] = mathutil.Round(fixedMonthly)
		payroll[i] = mathutil.Round(profile.Payroll)
	}

	// Marketing needs a floor to bootstrap acquisition before revenue exists.
	marketingFloor := mathutil.Max(constants.MarketingFloorEUR, constants.MarketingFloorFixedShare*fixedMonthly)

	grossMargin := cal.GrossMarginPct / constants.PercentageMultiplier
	growth := cal.GrowthMoM

	switch cal.Dynamics {
	case calibration.Recurring:
		arpu := cal.ARPUMonth
		churn := cal.ChurnMonthlyPct / constants.PercentageMultiplier
		subscribers := mathutil.Max(5.0, constants.InitialMRREUR/math.Max(arpu, 1e-6))
		prevRevenue := 0.0
		for m := 0; m < months; m++ {
			// Subscription growth is dampened relative to the headline rate;
			// churn discounts the billed base each month.
			subscribers *= 1.0 + growth*0.9
			netSubscribers := subscribers - subscribers*churn
			mrr := netSubscribers * arpu
			rev := mrr * (0.98 + 0.02*cal.Seasonality[m%constants.MonthsPerYear])
			fillMonth(m, rev, prevRevenue, grossMargin, cal.MarketingRatio, marketingFloor, revenue, cogs, marketing)
			prevRevenue = rev
		}

	case calibration.Funnel:
		aov := cal.AOV
		conversion := cal.SiteConversionPct / constants.PercentageMultiplier
		returns := cal.ReturnRatePct / constants.PercentageMultiplier
		visits := constants.InitialMonthlyVisits
		prevRevenue := 0.0
		for m := 0; m < months; m++ {
			// Retail seasonality swings traffic much harder than revenue in
			// the other dynamics.
			visits *= (1.0 + growth) * (0.96 + 0.04*cal.Seasonality[m%constants.MonthsPerYear])
			orders := visits * conversion
			netSales := orders * aov * (1.0 - returns)
			fillMonth(m, netSales, prevRevenue, grossMargin, cal.MarketingRatio, marketingFloor, revenue, cogs, marketing)
			prevRevenue = netSales
		}

	default: // Capacity
		dayRate := cal.DayRate
		utilization := cal.UtilizationPct / constants.PercentageMultiplier
		ftes := 1.0
		prevRevenue := 0.0
		for m := 0; m < months; m++ {
			// Headcount grows at half the stated rate; hiring lags demand.
			ftes *= 1.0 + growth*0.5
			billableDays := ftes * constants.BillableDaysPerFTE * utilization
			rev := billableDays * dayRate * (0.97 + 0.03*cal.Seasonality[m%constants.MonthsPerYear])
			fillMonth(m, rev, prevRevenue, grossMargin, cal.MarketingRatio, marketingFloor, revenue, cogs, marketing)
			prevRevenue = rev
		}
	}

	// EBITDA is derived from the stored (rounded) components so the monthly
	// identity holds exactly on the output series.
	for i := 0; i < months; i++ {
		ebitda[i] = mathutil.Round(revenue[i] - cogs[i] - marketing[i] - fixed[i] - payroll[i])
	}

	e.logger.Debug("projected monthly series",
		zap.String("op", "forecast.Project"),
		zap.String("dynamics", string(cal.Dynamics)),
		zap.Float64("month1_revenue", revenue[0]),
		zap.Float64("month36_revenue", revenue[months-1]),
	)

	return Series{
		Revenue:   revenue,
		COGS:      cogs,
		Marketing: marketing,
		Fixed:     fixed,
		Payroll:   payroll,
		EBITDA:    ebitda,
	}
}

// fillMonth stores the rounded revenue-derived columns for month m. COGS
// follows from the gross margin; marketing follows the prior month's revenue
// with a one-month lag, floored to keep acquisition funded.
func fillMonth(m int, rev, prevRev, grossMargin, marketingRatio, floor float64, revenue, cogs, marketing []float64) {
	revenue[m] = mathutil.Round(rev)
	cogs[m] = mathutil.Round(rev * (1.0 - grossMargin))
	spend := floor
	if m > 0 {
		spend = mathutil.Max(floor, prevRev*marketingRatio)
	}
	marketing[m] = mathutil.Round(spend)
}
