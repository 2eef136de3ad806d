// Package funding computes working-capital requirement (BFR), the
// recommended funding ask, and the initial sources/uses split.
package funding

import (
	"github.com/bizforge/business-forecast/pkg/calibration"
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/forecast"
	"github.com/bizforge/business-forecast/pkg/mathutil"
)

// Plan is the initial financing structure: uses (capex + working capital)
// funded by equity first, debt for the remainder.
type Plan struct {
	WorkingCapital float64
	RecommendedAsk float64
	UsesTotal      float64
	Equity         float64
	Loan           float64
}

// WorkingCapital computes the BFR by converting DSO/DPO/inventory days into
// EUR equivalents of a cruising-speed month. Months 7-12 average out the
// ramp-up; shorter series fall back to all available months. The result is
// floored at zero (negative working capital is treated as no requirement).
func WorkingCapital(cal calibration.Snapshot, series forecast.Series) float64 {
	revenue := series.Revenue
	cogs := series.COGS
	if len(revenue) >= constants.CashLedgerMonths {
		revenue = revenue[6:12]
		cogs = cogs[6:12]
	}

	avgRevenue := average(revenue)
	avgCOGS := average(cogs)

	receivables := avgRevenue * (cal.DSODays / 30.0)
	payables := avgCOGS * (cal.DPODays / 30.0)
	inventory := avgCOGS * (cal.InventoryDays / 30.0)

	return mathutil.Round(mathutil.Max(0.0, inventory+receivables-payables))
}

// RecommendedAsk sizes the funding round: target runway times the average
// burn over the first six months, plus the BFR, plus a 10% buffer. With no
// early burn the ask collapses to the buffered BFR.
func RecommendedAsk(series forecast.Series, bfr float64, runwayTargetMonths int) float64 {
	window := series.EBITDA
	if len(window) > constants.BurnWindowMonths {
		window = window[:constants.BurnWindowMonths]
	}

	totalBurn := 0.0
	for _, e := range window {
		totalBurn += mathutil.Max(0.0, -e)
	}
	avgBurn := 0.0
	if len(window) > 0 {
		avgBurn = totalBurn / float64(len(window))
	}

	ask := float64(runwayTargetMonths)*avgBurn + bfr
	return mathutil.Round(ask * constants.FundingBuffer)
}

// BuildPlan splits total uses (capex + BFR) into equity and loan. Equity
// covers at least €10,000 or 30% of uses, whichever is greater, capped at
// the uses themselves; debt fills the remainder.
func BuildPlan(investTotal, bfr, recommendedAsk float64) Plan {
	usesTotal := mathutil.Round(investTotal + bfr)
	equityRule := mathutil.Max(constants.EquityFloorEUR, constants.EquityShareOfUses*usesTotal)
	equity := mathutil.Round(mathutil.Min(usesTotal, equityRule))
	loan := mathutil.Round(mathutil.Max(0.0, usesTotal-equity))

	return Plan{
		WorkingCapital: bfr,
		RecommendedAsk: recommendedAsk,
		UsesTotal:      usesTotal,
		Equity:         equity,
		Loan:           loan,
	}
}

func average(vals []float64) float64 {
	if len(vals) == 0 {
		return 0.0
	}
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total / float64(len(vals))
}
