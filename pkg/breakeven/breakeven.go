// Package breakeven locates the first EBITDA-positive month and computes the
// theoretical annual revenue needed to cover fixed costs.
package breakeven

import (
	"fmt"

	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/forecast"
	"github.com/bizforge/business-forecast/pkg/mathutil"
)

// Result carries the two independent break-even views. The empirical month
// (first EBITDA >= 0 within the horizon) and the theoretical annual revenue
// (fixed costs over contribution margin) may disagree; both are surfaced.
type Result struct {
	Reached      bool
	Month        int
	MonthRevenue float64

	AnnualRevenueRequired      float64
	ContributionMarginNegative bool

	Hint string
}

// Evaluate computes both break-even figures from the projected series.
// grossMarginPct is a percent value (82 = 82%); marketingRatio a fraction.
// A contribution margin at or below zero is a valid business scenario, not
// an error: the theoretical figure is withheld and flagged instead.
func Evaluate(series forecast.Series, grossMarginPct, marketingRatio float64) Result {
	var result Result

	for i := 0; i < series.Months(); i++ {
		e := series.Revenue[i] - series.COGS[i] - series.Marketing[i] - series.Fixed[i] - series.Payroll[i]
		if e >= 0 {
			result.Reached = true
			result.Month = i + 1
			result.MonthRevenue = mathutil.Round(series.Revenue[i])
			break
		}
	}

	contribution := grossMarginPct/constants.PercentageMultiplier - marketingRatio
	if contribution <= 0 {
		result.ContributionMarginNegative = true
		result.Hint = "marge contributive négative (revoyez GM% et/ou le ratio marketing)"
		return result
	}

	months := mathutil.Min(float64(series.Months()), constants.MonthsPerYear)
	fixedYear := 0.0
	for i := 0; i < int(months); i++ {
		fixedYear += series.Fixed[i] + series.Payroll[i]
	}
	result.AnnualRevenueRequired = mathutil.Round(fixedYear / contribution)

	if result.Reached {
		result.Hint = fmt.Sprintf("M%d", result.Month)
	} else {
		result.Hint = "non atteint sur 36 mois"
	}
	return result
}
