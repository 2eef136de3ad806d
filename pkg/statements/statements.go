// Package statements aggregates monthly series into annual P&L columns and
// a detailed 12-month cash ledger.
package statements

import (
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/forecast"
	"github.com/bizforge/business-forecast/pkg/mathutil"
)

// AnnualPnL carries three annual columns (Y1..Y3) for each P&L line, derived
// from the 36-month series combined with depreciation and loan interest.
type AnnualPnL struct {
	Revenue      [constants.ForecastYears]float64
	COGS         [constants.ForecastYears]float64
	Gross        [constants.ForecastYears]float64
	Marketing    [constants.ForecastYears]float64
	Fixed        [constants.ForecastYears]float64
	Payroll      [constants.ForecastYears]float64
	EBITDA       [constants.ForecastYears]float64
	Depreciation [constants.ForecastYears]float64
	Interest     [constants.ForecastYears]float64
	EBIT         [constants.ForecastYears]float64
	EBT          [constants.ForecastYears]float64
	Tax          [constants.ForecastYears]float64
	Net          [constants.ForecastYears]float64
}

// CashEntry is one month of the cash ledger.
type CashEntry struct {
	Month   int
	Inflow  float64
	Outflow float64
	Balance float64
}

// CashLedger is the first-year cash view. Start is the opening balance
// (equity and loan inflows, both injected in month 1); capex leaves as a
// monthly outflow in its acquisition month rather than being pre-subtracted.
type CashLedger struct {
	Start  float64
	Months []CashEntry
}

// BuildAnnualPnL rolls the monthly series into three annual columns.
// depreciationMonth and interestMonth are 1-indexed; tax applies to positive
// EBT only, so losses carry no tax benefit.
func BuildAnnualPnL(series forecast.Series, depreciationMonth, interestMonth []float64, taxRate float64) AnnualPnL {
	months := series.Months()

	grossMonthly := make([]float64, months)
	depMonthly := make([]float64, months)
	intMonthly := make([]float64, months)
	ebitMonthly := make([]float64, months)
	ebtMonthly := make([]float64, months)
	taxMonthly := make([]float64, months)
	netMonthly := make([]float64, months)

	for i := 0; i < months; i++ {
		grossMonthly[i] = mathutil.Max(0.0, series.Revenue[i]-series.COGS[i])
		depMonthly[i] = at(depreciationMonth, i+1)
		intMonthly[i] = at(interestMonth, i+1)
		ebitMonthly[i] = mathutil.Round(series.EBITDA[i] - depMonthly[i])
		ebtMonthly[i] = mathutil.Round(ebitMonthly[i] - intMonthly[i])
		taxMonthly[i] = mathutil.Round(mathutil.Max(0.0, ebtMonthly[i]) * taxRate)
		netMonthly[i] = mathutil.Round(ebtMonthly[i] - taxMonthly[i])
	}

	return AnnualPnL{
		Revenue:      aggregateYears(series.Revenue),
		COGS:         aggregateYears(series.COGS),
		Gross:        aggregateYears(grossMonthly),
		Marketing:    aggregateYears(series.Marketing),
		Fixed:        aggregateYears(series.Fixed),
		Payroll:      aggregateYears(series.Payroll),
		EBITDA:       aggregateYears(series.EBITDA),
		Depreciation: aggregateYears(depMonthly),
		Interest:     aggregateYears(intMonthly),
		EBIT:         aggregateYears(ebitMonthly),
		EBT:          aggregateYears(ebtMonthly),
		Tax:          aggregateYears(taxMonthly),
		Net:          aggregateYears(netMonthly),
	}
}

// BuildCashLedger walks the first 12 months: inflow is the month's revenue;
// outflow covers operating costs, debt service, and capex in its acquisition
// month. The ledger conserves cash exactly: end of month 12 equals start
// plus the sum of monthly deltas.
func BuildCashLedger(series forecast.Series, capexMonth, interestMonth, principalMonth []float64, equityInflow, loanInflow float64) CashLedger {
	ledger := CashLedger{
		Start:  mathutil.Round(equityInflow + loanInflow),
		Months: make([]CashEntry, 0, constants.CashLedgerMonths),
	}

	balance := equityInflow + loanInflow
	for m := 1; m <= constants.CashLedgerMonths; m++ {
		i := m - 1
		inflow := series.Revenue[i]
		outflow := series.COGS[i] + series.Marketing[i] + series.Fixed[i] + series.Payroll[i] +
			at(interestMonth, m) + at(principalMonth, m) + at(capexMonth, m)
		balance += inflow - outflow
		ledger.Months = append(ledger.Months, CashEntry{
			Month:   m,
			Inflow:  mathutil.Round(inflow),
			Outflow: mathutil.Round(outflow),
			Balance: mathutil.Round(balance),
		})
	}
	return ledger
}

// aggregateYears sums a 36-month series into Y1..Y3 columns.
func aggregateYears(monthly []float64) [constants.ForecastYears]float64 {
	var years [constants.ForecastYears]float64
	for y := 0; y < constants.ForecastYears; y++ {
		start := y * constants.MonthsPerYear
		end := start + constants.MonthsPerYear
		if start >= len(monthly) {
			break
		}
		if end > len(monthly) {
			end = len(monthly)
		}
		years[y] = mathutil.SumRounded(monthly[start:end])
	}
	return years
}

// at reads a 1-indexed array defensively.
func at(vals []float64, month int) float64 {
	if month < 0 || month >= len(vals) {
		return 0.0
	}
	return vals[month]
}
