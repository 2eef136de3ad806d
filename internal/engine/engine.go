// Package engine orchestrates one business-plan generation: sector
// resolution, calibration, 36-month forecast, capex and debt schedules,
// funding plan, financial statements, and break-even.
package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizforge/business-forecast/pkg/breakeven"
	"github.com/bizforge/business-forecast/pkg/calibration"
	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/forecast"
	"github.com/bizforge/business-forecast/pkg/funding"
	"github.com/bizforge/business-forecast/pkg/investments"
	"github.com/bizforge/business-forecast/pkg/loans"
	"github.com/bizforge/business-forecast/pkg/mathutil"
	"github.com/bizforge/business-forecast/pkg/sector"
	"github.com/bizforge/business-forecast/pkg/statements"
)

// Generate computes the full business plan for one request. The computation
// is pure given the request: identical requests produce numerically
// identical plans (only the plan ID and timestamp differ).
func Generate(logger *zap.Logger, req Request) *BusinessPlan {
	if logger == nil {
		logger = zap.NewNop()
	}
	horizon := constants.ForecastHorizonMonths

	profile := sector.Resolve(req.Sector, req.Objective)
	cal := calibration.Build(logger, req.UserID, req.ProjectID, req.Title, profile.Archetype, req.Objective)
	series := forecast.NewEngine(logger).Project(cal, profile)

	// Capex: per-project adapted defaults unless the request overrides them.
	seed := calibration.Seed(req.UserID, req.ProjectID, req.Title)
	capexDefaults := req.Investments
	if len(capexDefaults) == 0 {
		capexDefaults = profile.Investments
	}
	items := investments.Adapt(logger, capexDefaults, seed)
	capexSchedule := investments.BuildSchedule(items, horizon)
	capexOutflow := investments.MonthlyOutflow(capexSchedule.Items, horizon)

	// Funding: BFR and ask drive the sources/uses split; debt fills whatever
	// equity does not cover.
	bfr := funding.WorkingCapital(cal, series)
	ask := funding.RecommendedAsk(series, bfr, cal.RunwayTargetMonths)
	plan := funding.BuildPlan(capexSchedule.Total, bfr, ask)

	loanSchedule := loans.Generate(logger, plan.Loan, profile.LoanRate, profile.LoanYears, 1, horizon)

	pnl := statements.BuildAnnualPnL(series, capexSchedule.DepreciationMonth, loanSchedule.InterestMonth, profile.TaxRate)
	cash := statements.BuildCashLedger(series, capexOutflow, loanSchedule.InterestMonth, loanSchedule.PrincipalMonth, plan.Equity, plan.Loan)
	be := breakeven.Evaluate(series, cal.GrossMarginPct, cal.MarketingRatio)

	logger.Info("generated business plan",
		zap.String("op", "engine.Generate"),
		zap.String("archetype", string(profile.Archetype)),
		zap.Float64("uses_total", plan.UsesTotal),
		zap.Float64("recommended_ask", plan.RecommendedAsk),
		zap.Bool("breakeven_reached", be.Reached),
	)

	return &BusinessPlan{
		Meta: Meta{
			PlanID:      uuid.NewString(),
			Archetype:   profile.Archetype,
			Sector:      req.Sector,
			Objective:   req.Objective,
			GeneratedAt: time.Now().UTC(),
		},
		Assumptions: profile,
		Calibration: cal,
		Investments: Investments{
			Items:             capexSchedule.Items,
			Total:             capexSchedule.Total,
			DepreciationMonth: roundAll(capexSchedule.DepreciationMonth),
		},
		Financing: Financing{
			UsesInvestments:    capexSchedule.Total,
			UsesWorkingCapital: bfr,
			UsesTotal:          plan.UsesTotal,
			SourcesEquity:      plan.Equity,
			SourcesLoan:        plan.Loan,
			LoanRate:           profile.LoanRate,
			LoanYears:          profile.LoanYears,
			LoanSchedule:       loanSchedule.Payments,
			LoanOutstandingY1:  loanSchedule.OutstandingAt(12, plan.Loan),
			LoanOutstandingY2:  loanSchedule.OutstandingAt(24, plan.Loan),
			LoanOutstandingY3:  loanSchedule.OutstandingAt(36, plan.Loan),
		},
		Funding:   toFunding(plan),
		PnL:       toAnnualPnL(pnl),
		Cash:      toCash(cash),
		BreakEven: toBreakEven(be),
		Summary: AnnualSummary{
			Revenue: pnl.Revenue,
			EBITDA:  pnl.EBITDA,
		},
		Series: toSeries(series),
	}
}

func toAnnualPnL(p statements.AnnualPnL) AnnualPnL {
	return AnnualPnL{
		Revenue:      p.Revenue,
		COGS:         p.COGS,
		Gross:        p.Gross,
		Marketing:    p.Marketing,
		Fixed:        p.Fixed,
		Payroll:      p.Payroll,
		EBITDA:       p.EBITDA,
		Depreciation: p.Depreciation,
		Interest:     p.Interest,
		EBIT:         p.EBIT,
		EBT:          p.EBT,
		Tax:          p.Tax,
		Net:          p.Net,
	}
}

func toCash(c statements.CashLedger) Cash {
	months := make([]CashMonth, len(c.Months))
	for i, m := range c.Months {
		months[i] = CashMonth{Month: m.Month, Inflow: m.Inflow, Outflow: m.Outflow, Balance: m.Balance}
	}
	return Cash{Start: c.Start, Months: months}
}

func roundAll(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = mathutil.Round(v)
	}
	return out
}
