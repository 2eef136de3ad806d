package engine

import (
	"time"

	"github.com/bizforge/business-forecast/pkg/breakeven"
	"github.com/bizforge/business-forecast/pkg/calibration"
	"github.com/bizforge/business-forecast/pkg/forecast"
	"github.com/bizforge/business-forecast/pkg/funding"
	"github.com/bizforge/business-forecast/pkg/investments"
	"github.com/bizforge/business-forecast/pkg/loans"
	"github.com/bizforge/business-forecast/pkg/sector"
)

// Request carries the inputs of one business-plan generation. UserID,
// ProjectID, and Title form the stable identity that seeds the calibration;
// Sector and Objective are free text. Investments, when set, override the
// archetype's default capex lines.
type Request struct {
	UserID      int64
	ProjectID   int64
	Title       string
	Sector      string
	Objective   string
	Investments []sector.InvestmentDefault
}

// Meta identifies one generated plan.
type Meta struct {
	PlanID      string            `json:"plan_id"`
	Archetype   sector.Archetype  `json:"archetype"`
	Sector      string            `json:"sector"`
	Objective   string            `json:"objective"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// Financing bundles the initial sources/uses split with the loan terms and
// amortization view.
type Financing struct {
	UsesInvestments    float64         `json:"uses_investments"`
	UsesWorkingCapital float64         `json:"uses_working_capital"`
	UsesTotal          float64         `json:"uses_total"`
	SourcesEquity      float64         `json:"sources_equity"`
	SourcesLoan        float64         `json:"sources_loan"`
	LoanRate           float64         `json:"loan_rate"`
	LoanYears          int             `json:"loan_years"`
	LoanSchedule       []loans.Payment `json:"loan_schedule"`
	LoanOutstandingY1  float64         `json:"loan_outstanding_end_y1"`
	LoanOutstandingY2  float64         `json:"loan_outstanding_end_y2"`
	LoanOutstandingY3  float64         `json:"loan_outstanding_end_y3"`
}

// Funding is the readable funding recommendation alongside the mechanical
// sources/uses split.
type Funding struct {
	WorkingCapital float64 `json:"working_capital"`
	RecommendedAsk float64 `json:"recommended_ask"`
}

// AnnualSummary surfaces the headline yearly figures for downstream copy
// layers without making them re-aggregate the series.
type AnnualSummary struct {
	Revenue [3]float64 `json:"revenue"`
	EBITDA  [3]float64 `json:"ebitda"`
}

// AnnualPnL mirrors statements.AnnualPnL with JSON tags for the renderer.
type AnnualPnL struct {
	Revenue      [3]float64 `json:"revenue"`
	COGS         [3]float64 `json:"cogs"`
	Gross        [3]float64 `json:"gross"`
	Marketing    [3]float64 `json:"marketing"`
	Fixed        [3]float64 `json:"fixed"`
	Payroll      [3]float64 `json:"payroll"`
	EBITDA       [3]float64 `json:"ebitda"`
	Depreciation [3]float64 `json:"depreciation"`
	Interest     [3]float64 `json:"interest"`
	EBIT         [3]float64 `json:"ebit"`
	EBT          [3]float64 `json:"ebt"`
	Tax          [3]float64 `json:"tax"`
	Net          [3]float64 `json:"net"`
}

// CashMonth is one cash-ledger row.
type CashMonth struct {
	Month   int     `json:"month"`
	Inflow  float64 `json:"in"`
	Outflow float64 `json:"out"`
	Balance float64 `json:"end"`
}

// Cash is the 12-month cash view.
type Cash struct {
	Start  float64     `json:"start"`
	Months []CashMonth `json:"months"`
}

// Investments carries the normalized capex items and the depreciation view.
type Investments struct {
	Items             []investments.Item `json:"items"`
	Total             float64            `json:"total"`
	DepreciationMonth []float64          `json:"depreciation_month"`
}

// BreakEven mirrors breakeven.Result for rendering.
type BreakEven struct {
	Reached                    bool    `json:"reached"`
	Month                      int     `json:"month,omitempty"`
	MonthRevenue               float64 `json:"month_revenue,omitempty"`
	AnnualRevenueRequired      float64 `json:"annual_revenue_required,omitempty"`
	ContributionMarginNegative bool    `json:"contribution_margin_negative"`
	Hint                       string  `json:"hint"`
}

// Series exposes the six 36-month sequences for charts.
type Series struct {
	Revenue   []float64 `json:"revenue"`
	COGS      []float64 `json:"cogs"`
	Marketing []float64 `json:"marketing"`
	Fixed     []float64 `json:"fixed"`
	Payroll   []float64 `json:"payroll"`
	EBITDA    []float64 `json:"ebitda"`
}

// BusinessPlan is the full numeric result of one generation. Downstream
// layers (narrative decoration, HTML/PDF rendering, persistence) consume it
// read-only; all monetary fields are pre-rounded to 2 decimals.
type BusinessPlan struct {
	Meta        Meta                 `json:"meta"`
	Assumptions sector.Profile       `json:"assumptions"`
	Calibration calibration.Snapshot `json:"calibration"`
	Investments Investments          `json:"investments"`
	Financing   Financing            `json:"financing"`
	Funding     Funding              `json:"funding"`
	PnL         AnnualPnL            `json:"pnl_3y"`
	Cash        Cash                 `json:"cash_12m"`
	BreakEven   BreakEven            `json:"breakeven"`
	Summary     AnnualSummary        `json:"summary"`
	Series      Series               `json:"series_36m"`
}

func toSeries(s forecast.Series) Series {
	return Series{
		Revenue:   s.Revenue,
		COGS:      s.COGS,
		Marketing: s.Marketing,
		Fixed:     s.Fixed,
		Payroll:   s.Payroll,
		EBITDA:    s.EBITDA,
	}
}

func toBreakEven(r breakeven.Result) BreakEven {
	return BreakEven{
		Reached:                    r.Reached,
		Month:                      r.Month,
		MonthRevenue:               r.MonthRevenue,
		AnnualRevenueRequired:      r.AnnualRevenueRequired,
		ContributionMarginNegative: r.ContributionMarginNegative,
		Hint:                       r.Hint,
	}
}

func toFunding(p funding.Plan) Funding {
	return Funding{
		WorkingCapital: p.WorkingCapital,
		RecommendedAsk: p.RecommendedAsk,
	}
}
