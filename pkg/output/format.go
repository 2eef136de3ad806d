// Package output provides utilities for formatting and displaying generated
// business plans.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bizforge/business-forecast/internal/engine"
)

// PrettyFormat writes a human-readable summary of the plan.
func PrettyFormat(w io.Writer, plan *engine.BusinessPlan) {
	p := message.NewPrinter(language.French)

	fmt.Fprintf(w, "--- Business plan %s ---\n", plan.Meta.PlanID)
	fmt.Fprintf(w, "Sector: %s (archetype %s), objective: %s\n\n",
		plan.Meta.Sector, plan.Meta.Archetype, plan.Meta.Objective)

	fmt.Fprintf(w, "Annual P&L (EUR)\n")
	fmt.Fprintf(w, "%-14s | %14s | %14s | %14s\n", "Line", "Y1", "Y2", "Y3")
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 64))
	rows := []struct {
		label string
		vals  [3]float64
	}{
		{"Revenue", plan.PnL.Revenue},
		{"COGS", plan.PnL.COGS},
		{"Gross margin", plan.PnL.Gross},
		{"Marketing", plan.PnL.Marketing},
		{"Fixed", plan.PnL.Fixed},
		{"Payroll", plan.PnL.Payroll},
		{"EBITDA", plan.PnL.EBITDA},
		{"Depreciation", plan.PnL.Depreciation},
		{"Interest", plan.PnL.Interest},
		{"Net income", plan.PnL.Net},
	}
	for _, row := range rows {
		_, _ = p.Fprintf(w, "%-14s | %14.2f | %14.2f | %14.2f\n", row.label, row.vals[0], row.vals[1], row.vals[2])
	}

	fmt.Fprintf(w, "\nCash (12 months, start %.2f)\n", plan.Cash.Start)
	fmt.Fprintf(w, "%-5s | %12s | %12s | %12s\n", "Month", "In", "Out", "End")
	for _, m := range plan.Cash.Months {
		_, _ = p.Fprintf(w, "M%-4d | %12.2f | %12.2f | %12.2f\n", m.Month, m.Inflow, m.Outflow, m.Balance)
	}

	fmt.Fprintf(w, "\nFinancing: uses %.2f (capex %.2f + BFR %.2f), equity %.2f, loan %.2f\n",
		plan.Financing.UsesTotal, plan.Financing.UsesInvestments, plan.Financing.UsesWorkingCapital,
		plan.Financing.SourcesEquity, plan.Financing.SourcesLoan)
	fmt.Fprintf(w, "Recommended ask: %.2f\n", plan.Funding.RecommendedAsk)
	fmt.Fprintf(w, "Break-even: %s", plan.BreakEven.Hint)
	if !plan.BreakEven.ContributionMarginNegative {
		fmt.Fprintf(w, " (theoretical annual revenue %.2f)", plan.BreakEven.AnnualRevenueRequired)
	}
	fmt.Fprintf(w, "\n")
}

// CsvFormat writes the 36-month series in comma-separated value format, one
// row per month.
func CsvFormat(w io.Writer, plan *engine.BusinessPlan) {
	fmt.Fprintf(w, `"month","revenue","cogs","marketing","fixed","payroll","ebitda"`)
	fmt.Fprintf(w, "\n")
	for i := range plan.Series.Revenue {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			i+1, plan.Series.Revenue[i], plan.Series.COGS[i], plan.Series.Marketing[i],
			plan.Series.Fixed[i], plan.Series.Payroll[i], plan.Series.EBITDA[i])
		fmt.Fprintf(w, "\n")
	}
}

// JSONFormat writes the full plan object, the shape consumed by the
// narrative and rendering layers.
func JSONFormat(w io.Writer, plan *engine.BusinessPlan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
