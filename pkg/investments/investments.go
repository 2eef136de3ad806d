// Package investments converts capital-expenditure line items into
// straight-line depreciation schedules and monthly cash outflows.
package investments

import (
	"math/rand"

	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/mathutil"
	"github.com/bizforge/business-forecast/pkg/sector"
	"go.uber.org/zap"
)

// Item is a normalized capital expenditure: acquisition month is 1-based and
// may fall beyond the horizon, in which case the amount still counts toward
// the invested total but contributes no in-horizon depreciation.
type Item struct {
	Label               string
	Amount              float64
	Month               int
	LifeYears           int
	MonthlyDepreciation float64
}

// Schedule is the result of depreciating a set of items over a horizon.
// DepreciationMonth is 1-indexed (length horizon+1, slot 0 unused) to match
// the month numbering used throughout the engine.
type Schedule struct {
	Items             []Item
	DepreciationMonth []float64
	Total             float64
}

// Adapt derives per-project investment items from the archetype defaults,
// varying each amount by a stable ±25% so two projects in the same sector do
// not carry identical capex. The draw is seeded from the same project seed
// as the calibration, offset to decorrelate the two streams.
func Adapt(logger *zap.Logger, defaults []sector.InvestmentDefault, seed uint32) []Item {
	if logger == nil {
		logger = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(int64(seed) + constants.InvestmentSeedOffset))

	items := make([]Item, 0, len(defaults))
	for _, def := range defaults {
		amount := mathutil.Round(def.Amount * (1.0 + (rng.Float64()*2.0-1.0)*constants.InvestmentJitter))
		month := def.Month
		if month < 1 {
			month = 1
		}
		lifeYears := def.LifeYears
		if lifeYears < 1 {
			lifeYears = 1
		}
		items = append(items, Item{Label: def.Label, Amount: amount, Month: month, LifeYears: lifeYears})
		logger.Debug("adapted investment amount",
			zap.String("op", "investments.Adapt"),
			zap.String("label", def.Label),
			zap.Float64("amount", amount),
		)
	}
	return items
}

// BuildSchedule computes straight-line monthly depreciation for each item
// across the horizon. Months and lifetimes below 1 are coerced to 1; a nil
// item list yields an all-zero schedule.
func BuildSchedule(items []Item, horizonMonths int) Schedule {
	depreciation := make([]float64, horizonMonths+1)
	normalized := make([]Item, 0, len(items))
	total := 0.0

	for _, item := range items {
		month := item.Month
		if month < 1 {
			month = 1
		}
		lifeYears := item.LifeYears
		if lifeYears < 1 {
			lifeYears = 1
		}
		total += item.Amount
		monthly := item.Amount / float64(lifeYears*constants.MonthsPerYear)

		last := month + lifeYears*constants.MonthsPerYear - 1
		if last > horizonMonths {
			last = horizonMonths
		}
		for m := month; m <= last; m++ {
			depreciation[m] += monthly
		}

		normalized = append(normalized, Item{
			Label:               item.Label,
			Amount:              mathutil.Round(item.Amount),
			Month:               month,
			LifeYears:           lifeYears,
			MonthlyDepreciation: mathutil.Round(monthly),
		})
	}

	return Schedule{
		Items:             normalized,
		DepreciationMonth: depreciation,
		Total:             mathutil.Round(total),
	}
}

// MonthlyOutflow returns the 1-indexed capex cash outflows: each item's full
// amount leaves in its acquisition month. Items beyond the horizon spend
// nothing inside it.
func MonthlyOutflow(items []Item, horizonMonths int) []float64 {
	out := make([]float64, horizonMonths+1)
	for _, item := range items {
		month := item.Month
		if month < 1 {
			month = 1
		}
		if month <= horizonMonths {
			out[month] += item.Amount
		}
	}
	return out
}
