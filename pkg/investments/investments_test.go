package investments

import (
	"math"
	"testing"

	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/sector"
)

func TestBuildScheduleDepreciationConservation(t *testing.T) {
	// Property: depreciation recovered inside the horizon equals
	// min(horizon remaining, life) / life of the amount.
	tests := []struct {
		name    string
		item    Item
		horizon int
	}{
		{"Life fits in horizon", Item{Label: "Outillage", Amount: 12000, Month: 1, LifeYears: 2}, 36},
		{"Life exceeds horizon", Item{Label: "Machines", Amount: 30000, Month: 1, LifeYears: 5}, 36},
		{"Late acquisition", Item{Label: "Extension", Amount: 9000, Month: 30, LifeYears: 3}, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := BuildSchedule([]Item{tt.item}, tt.horizon)
			recovered := 0.0
			for _, d := range sched.DepreciationMonth {
				recovered += d
			}

			lifeMonths := tt.item.LifeYears * constants.MonthsPerYear
			inHorizon := tt.horizon - tt.item.Month + 1
			if inHorizon > lifeMonths {
				inHorizon = lifeMonths
			}
			expected := float64(inHorizon) / float64(lifeMonths) * tt.item.Amount
			if math.Abs(recovered-expected) > 0.05 {
				t.Errorf("recovered %v, expected %v", recovered, expected)
			}
		})
	}
}

func TestBuildScheduleBeyondHorizon(t *testing.T) {
	// An acquisition past the horizon depreciates nothing inside it but
	// still counts toward the invested total.
	items := []Item{
		{Label: "Entrepôt", Amount: 50000, Month: 40, LifeYears: 5},
		{Label: "Site", Amount: 6000, Month: 1, LifeYears: 3},
	}
	sched := BuildSchedule(items, 36)

	if sched.Total != 56000 {
		t.Errorf("total = %v, expected 56000", sched.Total)
	}
	expectedMonthly := 6000.0 / 36.0
	for m := 1; m <= 36; m++ {
		if math.Abs(sched.DepreciationMonth[m]-expectedMonthly) > 0.01 {
			t.Errorf("month %d depreciation = %v, expected %v (beyond-horizon item leaked in)",
				m, sched.DepreciationMonth[m], expectedMonthly)
		}
	}

	out := MonthlyOutflow(items, 36)
	spent := 0.0
	for _, v := range out {
		spent += v
	}
	if spent != 6000 {
		t.Errorf("in-horizon outflow = %v, expected 6000", spent)
	}
}

func TestBuildScheduleEmptyAndCoercion(t *testing.T) {
	sched := BuildSchedule(nil, 36)
	if sched.Total != 0 || len(sched.Items) != 0 {
		t.Errorf("empty list: total = %v, items = %d", sched.Total, len(sched.Items))
	}
	for _, d := range sched.DepreciationMonth {
		if d != 0 {
			t.Error("empty list produced non-zero depreciation")
		}
	}

	// Zero or negative month/life coerce to 1 rather than erroring.
	coerced := BuildSchedule([]Item{{Label: "Divers", Amount: 1200, Month: 0, LifeYears: -2}}, 36)
	if coerced.Items[0].Month != 1 || coerced.Items[0].LifeYears != 1 {
		t.Errorf("coercion failed: %+v", coerced.Items[0])
	}
	if math.Abs(coerced.Items[0].MonthlyDepreciation-100.0) > 0.01 {
		t.Errorf("monthly depreciation = %v, expected 100", coerced.Items[0].MonthlyDepreciation)
	}
}

func TestAdaptStableAndBounded(t *testing.T) {
	defaults := []sector.InvestmentDefault{
		{Label: "Dév. produit", Amount: 12000, Month: 1, LifeYears: 3},
		{Label: "Site & outils", Amount: 6000, Month: 1, LifeYears: 3},
	}

	first := Adapt(nil, defaults, 12345)
	second := Adapt(nil, defaults, 12345)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("adaptation not stable for seed: %+v vs %+v", first[i], second[i])
		}
	}

	for i, item := range first {
		lo := defaults[i].Amount * (1 - constants.InvestmentJitter)
		hi := defaults[i].Amount * (1 + constants.InvestmentJitter)
		if item.Amount < lo-0.01 || item.Amount > hi+0.01 {
			t.Errorf("%s amount %v outside [%v, %v]", item.Label, item.Amount, lo, hi)
		}
		if item.Month != defaults[i].Month || item.LifeYears != defaults[i].LifeYears {
			t.Errorf("%s: month/life changed during adaptation", item.Label)
		}
	}

	other := Adapt(nil, defaults, 54321)
	same := true
	for i := range first {
		if first[i].Amount != other[i].Amount {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical adapted amounts")
	}
}
