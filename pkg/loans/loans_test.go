package loans

import (
	"math"
	"testing"
)

func TestAnnuityPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		years         int
		expectedRange []float64 // [min, max]
	}{
		{
			name:       "Typical startup loan",
			principal:  30000,
			annualRate: 0.055,
			years:      4,
			// Around €697/month
			expectedRange: []float64{690, 705},
		},
		{
			name:       "Short high-rate loan",
			principal:  10000,
			annualRate: 0.10,
			years:      2,
			// Around €461/month
			expectedRange: []float64{455, 470},
		},
		{
			name:          "Zero interest",
			principal:     12000,
			annualRate:    0,
			years:         5,
			expectedRange: []float64{200, 200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := AnnuityPayment(tt.principal, tt.annualRate, tt.years)
			if payment < tt.expectedRange[0] || payment > tt.expectedRange[1] {
				t.Errorf("AnnuityPayment = %v, expected within [%v, %v]",
					payment, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestGenerateAmortizationCorrectness(t *testing.T) {
	// Properties: balance strictly decreasing and never negative; principal
	// portions plus final balance reconstruct the original principal.
	principal := 25000.0
	sched := Generate(nil, principal, 0.06, 3, 1, 36)

	if len(sched.Payments) != 36 {
		t.Fatalf("schedule length = %d, expected 36", len(sched.Payments))
	}

	prevBalance := principal
	for _, p := range sched.Payments {
		if p.Balance < 0 {
			t.Errorf("month %d: negative balance %v", p.Month, p.Balance)
		}
		if p.Balance >= prevBalance {
			t.Errorf("month %d: balance %v did not decrease from %v", p.Month, p.Balance, prevBalance)
		}
		prevBalance = p.Balance
	}

	repaid := 0.0
	for m := 1; m <= 36; m++ {
		repaid += sched.PrincipalMonth[m]
	}
	final := sched.Payments[len(sched.Payments)-1].Balance
	if math.Abs(repaid+final-principal) > 0.5 {
		t.Errorf("principal portions %v + final balance %v != principal %v", repaid, final, principal)
	}
	if math.Abs(final) > 0.5 {
		t.Errorf("3-year loan not fully repaid inside horizon: final balance %v", final)
	}
}

func TestGenerateClippedToHorizon(t *testing.T) {
	// A 5-year loan only shows 36 months of schedule.
	sched := Generate(nil, 40000, 0.052, 5, 1, 36)
	if len(sched.Payments) != 36 {
		t.Errorf("schedule length = %d, expected clipping to 36", len(sched.Payments))
	}
	if sched.Payments[35].Balance <= 0 {
		t.Errorf("5-year loan should still carry a balance at month 36, got %v", sched.Payments[35].Balance)
	}
}

func TestGenerateLateStart(t *testing.T) {
	sched := Generate(nil, 12000, 0.05, 2, 30, 36)
	if len(sched.Payments) != 7 {
		t.Errorf("schedule length = %d, expected 7 (months 30..36)", len(sched.Payments))
	}
	if sched.Payments[0].Month != 30 {
		t.Errorf("first payment month = %d, expected 30", sched.Payments[0].Month)
	}
	for m := 1; m < 30; m++ {
		if sched.InterestMonth[m] != 0 || sched.PrincipalMonth[m] != 0 {
			t.Errorf("month %d has debt service before loan start", m)
		}
	}
}

func TestGenerateZeroPrincipal(t *testing.T) {
	// Pure equity funding: empty schedule, all-zero arrays, no division error.
	sched := Generate(nil, 0, 0.055, 4, 1, 36)
	if len(sched.Payments) != 0 {
		t.Errorf("schedule length = %d, expected empty", len(sched.Payments))
	}
	for m := 0; m <= 36; m++ {
		if sched.InterestMonth[m] != 0 || sched.PrincipalMonth[m] != 0 {
			t.Errorf("month %d: non-zero debt service for zero principal", m)
		}
	}
	if sched.OutstandingAt(12, 0) != 0 {
		t.Error("zero-principal loan has outstanding balance")
	}
}

func TestGenerateZeroRate(t *testing.T) {
	sched := Generate(nil, 12000, 0, 1, 1, 36)
	if len(sched.Payments) != 12 {
		t.Fatalf("schedule length = %d, expected 12", len(sched.Payments))
	}
	for _, p := range sched.Payments {
		if p.Interest != 0 {
			t.Errorf("month %d: interest %v on zero-rate loan", p.Month, p.Interest)
		}
		if math.Abs(p.Payment-1000.0) > 0.01 {
			t.Errorf("month %d: payment %v, expected 1000", p.Month, p.Payment)
		}
	}
}

func TestOutstandingAt(t *testing.T) {
	principal := 20000.0
	sched := Generate(nil, principal, 0.06, 2, 1, 36)

	y1 := sched.OutstandingAt(12, principal)
	y2 := sched.OutstandingAt(24, principal)
	y3 := sched.OutstandingAt(36, principal)

	if y1 <= 0 || y1 >= principal {
		t.Errorf("end-Y1 outstanding = %v, expected inside (0, %v)", y1, principal)
	}
	if math.Abs(y2) > 0.5 {
		t.Errorf("end-Y2 outstanding = %v, expected ~0 for 2-year loan", y2)
	}
	if y3 != y2 {
		t.Errorf("outstanding after maturity changed: %v vs %v", y3, y2)
	}
}
