// Package loans provides fixed-annuity loan amortization over the forecast
// horizon.
package loans

import (
	"math"

	"github.com/bizforge/business-forecast/pkg/constants"
	"github.com/bizforge/business-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Payment holds one month of an amortization schedule. Amounts are EUR
// rounded to 2 decimals; Balance is the remaining principal after payment.
type Payment struct {
	Month     int
	Payment   float64
	Interest  float64
	Principal float64
	Balance   float64
}

// Schedule is the amortization result clipped to the horizon. InterestMonth
// and PrincipalMonth are 1-indexed (length horizon+1, slot 0 unused) and
// unrounded, for downstream aggregation.
type Schedule struct {
	Payments       []Payment
	InterestMonth  []float64
	PrincipalMonth []float64
}

// AnnuityPayment computes the fixed monthly payment for a loan using the
// standard annuity formula. A zero rate degrades to linear repayment.
func AnnuityPayment(principal, annualRate float64, years int) float64 {
	months := years * constants.MonthsPerYear
	if months < 1 {
		months = 1
	}
	monthlyRate := annualRate / constants.MonthsPerYear
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	return principal * (monthlyRate / (1.0 - math.Pow(1.0+monthlyRate, -float64(months))))
}

// Generate builds the amortization schedule for a loan starting at
// startMonth (1-based), clipped to horizonMonths. A principal of zero or
// less yields an empty schedule and all-zero arrays.
func Generate(logger *zap.Logger, principal, annualRate float64, years, startMonth, horizonMonths int) Schedule {
	if logger == nil {
		logger = zap.NewNop()
	}

	schedule := Schedule{
		InterestMonth:  make([]float64, horizonMonths+1),
		PrincipalMonth: make([]float64, horizonMonths+1),
	}
	if principal <= 0 {
		return schedule
	}

	payment := AnnuityPayment(principal, annualRate, years)
	monthlyRate := annualRate / constants.MonthsPerYear
	balance := principal

	logger.Debug("generating amortization schedule",
		zap.String("op", "loans.Generate"),
		zap.Float64("principal", principal),
		zap.Float64("annual_rate", annualRate),
		zap.Int("years", years),
		zap.Float64("monthly_payment", payment),
	)

	for i := 1; i <= years*constants.MonthsPerYear; i++ {
		month := startMonth + i - 1
		if month > horizonMonths {
			break
		}
		interest := balance * monthlyRate
		amortized := payment - interest
		balance = math.Max(0.0, balance-amortized)

		schedule.InterestMonth[month] = interest
		schedule.PrincipalMonth[month] = amortized
		schedule.Payments = append(schedule.Payments, Payment{
			Month:     month,
			Payment:   mathutil.Round(payment),
			Interest:  mathutil.Round(interest),
			Principal: mathutil.Round(amortized),
			Balance:   mathutil.Round(balance),
		})
	}

	return schedule
}

// OutstandingAt returns the remaining balance after the payment scheduled
// for the given month, falling back to the original principal before the
// schedule starts and zero after it ends.
func (s Schedule) OutstandingAt(month int, principal float64) float64 {
	if len(s.Payments) == 0 {
		return 0.0
	}
	if month < s.Payments[0].Month {
		return mathutil.Round(principal)
	}
	last := s.Payments[0].Balance
	for _, p := range s.Payments {
		if p.Month > month {
			break
		}
		last = p.Balance
	}
	return last
}
