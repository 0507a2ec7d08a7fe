// Package stats aggregates persisted statements into dashboard figures over a rolling window.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/drivahub/drivahub/internal/domain"
)

// RPMChange is reported as-is until period-over-period comparison exists.
const RPMChange = 10

var netIncomeRatio = decimal.RequireFromString("0.8")

// Cutoff returns the earliest instant included in the window ending at now.
func Cutoff(period domain.Period, now time.Time) time.Time {
	return now.Add(-time.Duration(period.Days()) * 24 * time.Hour)
}

// Compute sums the statements dated on or after the period cutoff.
// Statements with an unreadable date are left out.
func Compute(statements []domain.Statement, period domain.Period, now time.Time) domain.DashboardStats {
	cutoff := Cutoff(period, now)

	var earnings, miles, deadhead decimal.Decimal
	for _, s := range statements {
		if !inWindow(s.Date, cutoff) {
			continue
		}
		earnings = earnings.Add(decimal.NewFromFloat(s.Amount))
		miles = miles.Add(decimal.NewFromFloat(s.Miles))
		if s.DeadheadMiles != nil {
			deadhead = deadhead.Add(decimal.NewFromFloat(*s.DeadheadMiles))
		}
	}

	rpm := decimal.Zero
	if miles.IsPositive() {
		rpm = earnings.DivRound(miles, 16)
	}

	return domain.DashboardStats{
		TotalEarnings: earnings.InexactFloat64(),
		NetIncome:     earnings.Mul(netIncomeRatio).InexactFloat64(),
		RPM:           rpm.InexactFloat64(),
		RPMChange:     RPMChange,
		TotalMiles:    miles.InexactFloat64(),
		DeadheadMiles: deadhead.InexactFloat64(),
	}
}

func inWindow(date string, cutoff time.Time) bool {
	t, err := domain.ParseDate(date)
	if err != nil {
		return false
	}
	return !t.Before(cutoff)
}
