package credit

import (
	"math"
	"time"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
)

// Score reduces a customer's full loan history to a creditworthiness figure
// capped at 100. It weighs four components equally: the on-time repayment
// ratio across all past loans, the number of past loans, loan activity in
// now's calendar year, and a flat approved-volume factor granted once any
// history exists.
//
// The result has no lower clamp: a pathological history can score below zero.
// `now` is explicit because the activity component depends on the current
// calendar year.
func Score(loans []loan.Loan, cust customer.Customer, now time.Time) float64 {
	_ = cust // reserved for future components (e.g. approved-limit utilisation)

	currentYear := now.Year()

	var (
		totalPaidOnTime int
		totalTenure     int
		activityCount   int
		volumeFactor    float64
	)
	for _, l := range loans {
		totalPaidOnTime += l.EMIsPaidOnTime
		totalTenure += l.Tenure
		if l.StartDate.Year() == currentYear {
			activityCount++
		}
		volumeFactor = approvedVolumeFactor
	}

	onTimeRatio := 0.0
	if totalTenure > 0 {
		onTimeRatio = float64(totalPaidOnTime) / float64(totalTenure)
	}

	score := onTimeRatio*componentWeight +
		float64(len(loans))*componentWeight +
		float64(activityCount)*componentWeight +
		volumeFactor*componentWeight

	return math.Min(score, maxScore)
}
