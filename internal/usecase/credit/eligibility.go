package credit

import (
	"math"
	"time"

	"creditnest/internal/domain/customer"
	"creditnest/internal/domain/loan"
)

// Eligibility decides loan approval and the effective annual interest rate
// (percent) to apply. The affordability gate runs first and overrides every
// score tier: when the monthly repayments of loans still running after today
// exceed half the customer's salary, the request is rejected outright.
//
// Tier boundaries are strict lower bounds, so a score of exactly 50 lands in
// the mid tier (rate floored at 12), 30 in the sub tier (floored at 16) and
// 10 is rejected.
func Eligibility(score, requestedRate float64, cust customer.Customer, loans []loan.Loan, now time.Time) (approved bool, effectiveRate float64) {
	var activeEMI float64
	for _, l := range loans {
		if l.EndDate.After(now) {
			activeEMI += l.MonthlyRepayment
		}
	}
	if activeEMI > cust.MonthlySalary*maxEMIToSalaryRatio {
		return false, requestedRate
	}

	switch {
	case score > tierPrime:
		return true, requestedRate
	case score > tierMid:
		return true, math.Max(requestedRate, midFloorPct)
	case score > tierSub:
		return true, math.Max(requestedRate, subFloorPct)
	default:
		return false, requestedRate
	}
}
