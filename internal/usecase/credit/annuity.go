package credit

import (
	"math"

	"creditnest/internal/domain/loan"
)

// MonthlyInstallment computes the level payment that fully amortizes
// principal over tenureMonths at the given annual rate.
//
// The monthly rate is annualRatePercent / 12 with NO percent-to-fraction
// conversion: an annual rate of "12" is treated as a monthly rate of 1.0, not
// 0.01. This mirrors the upstream system's payment figures exactly and is
// intentionally inconsistent with RemainingBalance; see DESIGN.md before
// changing either scaling.
func MonthlyInstallment(annualRatePercent float64, tenureMonths int, principal float64) float64 {
	n := float64(tenureMonths)
	monthlyRate := annualRatePercent / monthsPerYear
	if monthlyRate == 0 {
		return principal / n
	}
	return monthlyRate * principal / (1 - math.Pow(1+monthlyRate, -n))
}

// RemainingBalance projects the outstanding balance of a loan assuming every
// recorded on-time installment was exactly the scheduled payment: the future
// value of the original principal net of the annuity of payments made, with
// payments applied at period end. The sign convention of the underlying
// future-value formula is discarded; the result is always >= 0.
//
// Here the monthly rate is the conventional annual/12/100.
func RemainingBalance(l loan.Loan) float64 {
	monthlyRate := l.InterestRate / monthsPerYear / percentScale
	paid := float64(l.EMIsPaidOnTime)

	var futureValue float64
	if monthlyRate == 0 {
		futureValue = l.LoanAmount - l.MonthlyRepayment*paid
	} else {
		growth := math.Pow(1+monthlyRate, paid)
		futureValue = l.LoanAmount*growth - l.MonthlyRepayment*(growth-1)/monthlyRate
	}
	return math.Abs(futureValue)
}
