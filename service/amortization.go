package service

import (
	"math"

	"loan-share/domain"
)

// MonthlyRate divides the supplied rate by twelve unconditionally.
func MonthlyRate(apr float64) float64 {
	return apr / MonthsPerYear
}

// MonthlyPayment returns the fixed annuity payment for the loan terms.
func MonthlyPayment(amount, apr float64, term int) float64 {
	if term <= 0 {
		return 0
	}
	i := MonthlyRate(apr)
	if i == 0 {
		return amount / float64(term)
	}
	growth := math.Pow(1+i, float64(term))
	return amount * i * growth / (growth - 1)
}

// GenerateSchedule builds the month-by-month breakdown for the loan. The
// result depends only on Amount, APR and Term.
func GenerateSchedule(loan domain.Loan) []domain.ScheduleEntry {
	if loan.Term <= 0 {
		return []domain.ScheduleEntry{}
	}

	i := MonthlyRate(loan.APR)
	payment := MonthlyPayment(loan.Amount, loan.APR, loan.Term)
	balance := loan.Amount

	schedule := make([]domain.ScheduleEntry, 0, loan.Term)
	for month := 1; month <= loan.Term; month++ {
		interest := balance * i
		principal := payment - interest
		balance -= principal

		schedule = append(schedule, domain.ScheduleEntry{
			Month:            month,
			OpenBalance:      balance + principal,
			TotalPayment:     payment,
			PrincipalPayment: principal,
			InterestPayment:  interest,
			CloseBalance:     math.Max(0, balance),
		})
	}
	return schedule
}

// Summarize replays the schedule up to month and returns the cumulative
// figures. Principal is clamped to the remaining balance.
func Summarize(loan domain.Loan, month int) (domain.LoanSummary, error) {
	if month < 1 || month > loan.Term {
		return domain.LoanSummary{}, domain.Validationf(MsgInvalidMonthFmt, loan.Term)
	}

	i := MonthlyRate(loan.APR)
	payment := MonthlyPayment(loan.Amount, loan.APR, loan.Term)
	balance := loan.Amount

	var summary domain.LoanSummary
	for m := 1; m <= month; m++ {
		interest := balance * i
		principal := math.Min(payment-interest, balance)
		balance -= principal

		summary.AggregatePrincipalPaid += principal
		summary.AggregateInterestPaid += interest
	}
	summary.CurrentPrincipal = balance
	return summary, nil
}
