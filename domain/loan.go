package domain

import "strings"

type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"
	LoanStatusInactive LoanStatus = "inactive"
)

// ParseLoanStatus normalizes a case-insensitive status string.
func ParseLoanStatus(raw string) (LoanStatus, bool) {
	switch LoanStatus(strings.ToLower(raw)) {
	case LoanStatusActive:
		return LoanStatusActive, true
	case LoanStatusInactive:
		return LoanStatusInactive, true
	}
	return "", false
}

type LoanInput struct {
	Amount  float64
	APR     float64
	Term    int
	Status  string
	OwnerID int
}

// Loan is immutable once stored.
type Loan struct {
	ID      int
	Amount  float64
	APR     float64
	Term    int
	Status  LoanStatus
	OwnerID int
}

type ScheduleEntry struct {
	Month            int
	OpenBalance      float64
	TotalPayment     float64
	PrincipalPayment float64
	InterestPayment  float64
	CloseBalance     float64
}

type LoanSummary struct {
	CurrentPrincipal       float64
	AggregatePrincipalPaid float64
	AggregateInterestPaid  float64
}
