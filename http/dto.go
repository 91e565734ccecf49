package http

import "loan-share/domain"

type createUserRequest struct {
	Username *string `json:"username"`
}

// Term and OwnerID accept integral JSON numbers such as 12.0.
type createLoanRequest struct {
	Amount  float64 `json:"amount"`
	APR     float64 `json:"apr"`
	Term    float64 `json:"term"`
	Status  string  `json:"status"`
	OwnerID float64 `json:"owner_id"`
}

type userResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type loanResponse struct {
	ID      int     `json:"id"`
	Amount  float64 `json:"amount"`
	APR     float64 `json:"apr"`
	Term    int     `json:"term"`
	Status  string  `json:"status"`
	OwnerID int     `json:"owner_id"`
}

type scheduleEntryResponse struct {
	Month            int     `json:"month"`
	OpenBalance      float64 `json:"open_balance"`
	TotalPayment     float64 `json:"total_payment"`
	PrincipalPayment float64 `json:"principal_payment"`
	InterestPayment  float64 `json:"interest_payment"`
	CloseBalance     float64 `json:"close_balance"`
}

type summaryResponse struct {
	CurrentPrincipal       float64 `json:"current_principal"`
	AggregatePrincipalPaid float64 `json:"aggregate_principal_paid"`
	AggregateInterestPaid  float64 `json:"aggregate_interest_paid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toLoanResponse(l domain.Loan) loanResponse {
	return loanResponse{
		ID:      l.ID,
		Amount:  l.Amount,
		APR:     l.APR,
		Term:    l.Term,
		Status:  string(l.Status),
		OwnerID: l.OwnerID,
	}
}

func toLoanResponses(loans []domain.Loan) []loanResponse {
	out := make([]loanResponse, 0, len(loans))
	for _, l := range loans {
		out = append(out, toLoanResponse(l))
	}
	return out
}

func toScheduleResponse(schedule []domain.ScheduleEntry) []scheduleEntryResponse {
	out := make([]scheduleEntryResponse, 0, len(schedule))
	for _, e := range schedule {
		out = append(out, scheduleEntryResponse{
			Month:            e.Month,
			OpenBalance:      e.OpenBalance,
			TotalPayment:     e.TotalPayment,
			PrincipalPayment: e.PrincipalPayment,
			InterestPayment:  e.InterestPayment,
			CloseBalance:     e.CloseBalance,
		})
	}
	return out
}

func toSummaryResponse(s domain.LoanSummary) summaryResponse {
	return summaryResponse{
		CurrentPrincipal:       s.CurrentPrincipal,
		AggregatePrincipalPaid: s.AggregatePrincipalPaid,
		AggregateInterestPaid:  s.AggregateInterestPaid,
	}
}
