package http

import (
	"net/http"

	"loan-share/domain"
	"loan-share/service"
)

type LoanHandler struct {
	ledger *service.LedgerService
	access *service.LoanAccessService
}

func NewLoanHandler(ledger *service.LedgerService, access *service.LoanAccessService) *LoanHandler {
	return &LoanHandler{ledger: ledger, access: access}
}

func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	term, err := wholeNumber("term", req.Term)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ownerID, err := wholeNumber("owner_id", req.OwnerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.ledger.CreateLoan(domain.LoanInput{
		Amount:  req.Amount,
		APR:     req.APR,
		Term:    term,
		Status:  req.Status,
		OwnerID: ownerID,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanResponse(loan))
}

func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toLoanResponses(h.ledger.ListLoans()))
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathInt(r, "loan_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID, err := queryInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	schedule, err := h.access.Schedule(loanID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toScheduleResponse(schedule))
}

func (h *LoanHandler) Summary(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathInt(r, "loan_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	month, err := pathInt(r, "month")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID, err := queryInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := h.access.Summary(loanID, month, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toSummaryResponse(summary))
}

func (h *LoanHandler) Share(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathInt(r, "loan_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	ownerID, err := queryInt(r, "owner_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	targetID, err := queryInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.access.Share(loanID, ownerID, targetID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messageResponse{Message: message})
}
