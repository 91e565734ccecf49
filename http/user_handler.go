package http

import (
	"net/http"

	"loan-share/service"
)

type UserHandler struct {
	ledger *service.LedgerService
	access *service.LoanAccessService
}

func NewUserHandler(ledger *service.LedgerService, access *service.LoanAccessService) *UserHandler {
	return &UserHandler{ledger: ledger, access: access}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == nil {
		respondError(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.ledger.CreateUser(*req.Username)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toUserResponses(h.ledger.ListUsers()))
}

func (h *UserHandler) UserLoans(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	loans, err := h.ledger.GetUserLoans(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanResponses(loans))
}

func (h *UserHandler) SharedLoans(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	loans, err := h.access.SharedLoans(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toLoanResponses(loans))
}
