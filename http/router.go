package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(users *UserHandler, loans *LoanHandler, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)
	if limiter != nil {
		r.Use(RateLimitMiddleware(limiter))
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.HandleFunc("/users", users.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/users", users.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/{user_id}/loans", users.UserLoans).Methods(http.MethodGet)
	r.HandleFunc("/users/{user_id}/shared_loans", users.SharedLoans).Methods(http.MethodGet)

	r.HandleFunc("/loans", loans.CreateLoan).Methods(http.MethodPost)
	r.HandleFunc("/loans", loans.ListLoans).Methods(http.MethodGet)
	r.HandleFunc("/loans/{loan_id}", loans.Schedule).Methods(http.MethodGet)
	r.HandleFunc("/loans/{loan_id}/summary/{month}", loans.Summary).Methods(http.MethodGet)
	r.HandleFunc("/loans/{loan_id}/share", loans.Share).Methods(http.MethodPost)

	return r
}
