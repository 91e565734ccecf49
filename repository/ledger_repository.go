package repository

import (
	"errors"

	"loan-share/domain"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrOwnerNotFound = errors.New("owner not found")
)

// LedgerRepository holds users, loans and the per-owner loan index.
type LedgerRepository interface {
	CreateUser(username string) (domain.User, error)
	ListUsers() []domain.User
	GetUser(id int) (domain.User, bool)

	// CreateLoan assigns the next loan id and indexes the loan under its owner.
	CreateLoan(loan domain.Loan) (domain.Loan, error)
	ListLoans() []domain.Loan
	GetLoan(id int) (domain.Loan, bool)
	UserLoans(userID int) ([]domain.Loan, bool)
}

// SharingRepository records which users, beyond the owner, may view a loan.
type SharingRepository interface {
	// Share reports whether the pair was newly recorded.
	Share(loanID, userID int) bool
	IsShared(loanID, userID int) bool
	SharedWith(userID int) []int
	Len() int
}

// CacheRepository holds serialized schedules. Keys must identify the
// computation inputs; a value may be evicted at any time and is recomputed on
// a miss. RedisCache and MockCache implement it.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
