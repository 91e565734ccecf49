package repository

import (
	"sync"

	"loan-share/domain"
)

// LedgerRepositoryMemory is an in-memory implementation of LedgerRepository.
// Id allocation and uniqueness checks run under the write lock.
type LedgerRepositoryMemory struct {
	mu         sync.RWMutex
	lastUserID int
	lastLoanID int
	users      map[int]domain.User
	userOrder  []int
	usernames  map[string]int
	loans      map[int]domain.Loan
	loanOrder  []int
	loanIndex  map[int][]int // owner id -> loan ids
}

// NewLedgerRepositoryMemory creates an empty in-memory ledger.
func NewLedgerRepositoryMemory() *LedgerRepositoryMemory {
	return &LedgerRepositoryMemory{
		users:     make(map[int]domain.User),
		usernames: make(map[string]int),
		loans:     make(map[int]domain.Loan),
		loanIndex: make(map[int][]int),
	}
}

func (r *LedgerRepositoryMemory) CreateUser(username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.usernames[username]; exists {
		return domain.User{}, ErrUsernameTaken
	}

	r.lastUserID++
	user := domain.User{ID: r.lastUserID, Username: username}

	r.users[user.ID] = user
	r.userOrder = append(r.userOrder, user.ID)
	r.usernames[username] = user.ID
	r.loanIndex[user.ID] = []int{}
	return user, nil
}

func (r *LedgerRepositoryMemory) ListUsers() []domain.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		users = append(users, r.users[id])
	}
	return users
}

func (r *LedgerRepositoryMemory) GetUser(id int) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	return user, ok
}

func (r *LedgerRepositoryMemory) CreateLoan(loan domain.Loan) (domain.Loan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[loan.OwnerID]; !exists {
		return domain.Loan{}, ErrOwnerNotFound
	}

	r.lastLoanID++
	loan.ID = r.lastLoanID

	r.loans[loan.ID] = loan
	r.loanOrder = append(r.loanOrder, loan.ID)
	r.loanIndex[loan.OwnerID] = append(r.loanIndex[loan.OwnerID], loan.ID)
	return loan, nil
}

func (r *LedgerRepositoryMemory) ListLoans() []domain.Loan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loans := make([]domain.Loan, 0, len(r.loanOrder))
	for _, id := range r.loanOrder {
		loans = append(loans, r.loans[id])
	}
	return loans
}

func (r *LedgerRepositoryMemory) GetLoan(id int) (domain.Loan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	loan, ok := r.loans[id]
	return loan, ok
}

// UserLoans returns the loans owned by userID; ok is false for unknown users.
func (r *LedgerRepositoryMemory) UserLoans(userID int) ([]domain.Loan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loanIDs, ok := r.loanIndex[userID]
	if !ok {
		return nil, false
	}
	loans := make([]domain.Loan, 0, len(loanIDs))
	for _, id := range loanIDs {
		loans = append(loans, r.loans[id])
	}
	return loans, true
}
