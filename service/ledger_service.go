package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	"loan-share/domain"
	"loan-share/repository"
)

type LedgerService struct {
	repo repository.LedgerRepository
}

// NewLedgerService creates a new LedgerService with the given repository.
func NewLedgerService(repo repository.LedgerRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// CreateUser registers username under the next sequential id.
func (s *LedgerService) CreateUser(username string) (domain.User, error) {
	user, err := s.repo.CreateUser(username)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return domain.User{}, domain.ValidationError{Message: MsgUsernameExists}
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	log.Printf("User created: %s (ID: %d)", user.Username, user.ID)
	return user, nil
}

func (s *LedgerService) ListUsers() []domain.User {
	return s.repo.ListUsers()
}

// CreateLoan validates input in a fixed order (amount, apr, term, status,
// owner); the first failing check is reported. Terms large enough to overflow
// the annuity formula are rejected last.
func (s *LedgerService) CreateLoan(input domain.LoanInput) (domain.Loan, error) {
	if input.Amount <= 0 {
		return domain.Loan{}, domain.ValidationError{Message: MsgInvalidAmount}
	}
	if input.APR <= 0 {
		return domain.Loan{}, domain.ValidationError{Message: MsgInvalidAPR}
	}
	if input.Term <= 0 {
		return domain.Loan{}, domain.ValidationError{Message: MsgInvalidTerm}
	}
	status, ok := domain.ParseLoanStatus(input.Status)
	if !ok {
		return domain.Loan{}, domain.ValidationError{Message: MsgInvalidStatus}
	}
	if _, ok := s.repo.GetUser(input.OwnerID); !ok {
		return domain.Loan{}, domain.ValidationError{Message: MsgOwnerNotFound}
	}
	payment := MonthlyPayment(input.Amount, input.APR, input.Term)
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return domain.Loan{}, domain.ValidationError{Message: MsgPaymentOverflow}
	}

	loan, err := s.repo.CreateLoan(domain.Loan{
		Amount:  input.Amount,
		APR:     input.APR,
		Term:    input.Term,
		Status:  status,
		OwnerID: input.OwnerID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domain.Loan{}, domain.ValidationError{Message: MsgOwnerNotFound}
		}
		return domain.Loan{}, fmt.Errorf("create loan: %w", err)
	}

	log.Printf("Loan %d created for owner %d: amount %.2f, apr %g, term %d months",
		loan.ID, loan.OwnerID, loan.Amount, loan.APR, loan.Term)
	return loan, nil
}

func (s *LedgerService) ListLoans() []domain.Loan {
	return s.repo.ListLoans()
}

// GetUserLoans returns the loans owned by userID. Shared loans are not included.
func (s *LedgerService) GetUserLoans(userID int) ([]domain.Loan, error) {
	loans, ok := s.repo.UserLoans(userID)
	if !ok {
		return nil, domain.NotFoundError{Message: MsgUserNotFound}
	}
	return loans, nil
}
