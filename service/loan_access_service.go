package service

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"loan-share/domain"
	"loan-share/repository"
)

// LoanAccessService gates schedule, summary and sharing behind the
// owner-or-shared rule.
type LoanAccessService struct {
	ledger  repository.LedgerRepository
	sharing repository.SharingRepository
	cache   repository.CacheRepository
}

func NewLoanAccessService(
	ledger repository.LedgerRepository,
	sharing repository.SharingRepository,
	cache repository.CacheRepository,
) *LoanAccessService {
	return &LoanAccessService{ledger: ledger, sharing: sharing, cache: cache}
}

// CanView reports whether userID owns the loan or has it shared with them.
func (s *LoanAccessService) CanView(loan domain.Loan, userID int) bool {
	return loan.OwnerID == userID || s.sharing.IsShared(loan.ID, userID)
}

// authorize checks existence before ownership.
func (s *LoanAccessService) authorize(loanID, userID int) (domain.Loan, error) {
	loan, ok := s.ledger.GetLoan(loanID)
	if !ok {
		return domain.Loan{}, domain.NotFoundError{Message: MsgLoanNotFound}
	}
	if !s.CanView(loan, userID) {
		return domain.Loan{}, domain.ForbiddenError{Message: MsgNoAccess}
	}
	return loan, nil
}

// scheduleCacheKey is derived from the terms that determine the schedule, not
// the loan id: ids restart with the process while a shared cache does not.
func scheduleCacheKey(loan domain.Loan) string {
	return fmt.Sprintf(scheduleCacheKeyFmt,
		strconv.FormatFloat(loan.Amount, 'g', -1, 64),
		strconv.FormatFloat(loan.APR, 'g', -1, 64),
		loan.Term)
}

func (s *LoanAccessService) Schedule(loanID, userID int) ([]domain.ScheduleEntry, error) {
	loan, err := s.authorize(loanID, userID)
	if err != nil {
		return nil, err
	}

	key := scheduleCacheKey(loan)
	if cached, ok := s.cache.Get(key); ok {
		var schedule []domain.ScheduleEntry
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return schedule, nil
		}
		log.Printf("Warning: discarding unreadable cached schedule for loan %d", loan.ID)
	}

	schedule := GenerateSchedule(loan)

	if encoded, err := json.Marshal(schedule); err == nil {
		if err := s.cache.Set(key, string(encoded)); err != nil {
			log.Printf("Warning: failed to cache schedule for loan %d: %v", loan.ID, err)
		}
	}
	return schedule, nil
}

// Summary checks existence, then access, then the month range.
func (s *LoanAccessService) Summary(loanID, month, userID int) (domain.LoanSummary, error) {
	loan, err := s.authorize(loanID, userID)
	if err != nil {
		return domain.LoanSummary{}, err
	}
	return Summarize(loan, month)
}

// Share grants targetID view access. Repeating a share returns the same
// confirmation without recording a second grant.
func (s *LoanAccessService) Share(loanID, ownerID, targetID int) (string, error) {
	loan, ok := s.ledger.GetLoan(loanID)
	if !ok {
		return "", domain.NotFoundError{Message: MsgLoanNotFound}
	}
	if loan.OwnerID != ownerID {
		return "", domain.ForbiddenError{Message: MsgNotOwner}
	}
	if _, ok := s.ledger.GetUser(targetID); !ok {
		return "", domain.NotFoundError{Message: MsgUserNotFound}
	}

	if s.sharing.Share(loan.ID, targetID) {
		log.Printf("Loan %d shared by owner %d with user %d", loan.ID, ownerID, targetID)
	}
	return fmt.Sprintf(MsgLoanSharedFmt, loan.ID, targetID), nil
}

// SharedLoans lists loans other users have shared with userID.
func (s *LoanAccessService) SharedLoans(userID int) ([]domain.Loan, error) {
	if _, ok := s.ledger.GetUser(userID); !ok {
		return nil, domain.NotFoundError{Message: MsgUserNotFound}
	}

	loanIDs := s.sharing.SharedWith(userID)
	loans := make([]domain.Loan, 0, len(loanIDs))
	for _, id := range loanIDs {
		if loan, ok := s.ledger.GetLoan(id); ok {
			loans = append(loans, loan)
		}
	}
	return loans, nil
}
