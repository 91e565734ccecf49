package repository

import (
	"sort"
	"sync"
)

type sharePair struct {
	loanID int
	userID int
}

// SharingRepositoryMemory is an in-memory set of (loan, user) grants.
type SharingRepositoryMemory struct {
	mu     sync.RWMutex
	grants map[sharePair]struct{}
}

func NewSharingRepositoryMemory() *SharingRepositoryMemory {
	return &SharingRepositoryMemory{
		grants: make(map[sharePair]struct{}),
	}
}

func (r *SharingRepositoryMemory) Share(loanID, userID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sharePair{loanID: loanID, userID: userID}
	if _, exists := r.grants[key]; exists {
		return false
	}
	r.grants[key] = struct{}{}
	return true
}

func (r *SharingRepositoryMemory) IsShared(loanID, userID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.grants[sharePair{loanID: loanID, userID: userID}]
	return ok
}

// SharedWith returns the ids of loans shared with userID in ascending order.
func (r *SharingRepositoryMemory) SharedWith(userID int) []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loanIDs := []int{}
	for key := range r.grants {
		if key.userID == userID {
			loanIDs = append(loanIDs, key.loanID)
		}
	}
	sort.Ints(loanIDs)
	return loanIDs
}

func (r *SharingRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.grants)
}
