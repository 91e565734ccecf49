package repository

import "testing"

func TestShare_Idempotent(t *testing.T) {
	repo := NewSharingRepositoryMemory()

	if !repo.Share(1, 2) {
		t.Errorf("expected first share to be recorded")
	}
	if repo.Share(1, 2) {
		t.Errorf("expected second share to be a no-op")
	}
	if repo.Len() != 1 {
		t.Errorf("expected 1 grant, got %d", repo.Len())
	}

	if !repo.IsShared(1, 2) {
		t.Errorf("expected loan 1 shared with user 2")
	}
	if repo.IsShared(2, 1) {
		t.Errorf("grant must not be symmetric")
	}
}

func TestSharedWith_Sorted(t *testing.T) {
	repo := NewSharingRepositoryMemory()
	repo.Share(3, 7)
	repo.Share(1, 7)
	repo.Share(2, 8)

	got := repo.SharedWith(7)
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("expected [1 3], got %v", got)
	}
	if len(repo.SharedWith(9)) != 0 {
		t.Errorf("expected no loans for user 9")
	}
}
