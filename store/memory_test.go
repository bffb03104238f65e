package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Santo1607/AIVoteSystem/models"
)

func newTestStore(t *testing.T, voterCount, candidateCount int) *MemStore {
	t.Helper()
	s := NewMemStore()
	ctx := context.Background()

	for i := 1; i <= voterCount; i++ {
		voter := models.Voter{
			VoterID:       fmt.Sprintf("VOTER%07d", i),
			AadhaarNumber: fmt.Sprintf("0000-0000-%04d", i),
			Name:          fmt.Sprintf("Voter %d", i),
			Password:      "unused",
			DOB:           "01/01/1990",
			Age:           35,
			Email:         fmt.Sprintf("voter%d@example.com", i),
		}
		if err := s.CreateVoter(ctx, &voter); err != nil {
			t.Fatalf("create voter %d: %v", i, err)
		}
	}
	for i := 1; i <= candidateCount; i++ {
		candidate := models.Candidate{
			Name:         fmt.Sprintf("Candidate %d", i),
			PartyName:    fmt.Sprintf("Party %d", i),
			PartyLogo:    "https://example.com/logo.png",
			Constituency: "Test Constituency",
		}
		if err := s.CreateCandidate(ctx, &candidate); err != nil {
			t.Fatalf("create candidate %d: %v", i, err)
		}
	}
	return s
}

func TestCastVoteMarksVoterAndIncrementsTally(t *testing.T) {
	s := newTestStore(t, 1, 1)
	ctx := context.Background()

	if err := s.CastVote(ctx, 1, 1); err != nil {
		t.Fatalf("cast vote failed: %v", err)
	}

	voter, err := s.GetVoterByID(ctx, 1)
	if err != nil {
		t.Fatalf("get voter: %v", err)
	}
	if !voter.HasVoted {
		t.Error("expected HasVoted to be true")
	}
	if voter.VotedFor == nil || *voter.VotedFor != 1 {
		t.Errorf("expected VotedFor=1, got %v", voter.VotedFor)
	}

	candidate, err := s.GetCandidateByID(ctx, 1)
	if err != nil {
		t.Fatalf("get candidate: %v", err)
	}
	if candidate.Votes != 1 {
		t.Errorf("expected 1 vote, got %d", candidate.Votes)
	}
}

func TestCastVoteTwiceFailsAndLeavesFirstVote(t *testing.T) {
	s := newTestStore(t, 1, 2)
	ctx := context.Background()

	if err := s.CastVote(ctx, 1, 1); err != nil {
		t.Fatalf("first cast failed: %v", err)
	}
	// Second attempt targets a different candidate; it must fail and leave
	// everything as the first call committed it.
	err := s.CastVote(ctx, 1, 2)
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Fatalf("expected ErrAlreadyVoted, got %v", err)
	}

	voter, _ := s.GetVoterByID(ctx, 1)
	if voter.VotedFor == nil || *voter.VotedFor != 1 {
		t.Errorf("VotedFor changed after rejected second cast: %v", voter.VotedFor)
	}
	second, _ := s.GetCandidateByID(ctx, 2)
	if second.Votes != 0 {
		t.Errorf("second candidate tally moved: %d", second.Votes)
	}
}

func TestCastVoteUnknownVoterChangesNothing(t *testing.T) {
	s := newTestStore(t, 1, 1)
	ctx := context.Background()

	err := s.CastVote(ctx, 999, 1)
	if !errors.Is(err, ErrVoterNotFound) {
		t.Fatalf("expected ErrVoterNotFound, got %v", err)
	}

	candidate, _ := s.GetCandidateByID(ctx, 1)
	if candidate.Votes != 0 {
		t.Errorf("tally moved on failed cast: %d", candidate.Votes)
	}
}

func TestCastVoteUnknownCandidateChangesNothing(t *testing.T) {
	s := newTestStore(t, 1, 1)
	ctx := context.Background()

	err := s.CastVote(ctx, 1, 999)
	if !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}

	voter, _ := s.GetVoterByID(ctx, 1)
	if voter.HasVoted {
		t.Error("voter marked despite missing candidate")
	}
	if voter.VotedFor != nil {
		t.Errorf("VotedFor set despite missing candidate: %v", voter.VotedFor)
	}
}

func TestCastVoteConcurrentDoubleSubmit(t *testing.T) {
	const attempts = 50
	s := newTestStore(t, 1, 3)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		candidateID := uint(i%3 + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.CastVote(ctx, 1, candidateID)
		}()
	}
	wg.Wait()
	close(results)

	var successes, alreadyVoted int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrAlreadyVoted):
			alreadyVoted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("expected exactly 1 success, got %d", successes)
	}
	if alreadyVoted != attempts-1 {
		t.Errorf("expected %d ErrAlreadyVoted, got %d", attempts-1, alreadyVoted)
	}

	// The one winning cast must account for the entire tally movement.
	var total uint
	candidates, _ := s.ListCandidates(ctx)
	for _, candidate := range candidates {
		total += candidate.Votes
	}
	if total != 1 {
		t.Errorf("expected total tally 1, got %d", total)
	}
}

func TestTallyMatchesVotedForCounts(t *testing.T) {
	s := newTestStore(t, 5, 2)
	ctx := context.Background()

	picks := []uint{1, 2, 1, 1, 2}
	for i, candidateID := range picks {
		if err := s.CastVote(ctx, uint(i+1), candidateID); err != nil {
			t.Fatalf("cast vote %d: %v", i+1, err)
		}
	}

	counts := make(map[uint]uint)
	voters, _ := s.ListVoters(ctx)
	for _, voter := range voters {
		if voter.VotedFor != nil {
			counts[*voter.VotedFor]++
		}
	}
	candidates, _ := s.ListCandidates(ctx)
	for _, candidate := range candidates {
		if candidate.Votes != counts[candidate.ID] {
			t.Errorf("candidate %d tally %d, but %d voters voted for it",
				candidate.ID, candidate.Votes, counts[candidate.ID])
		}
	}
}

func TestCreateCandidateZeroesClientTally(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	candidate := models.Candidate{
		Name:         "Padded",
		PartyName:    "Party X",
		PartyLogo:    "logo",
		Constituency: "Nowhere",
		Votes:        42,
	}
	if err := s.CreateCandidate(ctx, &candidate); err != nil {
		t.Fatalf("create candidate: %v", err)
	}

	stored, _ := s.GetCandidateByID(ctx, candidate.ID)
	if stored.Votes != 0 {
		t.Errorf("expected stored votes 0, got %d", stored.Votes)
	}
}

func TestCreateVoterRejectsDuplicateNaturalKeys(t *testing.T) {
	s := newTestStore(t, 1, 0)
	ctx := context.Background()

	dupID := models.Voter{VoterID: "VOTER0000001", AadhaarNumber: "9999-9999-9999"}
	if err := s.CreateVoter(ctx, &dupID); !errors.Is(err, ErrDuplicateVoter) {
		t.Errorf("duplicate voterId: expected ErrDuplicateVoter, got %v", err)
	}
	dupAadhaar := models.Voter{VoterID: "NEWID9999999", AadhaarNumber: "0000-0000-0001"}
	if err := s.CreateVoter(ctx, &dupAadhaar); !errors.Is(err, ErrDuplicateVoter) {
		t.Errorf("duplicate aadhaar: expected ErrDuplicateVoter, got %v", err)
	}
}

func TestUpdateVoterAppliesPartialFields(t *testing.T) {
	s := newTestStore(t, 1, 0)
	ctx := context.Background()

	newName := "Renamed Voter"
	updated, err := s.UpdateVoter(ctx, 1, models.VoterUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("update voter: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("name not applied: %q", updated.Name)
	}
	if updated.VoterID != "VOTER0000001" {
		t.Errorf("untouched field changed: %q", updated.VoterID)
	}

	if _, err := s.UpdateVoter(ctx, 99, models.VoterUpdate{Name: &newName}); !errors.Is(err, ErrVoterNotFound) {
		t.Errorf("expected ErrVoterNotFound, got %v", err)
	}
}

func TestDeleteOperations(t *testing.T) {
	s := newTestStore(t, 1, 1)
	ctx := context.Background()

	if err := s.DeleteVoter(ctx, 1); err != nil {
		t.Fatalf("delete voter: %v", err)
	}
	if err := s.DeleteVoter(ctx, 1); !errors.Is(err, ErrVoterNotFound) {
		t.Errorf("expected ErrVoterNotFound on second delete, got %v", err)
	}
	if err := s.DeleteCandidate(ctx, 1); err != nil {
		t.Fatalf("delete candidate: %v", err)
	}
	if err := s.DeleteCandidate(ctx, 1); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("expected ErrCandidateNotFound on second delete, got %v", err)
	}
}
