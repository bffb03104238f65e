package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Santo1607/AIVoteSystem/models"
)

// MemStore keeps all entities in maps behind one mutex. It backs tests and
// STORAGE=memory demo runs; the single lock gives CastVote the same
// per-voter serialization the postgres adapter gets from its row lock.
type MemStore struct {
	mu sync.Mutex

	voters     map[uint]models.Voter
	candidates map[uint]models.Candidate
	admins     map[uint]models.Admin

	nextVoterID     uint
	nextCandidateID uint
	nextAdminID     uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		voters:          make(map[uint]models.Voter),
		candidates:      make(map[uint]models.Candidate),
		admins:          make(map[uint]models.Admin),
		nextVoterID:     1,
		nextCandidateID: 1,
		nextAdminID:     1,
	}
}

// Voter operations

func (s *MemStore) GetVoterByID(_ context.Context, id uint) (*models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[id]
	if !ok {
		return nil, ErrVoterNotFound
	}
	return &voter, nil
}

func (s *MemStore) GetVoterByVoterID(_ context.Context, voterID string) (*models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findVoterLocked(func(v models.Voter) bool { return v.VoterID == voterID })
}

func (s *MemStore) GetVoterByAadhaar(_ context.Context, aadhaarNumber string) (*models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findVoterLocked(func(v models.Voter) bool { return v.AadhaarNumber == aadhaarNumber })
}

func (s *MemStore) findVoterLocked(match func(models.Voter) bool) (*models.Voter, error) {
	for _, voter := range s.voters {
		if match(voter) {
			v := voter
			return &v, nil
		}
	}
	return nil, ErrVoterNotFound
}

func (s *MemStore) CreateVoter(_ context.Context, voter *models.Voter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.voters {
		if existing.VoterID == voter.VoterID || existing.AadhaarNumber == voter.AadhaarNumber {
			return ErrDuplicateVoter
		}
	}
	voter.ID = s.nextVoterID
	s.nextVoterID++
	voter.HasVoted = false
	voter.VotedFor = nil
	s.voters[voter.ID] = *voter
	return nil
}

func (s *MemStore) UpdateVoter(_ context.Context, id uint, update models.VoterUpdate) (*models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	voter, ok := s.voters[id]
	if !ok {
		return nil, ErrVoterNotFound
	}
	update.Apply(&voter)
	for otherID, other := range s.voters {
		if otherID == id {
			continue
		}
		if other.VoterID == voter.VoterID || other.AadhaarNumber == voter.AadhaarNumber {
			return nil, ErrDuplicateVoter
		}
	}
	s.voters[id] = voter
	return &voter, nil
}

func (s *MemStore) DeleteVoter(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.voters[id]; !ok {
		return ErrVoterNotFound
	}
	delete(s.voters, id)
	return nil
}

func (s *MemStore) ListVoters(_ context.Context) ([]models.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	voters := make([]models.Voter, 0, len(s.voters))
	for _, voter := range s.voters {
		voters = append(voters, voter)
	}
	sort.Slice(voters, func(i, j int) bool { return voters[i].ID < voters[j].ID })
	return voters, nil
}

// Candidate operations

func (s *MemStore) GetCandidateByID(_ context.Context, id uint) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	return &candidate, nil
}

func (s *MemStore) CreateCandidate(_ context.Context, candidate *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate.ID = s.nextCandidateID
	s.nextCandidateID++
	candidate.Votes = 0
	s.candidates[candidate.ID] = *candidate
	return nil
}

func (s *MemStore) UpdateCandidate(_ context.Context, id uint, update models.CandidateUpdate) (*models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, ErrCandidateNotFound
	}
	update.Apply(&candidate)
	s.candidates[id] = candidate
	return &candidate, nil
}

func (s *MemStore) DeleteCandidate(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[id]; !ok {
		return ErrCandidateNotFound
	}
	delete(s.candidates, id)
	return nil
}

func (s *MemStore) ListCandidates(_ context.Context) ([]models.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	candidates := make([]models.Candidate, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		candidates = append(candidates, candidate)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	return candidates, nil
}

// Admin operations

func (s *MemStore) GetAdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, admin := range s.admins {
		if admin.Username == username {
			a := admin
			return &a, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (s *MemStore) CreateAdmin(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if existing.Username == admin.Username {
			return ErrDuplicateAdmin
		}
	}
	admin.ID = s.nextAdminID
	s.nextAdminID++
	s.admins[admin.ID] = *admin
	return nil
}

// CastVote performs the check-mark-increment sequence under the store lock;
// both writes land or neither does.
func (s *MemStore) CastVote(_ context.Context, voterID uint, candidateID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	voter, ok := s.voters[voterID]
	if !ok {
		return ErrVoterNotFound
	}
	if voter.HasVoted {
		return ErrAlreadyVoted
	}
	candidate, ok := s.candidates[candidateID]
	if !ok {
		return ErrCandidateNotFound
	}

	voter.HasVoted = true
	voter.VotedFor = &candidate.ID
	candidate.Votes++
	s.voters[voterID] = voter
	s.candidates[candidateID] = candidate
	return nil
}
