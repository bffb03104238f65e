// Package store owns persistence for the three entity types and the one
// compound operation, CastVote. Two adapters implement Store: GormStore
// over postgres for deployments, MemStore for tests and demo runs.
package store

import (
	"context"

	"github.com/Santo1607/AIVoteSystem/models"
)

type Store interface {
	// Voter operations
	GetVoterByID(ctx context.Context, id uint) (*models.Voter, error)
	GetVoterByVoterID(ctx context.Context, voterID string) (*models.Voter, error)
	GetVoterByAadhaar(ctx context.Context, aadhaarNumber string) (*models.Voter, error)
	CreateVoter(ctx context.Context, voter *models.Voter) error
	UpdateVoter(ctx context.Context, id uint, update models.VoterUpdate) (*models.Voter, error)
	DeleteVoter(ctx context.Context, id uint) error
	ListVoters(ctx context.Context) ([]models.Voter, error)

	// Candidate operations
	GetCandidateByID(ctx context.Context, id uint) (*models.Candidate, error)
	CreateCandidate(ctx context.Context, candidate *models.Candidate) error
	UpdateCandidate(ctx context.Context, id uint, update models.CandidateUpdate) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id uint) error
	ListCandidates(ctx context.Context) ([]models.Candidate, error)

	// Admin operations
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error

	// CastVote atomically marks the voter as having voted for the candidate
	// and increments the candidate tally, or changes nothing. The
	// check-mark-increment sequence is serialized per voter, so a concurrent
	// double submit yields exactly one success and ErrAlreadyVoted for the
	// rest. Preconditions are verified inside the critical section.
	CastVote(ctx context.Context, voterID uint, candidateID uint) error
}
