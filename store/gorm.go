package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Santo1607/AIVoteSystem/models"
)

// GormStore is the postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Voter operations

func (s *GormStore) GetVoterByID(ctx context.Context, id uint) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.WithContext(ctx).First(&voter, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("get voter by id: %w", err)
	}
	return &voter, nil
}

func (s *GormStore) GetVoterByVoterID(ctx context.Context, voterID string) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.WithContext(ctx).Where("voter_id = ?", voterID).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("get voter by voter id: %w", err)
	}
	return &voter, nil
}

func (s *GormStore) GetVoterByAadhaar(ctx context.Context, aadhaarNumber string) (*models.Voter, error) {
	var voter models.Voter
	if err := s.db.WithContext(ctx).Where("aadhaar_number = ?", aadhaarNumber).First(&voter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVoterNotFound
		}
		return nil, fmt.Errorf("get voter by aadhaar: %w", err)
	}
	return &voter, nil
}

func (s *GormStore) CreateVoter(ctx context.Context, voter *models.Voter) error {
	voter.HasVoted = false
	voter.VotedFor = nil
	if err := s.db.WithContext(ctx).Create(voter).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateVoter
		}
		return fmt.Errorf("create voter: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateVoter(ctx context.Context, id uint, update models.VoterUpdate) (*models.Voter, error) {
	var voter models.Voter
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&voter, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVoterNotFound
			}
			return fmt.Errorf("load voter: %w", err)
		}
		update.Apply(&voter)
		if err := tx.Save(&voter).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateVoter
			}
			return fmt.Errorf("save voter: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &voter, nil
}

func (s *GormStore) DeleteVoter(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Voter{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete voter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVoterNotFound
	}
	return nil
}

func (s *GormStore) ListVoters(ctx context.Context) ([]models.Voter, error) {
	var voters []models.Voter
	if err := s.db.WithContext(ctx).Order("id").Find(&voters).Error; err != nil {
		return nil, fmt.Errorf("list voters: %w", err)
	}
	return voters, nil
}

// Candidate operations

func (s *GormStore) GetCandidateByID(ctx context.Context, id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := s.db.WithContext(ctx).First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return &candidate, nil
}

func (s *GormStore) CreateCandidate(ctx context.Context, candidate *models.Candidate) error {
	// A new candidate always starts at zero, whatever the caller sent.
	candidate.Votes = 0
	if err := s.db.WithContext(ctx).Create(candidate).Error; err != nil {
		return fmt.Errorf("create candidate: %w", err)
	}
	return nil
}

func (s *GormStore) UpdateCandidate(ctx context.Context, id uint, update models.CandidateUpdate) (*models.Candidate, error) {
	var candidate models.Candidate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&candidate, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCandidateNotFound
			}
			return fmt.Errorf("load candidate: %w", err)
		}
		update.Apply(&candidate)
		if err := tx.Save(&candidate).Error; err != nil {
			return fmt.Errorf("save candidate: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (s *GormStore) DeleteCandidate(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Candidate{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete candidate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (s *GormStore) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := s.db.WithContext(ctx).Order("id").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

// Admin operations

func (s *GormStore) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}

func (s *GormStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if err := s.db.WithContext(ctx).Create(admin).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateAdmin
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// CastVote runs the whole check-mark-increment sequence in one transaction
// with the voter row locked, so a concurrent double submit serializes on the
// row lock and the loser sees HasVoted already set.
func (s *GormStore) CastVote(ctx context.Context, voterID uint, candidateID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var voter models.Voter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&voter, voterID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVoterNotFound
			}
			return fmt.Errorf("lock voter row: %w", err)
		}
		if voter.HasVoted {
			return ErrAlreadyVoted
		}

		var candidate models.Candidate
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&candidate, candidateID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCandidateNotFound
			}
			return fmt.Errorf("lock candidate row: %w", err)
		}

		updates := map[string]any{"has_voted": true, "voted_for": candidateID}
		if err := tx.Model(&voter).Updates(updates).Error; err != nil {
			return fmt.Errorf("mark voter: %w", err)
		}
		err = tx.Model(&candidate).UpdateColumn("votes", gorm.Expr("votes + ?", 1)).Error
		if err != nil {
			return fmt.Errorf("increment tally: %w", err)
		}
		return nil
	})
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
