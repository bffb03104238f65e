package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/Santo1607/AIVoteSystem/models"
)

const placeholderPortrait = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCAyMDAgMjAwIj48cmVjdCB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgZmlsbD0iI2U2ZTZlNiIvPjxjaXJjbGUgY3g9IjEwMCIgY3k9IjcwIiByPSI0MCIgZmlsbD0iIzk5OSIvPjxwYXRoIGQ9Ik01MCwxODAgTDUwLDE0MCBDNTAsMTAwIDc1LDkwIDEwMCw5MCBDMTMwLDkwIDE1MCwxMDAgMTUwLDE0MCBMMTUwLDE4MCI+PC9wYXRoPjwvc3ZnPg=="

// Seed loads the demo data set: one admin, four candidates and two voters.
// It is idempotent; when the default admin already exists the store is
// assumed seeded and nothing is written. Seeded voter passwords are their
// date of birth, stored as bcrypt hashes.
func Seed(ctx context.Context, s Store, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := s.GetAdminByUsername(ctx, "admin"); err == nil {
		logger.Info("seed skipped, demo data already present")
		return nil
	} else if !errors.Is(err, ErrAdminNotFound) {
		return fmt.Errorf("seed precheck: %w", err)
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	if err := s.CreateAdmin(ctx, &models.Admin{Username: "admin", Password: string(adminHash)}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	candidates := []models.Candidate{
		{Name: "Amit Sharma", PartyName: "Party A", PartyLogo: "https://via.placeholder.com/50?text=A", Constituency: "Bangalore Urban"},
		{Name: "Priya Patel", PartyName: "Party B", PartyLogo: "https://via.placeholder.com/50?text=B", Constituency: "Bangalore Urban"},
		{Name: "Rajiv Singh", PartyName: "Party C", PartyLogo: "https://via.placeholder.com/50?text=C", Constituency: "Bangalore Urban"},
		{Name: "Sunita Gupta", PartyName: "Party D", PartyLogo: "https://via.placeholder.com/50?text=D", Constituency: "Bangalore Urban"},
	}
	for i := range candidates {
		if err := s.CreateCandidate(ctx, &candidates[i]); err != nil {
			return fmt.Errorf("seed candidate %q: %w", candidates[i].Name, err)
		}
	}

	voters := []models.Voter{
		{
			VoterID:       "ABCD1234567",
			AadhaarNumber: "1234-5678-9012",
			Name:          "Rahul Kumar",
			DOB:           "15/08/1985",
			Age:           37,
			Email:         "rahul.kumar@example.com",
			Gender:        "Male",
			Address:       "123 Main Street, Gandhi Nagar, Apartment 4B",
			State:         "Karnataka",
			District:      "Bangalore Urban",
			Pincode:       "560001",
			MaritalStatus: "Married",
			ProfileImage:  placeholderPortrait,
		},
		{
			VoterID:       "EFGH9876543",
			AadhaarNumber: "5678-9012-3456",
			Name:          "Priya Singh",
			DOB:           "20/05/1994",
			Age:           29,
			Email:         "priya.singh@example.com",
			Gender:        "Female",
			Address:       "456 Park Avenue, Indira Nagar",
			State:         "Karnataka",
			District:      "Mysore",
			Pincode:       "570001",
			MaritalStatus: "Single",
			ProfileImage:  placeholderPortrait,
		},
	}
	for i := range voters {
		hash, err := bcrypt.GenerateFromPassword([]byte(voters[i].DOB), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash voter password: %w", err)
		}
		voters[i].Password = string(hash)
		if err := s.CreateVoter(ctx, &voters[i]); err != nil {
			return fmt.Errorf("seed voter %q: %w", voters[i].VoterID, err)
		}
	}

	logger.Info("demo data seeded",
		"admins", 1,
		"candidates", len(candidates),
		"voters", len(voters),
	)
	return nil
}
