package store

import "errors"

var (
	ErrVoterNotFound     = errors.New("voter not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAlreadyVoted      = errors.New("voter has already cast a vote")
	ErrDuplicateVoter    = errors.New("voter with this ID or Aadhaar number already exists")
	ErrDuplicateAdmin    = errors.New("admin with this username already exists")
)
