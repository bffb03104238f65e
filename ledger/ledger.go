// Package ledger is the audit-log stand-in for the smart contract the
// production design called for. It records successful votes as encrypted
// receipts in memory; it provides no consensus and no persistence, and the
// entity store never depends on it for correctness.
package ledger

import "errors"

var (
	ErrVotingClosed       = errors.New("voting is not open")
	ErrUnknownCandidate   = errors.New("candidate does not exist on the ledger")
	ErrAlreadyRecorded    = errors.New("voter has already been recorded on the ledger")
	ErrResultsNotReleased = errors.New("results have not been released yet")
)

// CandidateRecord is the ledger's view of a candidate. VoteCount reads as
// zero until results are released.
type CandidateRecord struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PartyName string `json:"partyName"`
	LogoHash  string `json:"logoHash"`
	VoteCount uint   `json:"voteCount"`
}

// Ledger is the narrow audit-sink interface the request layer talks to.
// RecordVote is called after a successful store commit; a ledger failure is
// logged and never rolls the vote back.
type Ledger interface {
	RegisterCandidate(id uint, name, partyName, logoURL string) error
	StartVoting() error
	EndVoting() error
	ReleaseResults() error

	// RecordVote appends an encrypted receipt for the vote and returns an
	// opaque audit reference.
	RecordVote(voterID string, candidateID uint) (string, error)

	VoterStatus(voterID string) (bool, error)
	Candidates() ([]CandidateRecord, error)
	TotalVotes() (uint, error)
}
