package ledger

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/codahale/sss"
	"github.com/google/uuid"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// Receipt digests are split into shareCount Shamir shares; shareThreshold
	// of them reconstruct the digest.
	shareCount     byte = 5
	shareThreshold byte = 2
)

// Receipt is one recorded vote on the simulated ledger.
type Receipt struct {
	Ref         string    `json:"ref"`
	Digest      string    `json:"digest"`
	Payload     string    `json:"payload"` // base64 secretbox ciphertext
	Shares      []string  `json:"shares"`  // base64 Shamir shares of the digest
	CandidateID uint      `json:"candidateId"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// Simulated is the in-memory Ledger. Voter identities are stored only as
// sha256 hashes; the ballot payload is sealed with the process encryption
// key. Each append waits confirmDelay to mimic block confirmation.
type Simulated struct {
	mu sync.Mutex

	candidates map[uint]CandidateRecord
	order      []uint
	status     map[string]bool    // voter hash -> recorded
	receipts   map[string]Receipt // voter hash -> receipt
	open       bool
	released   bool

	key          [32]byte
	confirmDelay time.Duration
	logger       *slog.Logger
}

func NewSimulated(key [32]byte, confirmDelay time.Duration, logger *slog.Logger) *Simulated {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulated{
		candidates:   make(map[uint]CandidateRecord),
		status:       make(map[string]bool),
		receipts:     make(map[string]Receipt),
		key:          key,
		confirmDelay: confirmDelay,
		logger:       logger,
	}
}

func (l *Simulated) RegisterCandidate(id uint, name, partyName, logoURL string) error {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.candidates[id]; !ok {
		l.order = append(l.order, id)
	}
	logoHash := sha256.Sum256([]byte(logoURL))
	l.candidates[id] = CandidateRecord{
		ID:        id,
		Name:      name,
		PartyName: partyName,
		LogoHash:  hex.EncodeToString(logoHash[:]),
	}
	return nil
}

func (l *Simulated) StartVoting() error {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = true
	return nil
}

func (l *Simulated) EndVoting() error {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = false
	return nil
}

func (l *Simulated) ReleaseResults() error {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released = true
	return nil
}

func (l *Simulated) RecordVote(voterID string, candidateID uint) (string, error) {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.open {
		return "", ErrVotingClosed
	}
	candidate, ok := l.candidates[candidateID]
	if !ok {
		return "", ErrUnknownCandidate
	}
	voterKey := hashVoter(voterID)
	if l.status[voterKey] {
		return "", ErrAlreadyRecorded
	}

	digest := sha256.Sum256([]byte(fmt.Sprintf("%s-%d-%d", voterID, candidateID, time.Now().UnixNano())))

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(fmt.Sprintf("%s|%d", voterID, candidateID)), &nonce, &l.key)

	shares, err := sss.Split(shareCount, shareThreshold, digest[:])
	if err != nil {
		return "", fmt.Errorf("split receipt digest: %w", err)
	}
	encoded := make([]string, 0, len(shares))
	for _, share := range shares {
		encoded = append(encoded, base64.StdEncoding.EncodeToString(share))
	}

	receipt := Receipt{
		Ref:         uuid.NewString(),
		Digest:      hex.EncodeToString(digest[:]),
		Payload:     base64.StdEncoding.EncodeToString(sealed),
		Shares:      encoded,
		CandidateID: candidateID,
		RecordedAt:  time.Now().UTC(),
	}

	candidate.VoteCount++
	l.candidates[candidateID] = candidate
	l.status[voterKey] = true
	l.receipts[voterKey] = receipt

	l.logger.Info("vote recorded on ledger", "ref", receipt.Ref, "candidate_id", candidateID)
	return receipt.Ref, nil
}

func (l *Simulated) VoterStatus(voterID string) (bool, error) {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status[hashVoter(voterID)], nil
}

// Candidates lists ledger candidates in registration order. Tallies are
// zeroed until results are released.
func (l *Simulated) Candidates() ([]CandidateRecord, error) {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	records := make([]CandidateRecord, 0, len(l.order))
	for _, id := range l.order {
		record := l.candidates[id]
		if !l.released {
			record.VoteCount = 0
		}
		records = append(records, record)
	}
	return records, nil
}

func (l *Simulated) TotalVotes() (uint, error) {
	l.sleep()
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.released {
		return 0, ErrResultsNotReleased
	}
	var total uint
	for _, candidate := range l.candidates {
		total += candidate.VoteCount
	}
	return total, nil
}

func (l *Simulated) sleep() {
	if l.confirmDelay > 0 {
		time.Sleep(l.confirmDelay)
	}
}

func hashVoter(voterID string) string {
	sum := sha256.Sum256([]byte(voterID))
	return hex.EncodeToString(sum[:])
}
