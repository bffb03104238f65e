package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/ledger"
	"github.com/Santo1607/AIVoteSystem/middleware"
	"github.com/Santo1607/AIVoteSystem/store"
)

type VoteController struct {
	store  store.Store
	ledger ledger.Ledger
	logger *slog.Logger

	// BiometricDelay simulates the scan-and-match time of the biometric
	// check. Tests set it to zero.
	BiometricDelay time.Duration
}

func NewVoteController(s store.Store, l ledger.Ledger, logger *slog.Logger) *VoteController {
	if logger == nil {
		logger = slog.Default()
	}
	return &VoteController{
		store:          s,
		ledger:         l,
		logger:         logger,
		BiometricDelay: 500 * time.Millisecond,
	}
}

// CastVote handles POST /api/vote. The voterId in the body must belong to
// the authenticated voter; admins may cast on behalf of any voter for demo
// walkthroughs.
func (vc *VoteController) CastVote(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input struct {
		VoterID     string `json:"voterId" binding:"required"`
		CandidateID uint   `json:"candidateId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !principal.IsAdmin() && principal.VoterID != input.VoterID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	voter, err := vc.store.GetVoterByVoterID(c.Request.Context(), input.VoterID)
	if err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}

	if err := vc.store.CastVote(c.Request.Context(), voter.ID, input.CandidateID); err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}

	// The ledger append is an audit record, not part of the commit; a
	// failure here never rolls the vote back.
	if vc.ledger != nil {
		ref, err := vc.ledger.RecordVote(voter.VoterID, input.CandidateID)
		if err != nil {
			vc.logger.Warn("ledger append failed after vote commit",
				"error", err, "candidate_id", input.CandidateID)
		} else {
			vc.logger.Info("vote cast", "candidate_id", input.CandidateID, "audit_ref", ref)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vote cast successfully"})
}

// VerifyBiometrics handles POST /api/verify-biometrics. The check is a
// simulation: the voter must exist, then verification always succeeds after
// the configured delay.
func (vc *VoteController) VerifyBiometrics(c *gin.Context) {
	var input struct {
		VoterID     string `json:"voterId" binding:"required"`
		FaceImage   string `json:"faceImage" binding:"required"`
		Fingerprint string `json:"fingerprint" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := vc.store.GetVoterByVoterID(c.Request.Context(), input.VoterID); err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}

	if vc.BiometricDelay > 0 {
		time.Sleep(vc.BiometricDelay)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Biometric verification successful",
		"verified": true,
	})
}
