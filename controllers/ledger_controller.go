package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/ledger"
)

// LedgerController exposes the election-lifecycle surface of the simulated
// ledger. All routes are admin-only except VoterStatus.
type LedgerController struct {
	ledger ledger.Ledger
	logger *slog.Logger
}

func NewLedgerController(l ledger.Ledger, logger *slog.Logger) *LedgerController {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerController{ledger: l, logger: logger}
}

// StartVoting handles POST /api/blockchain/start-voting.
func (lc *LedgerController) StartVoting(c *gin.Context) {
	if err := lc.ledger.StartVoting(); err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Voting has been started"})
}

// EndVoting handles POST /api/blockchain/end-voting.
func (lc *LedgerController) EndVoting(c *gin.Context) {
	if err := lc.ledger.EndVoting(); err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Voting has been ended"})
}

// ReleaseResults handles POST /api/blockchain/release-results.
func (lc *LedgerController) ReleaseResults(c *gin.Context) {
	if err := lc.ledger.ReleaseResults(); err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Results have been released"})
}

// Candidates handles GET /api/blockchain/candidates. Vote counts read as
// zero until results are released.
func (lc *LedgerController) Candidates(c *gin.Context) {
	records, err := lc.ledger.Candidates()
	if err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "candidates": records})
}

// VoterStatus handles GET /api/blockchain/voters/:voterId/status.
func (lc *LedgerController) VoterStatus(c *gin.Context) {
	voted, err := lc.ledger.VoterStatus(c.Param("voterId"))
	if err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hasVoted": voted})
}

// TotalVotes handles GET /api/blockchain/total-votes.
func (lc *LedgerController) TotalVotes(c *gin.Context) {
	total, err := lc.ledger.TotalVotes()
	if err != nil {
		lc.respondLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "totalVotes": total})
}

func (lc *LedgerController) respondLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrVotingClosed),
		errors.Is(err, ledger.ErrAlreadyRecorded),
		errors.Is(err, ledger.ErrResultsNotReleased):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, ledger.ErrUnknownCandidate):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	default:
		lc.logger.Error("ledger failure", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
