package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/ledger"
	"github.com/Santo1607/AIVoteSystem/models"
	"github.com/Santo1607/AIVoteSystem/store"
)

type CandidateController struct {
	store  store.Store
	ledger ledger.Ledger
	logger *slog.Logger
}

func NewCandidateController(s store.Store, l ledger.Ledger, logger *slog.Logger) *CandidateController {
	if logger == nil {
		logger = slog.Default()
	}
	return &CandidateController{store: s, ledger: l, logger: logger}
}

// List handles GET /api/candidates. Public; tallies are always included,
// the relational store never gates results.
func (cc *CandidateController) List(c *gin.Context) {
	candidates, err := cc.store.ListCandidates(c.Request.Context())
	if err != nil {
		respondStoreError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// Get handles GET /api/candidates/:id. Public.
func (cc *CandidateController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate id"})
		return
	}

	candidate, err := cc.store.GetCandidateByID(c.Request.Context(), uint(id))
	if err != nil {
		respondStoreError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Create handles POST /api/candidates (admin only). The tally always starts
// at zero regardless of the request body, and the new candidate is mirrored
// onto the audit ledger best-effort.
func (cc *CandidateController) Create(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required"`
		PartyName    string `json:"partyName" binding:"required"`
		PartyLogo    string `json:"partyLogo" binding:"required"`
		Constituency string `json:"constituency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	candidate := models.Candidate{
		Name:         input.Name,
		PartyName:    input.PartyName,
		PartyLogo:    input.PartyLogo,
		Constituency: input.Constituency,
	}
	if err := cc.store.CreateCandidate(c.Request.Context(), &candidate); err != nil {
		respondStoreError(c, cc.logger, err)
		return
	}

	if cc.ledger != nil {
		if err := cc.ledger.RegisterCandidate(candidate.ID, candidate.Name, candidate.PartyName, candidate.PartyLogo); err != nil {
			cc.logger.Warn("failed to mirror candidate onto ledger", "error", err, "candidate_id", candidate.ID)
		}
	}

	cc.logger.Info("candidate created", "candidate_id", candidate.ID, "party", candidate.PartyName)
	c.JSON(http.StatusCreated, candidate)
}

// Update handles PUT /api/candidates/:id (admin only).
func (cc *CandidateController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate id"})
		return
	}

	var update models.CandidateUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	candidate, err := cc.store.UpdateCandidate(c.Request.Context(), uint(id), update)
	if err != nil {
		respondStoreError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// Delete handles DELETE /api/candidates/:id (admin only).
func (cc *CandidateController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid candidate id"})
		return
	}

	if err := cc.store.DeleteCandidate(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, cc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate deleted successfully"})
}
