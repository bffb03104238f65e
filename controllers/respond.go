package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Santo1607/AIVoteSystem/store"
)

// respondStoreError is the single boundary where store errors become HTTP
// responses. Handlers never inspect error kinds themselves; anything not in
// the taxonomy is logged and surfaced as a generic 500.
func respondStoreError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, store.ErrVoterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Voter not found"})
	case errors.Is(err, store.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Candidate not found"})
	case errors.Is(err, store.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Admin not found"})
	case errors.Is(err, store.ErrAlreadyVoted):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already voted"})
	case errors.Is(err, store.ErrDuplicateVoter):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Voter with this ID or Aadhaar number already exists"})
	case errors.Is(err, store.ErrDuplicateAdmin):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Admin with this username already exists"})
	default:
		logger.Error("storage failure", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}
