package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Santo1607/AIVoteSystem/middleware"
	"github.com/Santo1607/AIVoteSystem/store"
)

type AuthController struct {
	store     store.Store
	jwtSecret []byte
	logger    *slog.Logger
}

func NewAuthController(s store.Store, jwtSecret []byte, logger *slog.Logger) *AuthController {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthController{store: s, jwtSecret: jwtSecret, logger: logger}
}

// LoginVoter handles POST /api/auth/voter/login.
func (ac *AuthController) LoginVoter(c *gin.Context) {
	var input struct {
		VoterID  string `json:"voterId" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	voter, err := ac.store.GetVoterByVoterID(c.Request.Context(), input.VoterID)
	if err != nil {
		if errors.Is(err, store.ErrVoterNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		respondStoreError(c, ac.logger, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(voter.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	principal := middleware.Principal{
		ID:      voter.ID,
		Role:    middleware.RoleVoter,
		VoterID: voter.VoterID,
		Name:    voter.Name,
	}
	token, err := middleware.IssueToken(principal, ac.jwtSecret)
	if err != nil {
		ac.logger.Error("failed to sign voter token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ac.logger.Info("voter logged in", "voter_id", voter.VoterID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"voter": gin.H{
			"id":      voter.ID,
			"voterId": voter.VoterID,
			"name":    voter.Name,
		},
		"token": token,
	})
}

// LoginAdmin handles POST /api/auth/admin/login.
func (ac *AuthController) LoginAdmin(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	admin, err := ac.store.GetAdminByUsername(c.Request.Context(), input.Username)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		respondStoreError(c, ac.logger, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	principal := middleware.Principal{
		ID:       admin.ID,
		Role:     middleware.RoleAdmin,
		Username: admin.Username,
	}
	token, err := middleware.IssueToken(principal, ac.jwtSecret)
	if err != nil {
		ac.logger.Error("failed to sign admin token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	ac.logger.Info("admin logged in", "username", admin.Username)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
		"token": token,
	})
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so there is
// nothing to revoke server-side; the client discards its token.
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me handles GET /api/me and echoes the authenticated principal.
func (ac *AuthController) Me(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	if principal.IsAdmin() {
		c.JSON(http.StatusOK, gin.H{
			"type": "admin",
			"user": gin.H{"id": principal.ID, "username": principal.Username},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"type": "voter",
		"user": gin.H{"id": principal.ID, "voterId": principal.VoterID, "name": principal.Name},
	})
}
