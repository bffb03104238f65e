package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Santo1607/AIVoteSystem/middleware"
	"github.com/Santo1607/AIVoteSystem/models"
	"github.com/Santo1607/AIVoteSystem/store"
)

type VoterController struct {
	store  store.Store
	logger *slog.Logger
}

func NewVoterController(s store.Store, logger *slog.Logger) *VoterController {
	if logger == nil {
		logger = slog.Default()
	}
	return &VoterController{store: s, logger: logger}
}

// List handles GET /api/voters (admin only).
func (vc *VoterController) List(c *gin.Context) {
	voters, err := vc.store.ListVoters(c.Request.Context())
	if err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, voters)
}

// Get handles GET /api/voters/:voterId. A voter may only read their own
// record; admins may read any.
func (vc *VoterController) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	voterID := c.Param("voterId")
	if !principal.IsAdmin() && principal.VoterID != voterID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	voter, err := vc.store.GetVoterByVoterID(c.Request.Context(), voterID)
	if err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

type createVoterInput struct {
	VoterID       string `json:"voterId" binding:"required"`
	AadhaarNumber string `json:"aadhaarNumber" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Password      string `json:"password" binding:"required"`
	DOB           string `json:"dob" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Gender        string `json:"gender" binding:"required"`
	Address       string `json:"address" binding:"required"`
	State         string `json:"state" binding:"required"`
	District      string `json:"district" binding:"required"`
	Pincode       string `json:"pincode" binding:"required"`
	MaritalStatus string `json:"maritalStatus" binding:"required"`
	ProfileImage  string `json:"profileImage"`
}

// Create handles POST /api/voters (admin only).
func (vc *VoterController) Create(c *gin.Context) {
	var input createVoterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		vc.logger.Error("failed to hash voter password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	voter := models.Voter{
		VoterID:       input.VoterID,
		AadhaarNumber: input.AadhaarNumber,
		Name:          input.Name,
		Password:      string(hash),
		DOB:           input.DOB,
		Age:           input.Age,
		Email:         input.Email,
		Gender:        input.Gender,
		Address:       input.Address,
		State:         input.State,
		District:      input.District,
		Pincode:       input.Pincode,
		MaritalStatus: input.MaritalStatus,
		ProfileImage:  input.ProfileImage,
	}
	if err := vc.store.CreateVoter(c.Request.Context(), &voter); err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}

	vc.logger.Info("voter created", "voter_id", voter.VoterID)
	c.JSON(http.StatusCreated, voter)
}

// Update handles PUT /api/voters/:id (admin only). Fields absent from the
// body are left as they are; an included password is re-hashed.
func (vc *VoterController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid voter id"})
		return
	}

	var update models.VoterUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if update.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			vc.logger.Error("failed to hash voter password", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		hashed := string(hash)
		update.Password = &hashed
	}

	voter, err := vc.store.UpdateVoter(c.Request.Context(), uint(id), update)
	if err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, voter)
}

// Delete handles DELETE /api/voters/:id (admin only).
func (vc *VoterController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid voter id"})
		return
	}

	if err := vc.store.DeleteVoter(c.Request.Context(), uint(id)); err != nil {
		respondStoreError(c, vc.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voter deleted successfully"})
}
