// File: sophros/handlers/user.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/services/profile"
	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the profile endpoints.
type UserHandler struct {
	Service profile.ProfileService
}

func NewUserHandler(svc profile.ProfileService) *UserHandler {
	return &UserHandler{Service: svc}
}

// respondProfileError maps profile-service errors onto HTTP responses.
func respondProfileError(c *gin.Context, err error) {
	var ve profile.ValidationError
	switch {
	case errors.Is(err, profile.ErrNotOnboarded):
		// Valid state, not a failure: the client should run onboarding.
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found", "code": "not_onboarded"})
	case errors.Is(err, profile.ErrAlreadyOnboarded):
		utils.JSONError(c, http.StatusConflict, "Profile already exists", "")
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Error(), strings.Join(ve.Messages, " "))
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process profile request", "")
	}
}

// OnboardUserHandler creates the profile from the onboarding payload.
func (h *UserHandler) OnboardUserHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid onboarding request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	created, err := h.Service.CreateProfile(userID, req)
	if err != nil {
		logger.Error("Failed to create profile", zap.String("userID", userID), zap.Error(err))
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.Service.GetProfile(userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotOnboarded) {
			logger.Error("Failed to get profile", zap.String("userID", userID), zap.Error(err))
		}
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfileHandler applies a canonical-unit partial update.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.UpdateProfile(userID, req)
	if err != nil {
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// SaveProfileFormHandler validates and saves the profile edit form. The
// whole form either lands as one update or is rejected with the first
// validation message; an unchanged form is a success no-op.
func (h *UserHandler) SaveProfileFormHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var form profile.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		logger.Error("Invalid profile form", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	saved, err := h.Service.SaveProfileForm(userID, form)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, saved)
}

// GetDailyTargetsHandler returns the daily intake bands derived from the
// stored profile.
func (h *UserHandler) GetDailyTargetsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	targets, err := h.Service.DailyTargets(userID)
	if err != nil {
		if !errors.Is(err, profile.ErrNotOnboarded) {
			logger.Error("Failed to compute daily targets", zap.String("userID", userID), zap.Error(err))
		}
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, targets)
}

// DeleteProfileHandler removes the authenticated user's profile.
func (h *UserHandler) DeleteProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeleteProfile(userID); err != nil {
		logger.Error("Failed to delete profile", zap.String("userID", userID), zap.Error(err))
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
