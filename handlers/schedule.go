// File: sophros/handlers/schedule.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/services/schedule"
	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the week-planning endpoints.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// respondScheduleError maps schedule-service errors onto HTTP responses.
func respondScheduleError(c *gin.Context, err error) {
	var clockErr schedule.InvalidClockError
	switch {
	case errors.Is(err, schedule.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No week plan found", "code": "no_plan"})
	case errors.Is(err, schedule.ErrItemNotFound):
		utils.JSONError(c, http.StatusNotFound, "Schedule item not found", "")
	case errors.Is(err, schedule.ErrDayOutOfRange):
		utils.JSONError(c, http.StatusBadRequest, "Day index must be between 0 and 6", "")
	case errors.Is(err, schedule.ErrTypeMismatch):
		utils.JSONError(c, http.StatusBadRequest, "An item's type cannot change", "")
	case errors.As(err, &clockErr):
		utils.JSONError(c, http.StatusBadRequest, clockErr.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process schedule request", "")
	}
}

// dayIndex parses the :day route parameter.
func dayIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("day"))
	if err != nil || idx < 0 || idx > 6 {
		utils.JSONError(c, http.StatusBadRequest, "Day index must be between 0 and 6", "")
		return 0, false
	}
	return idx, true
}

// GenerateWeekHandler builds a fresh plan from the posted preferences.
// Missing or out-of-range preference fields fall back to defaults, so the
// planning screen is always renderable.
func (h *ScheduleHandler) GenerateWeekHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var prefs models.UserPreferences
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&prefs); err != nil {
			logger.Error("Invalid preferences payload", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
	}

	plan, err := h.Service.GenerateWeek(c.Request.Context(), userID, prefs)
	if err != nil {
		logger.Error("Failed to generate week plan", zap.String("userID", userID), zap.Error(err))
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// GetWeekHandler returns the stored plan, generating one when none exists.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	plan, err := h.Service.GetWeek(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load week plan", zap.String("userID", userID), zap.Error(err))
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// GetAlternativesHandler returns candidate replacements for one item.
func (h *ScheduleHandler) GetAlternativesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := dayIndex(c)
	if !ok {
		return
	}

	alternatives, err := h.Service.Alternatives(c.Request.Context(), userID, day, c.Param("itemID"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alternatives": alternatives})
}

// SwapItemHandler replaces an item with a chosen alternative while keeping
// the slot's identity.
func (h *ScheduleHandler) SwapItemHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := dayIndex(c)
	if !ok {
		return
	}

	var alternative models.WeeklyScheduleItem
	if err := c.ShouldBindJSON(&alternative); err != nil {
		logger.Error("Invalid swap payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.SwapItem(c.Request.Context(), userID, day, c.Param("itemID"), alternative)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// EditItemHandler replaces an item with a fully re-specified one.
func (h *ScheduleHandler) EditItemHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := dayIndex(c)
	if !ok {
		return
	}

	var item models.WeeklyScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.Error("Invalid edit payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	item.ID = c.Param("itemID")

	updated, err := h.Service.EditItem(c.Request.Context(), userID, day, item)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AddItemHandler inserts a new item into the selected day.
func (h *ScheduleHandler) AddItemHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := dayIndex(c)
	if !ok {
		return
	}

	var item models.WeeklyScheduleItem
	if err := c.ShouldBindJSON(&item); err != nil {
		logger.Error("Invalid add payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if item.Type != models.ItemMeal && item.Type != models.ItemWorkout && item.Type != models.ItemSleep {
		utils.JSONError(c, http.StatusBadRequest, "Item type must be meal, workout or sleep", "")
		return
	}

	updated, err := h.Service.AddItem(c.Request.Context(), userID, day, item)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, updated)
}

// DeleteItemHandler removes an item from the selected day.
func (h *ScheduleHandler) DeleteItemHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	day, ok := dayIndex(c)
	if !ok {
		return
	}

	updated, err := h.Service.DeleteItem(c.Request.Context(), userID, day, c.Param("itemID"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
