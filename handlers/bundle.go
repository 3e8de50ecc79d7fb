package handlers

import (
	"net/http"

	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Profile endpoints.
	OnboardUserHandler     gin.HandlerFunc
	GetProfileHandler      gin.HandlerFunc
	UpdateProfileHandler   gin.HandlerFunc
	SaveProfileFormHandler gin.HandlerFunc
	GetDailyTargetsHandler gin.HandlerFunc
	DeleteProfileHandler   gin.HandlerFunc

	// Week-planning endpoints.
	GenerateWeekHandler    gin.HandlerFunc
	GetWeekHandler         gin.HandlerFunc
	GetAlternativesHandler gin.HandlerFunc
	SwapItemHandler        gin.HandlerFunc
	EditItemHandler        gin.HandlerFunc
	AddItemHandler         gin.HandlerFunc
	DeleteItemHandler      gin.HandlerFunc
}

// HealthHandler reports the latest health snapshot of external services.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"services": utils.GetHealthStatus(),
	})
}
