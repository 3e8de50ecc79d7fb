package routes

import (
	"time"

	"github.com/emersonmaddock/sophros/handlers"
	"github.com/emersonmaddock/sophros/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("", hb.OnboardUserHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/form", hb.SaveProfileFormHandler)
		api.GET("/me/targets", hb.GetDailyTargetsHandler)
		api.DELETE("/me", hb.DeleteProfileHandler)
	}
}

// RegisterScheduleRoutes registers week-planning endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/week", hb.GenerateWeekHandler)
		api.GET("/week", hb.GetWeekHandler)
		api.GET("/week/days/:day/items/:itemID/alternatives", hb.GetAlternativesHandler)
		api.POST("/week/days/:day/items/:itemID/swap", hb.SwapItemHandler)
		api.PUT("/week/days/:day/items/:itemID", hb.EditItemHandler)
		api.POST("/week/days/:day/items", hb.AddItemHandler)
		api.DELETE("/week/days/:day/items/:itemID", hb.DeleteItemHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
