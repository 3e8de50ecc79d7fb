// File: sophros/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emersonmaddock/sophros/config"
	"github.com/emersonmaddock/sophros/database"
	userRepoPkg "github.com/emersonmaddock/sophros/database/repository/user"
	"github.com/emersonmaddock/sophros/handlers"
	"github.com/emersonmaddock/sophros/middleware"
	"github.com/emersonmaddock/sophros/routes"
	"github.com/emersonmaddock/sophros/services/profile"
	"github.com/emersonmaddock/sophros/services/schedule"
	"github.com/emersonmaddock/sophros/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitPlanCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	profileService := &profile.DefaultProfileService{
		Repo: userRepo,
	}

	planTTL := time.Duration(config.AppConfig.PlanTTLMinutes) * time.Minute
	scheduleService := &schedule.DefaultScheduleService{
		Engine: schedule.NewEngine(),
		Store:  schedule.NewRedisPlanStore(utils.GetPlanCacheClient(), planTTL),
	}

	userHandler := handlers.NewUserHandler(profileService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		OnboardUserHandler:     userHandler.OnboardUserHandler,
		GetProfileHandler:      userHandler.GetProfileHandler,
		UpdateProfileHandler:   userHandler.UpdateProfileHandler,
		SaveProfileFormHandler: userHandler.SaveProfileFormHandler,
		GetDailyTargetsHandler: userHandler.GetDailyTargetsHandler,
		DeleteProfileHandler:   userHandler.DeleteProfileHandler,

		GenerateWeekHandler:    scheduleHandler.GenerateWeekHandler,
		GetWeekHandler:         scheduleHandler.GetWeekHandler,
		GetAlternativesHandler: scheduleHandler.GetAlternativesHandler,
		SwapItemHandler:        scheduleHandler.SwapItemHandler,
		EditItemHandler:        scheduleHandler.EditItemHandler,
		AddItemHandler:         scheduleHandler.AddItemHandler,
		DeleteItemHandler:      scheduleHandler.DeleteItemHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(database.MongoClient, utils.GetPlanCacheClient(), utils.GetAuthCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
