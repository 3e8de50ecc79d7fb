package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const healthCheckInterval = 60 * time.Second

// HealthStatus is the latest liveness snapshot of the backing services:
// the profile database and the two Redis caches.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	PlanCache bool      `json:"planCache"`
	AuthCache bool      `json:"authCache"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the most recent snapshot. Zero-valued until the
// monitor's first pass completes.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func checkHealth(ctx context.Context, mongoClient *mongo.Client, planCache, authCache *redis.Client) HealthStatus {
	status := HealthStatus{
		Mongo:     mongoClient.Ping(ctx, nil) == nil,
		PlanCache: planCache.Ping(ctx).Err() == nil,
		AuthCache: authCache.Ping(ctx).Err() == nil,
		CheckedAt: time.Now(),
	}
	if !status.Mongo || !status.PlanCache || !status.AuthCache {
		GetLogger().Warn("Backing service unhealthy",
			zap.Bool("mongo", status.Mongo),
			zap.Bool("planCache", status.PlanCache),
			zap.Bool("authCache", status.AuthCache))
	}
	return status
}

// StartHealthMonitor pings the backing services once immediately and then
// every minute, keeping the in-memory snapshot fresh for the health route.
func StartHealthMonitor(mongoClient *mongo.Client, planCache, authCache *redis.Client) {
	go func() {
		ctx := context.Background()

		store := func(status HealthStatus) {
			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
		store(checkHealth(ctx, mongoClient, planCache, authCache))

		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()
		for range ticker.C {
			store(checkHealth(ctx, mongoClient, planCache, authCache))
		}
	}()
}
