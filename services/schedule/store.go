package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/utils"

	"github.com/go-redis/redis/v8"
)

// PlanStore keeps each user's current week plan between visits. Plans are
// transient: an expired or missing entry just means the next visit
// regenerates one.
type PlanStore interface {
	Get(ctx context.Context, userID string) (*models.WeekPlan, error)
	Save(ctx context.Context, userID string, plan *models.WeekPlan) error
	Delete(ctx context.Context, userID string) error
}

// RedisPlanStore stores plans as JSON values with a TTL.
type RedisPlanStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisPlanStore wires a plan store onto the given Redis client.
func NewRedisPlanStore(client *redis.Client, ttl time.Duration) *RedisPlanStore {
	return &RedisPlanStore{Client: client, TTL: ttl}
}

func planKey(userID string) string {
	return utils.PlanCachePrefix + userID
}

func (s *RedisPlanStore) Get(ctx context.Context, userID string) (*models.WeekPlan, error) {
	data, err := s.Client.Get(ctx, planKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load week plan for %s: %w", userID, err)
	}

	var plan models.WeekPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode stored week plan for %s: %w", userID, err)
	}
	return &plan, nil
}

func (s *RedisPlanStore) Save(ctx context.Context, userID string, plan *models.WeekPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode week plan for %s: %w", userID, err)
	}
	if err := s.Client.Set(ctx, planKey(userID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store week plan for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisPlanStore) Delete(ctx context.Context, userID string) error {
	if err := s.Client.Del(ctx, planKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete week plan for %s: %w", userID, err)
	}
	return nil
}

// MemoryPlanStore is an in-process PlanStore used when Redis is not
// configured and throughout the tests.
type MemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string]*models.WeekPlan
}

func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{plans: make(map[string]*models.WeekPlan)}
}

// clonePlan copies a plan down to the item alternatives, so callers never
// share slice backing arrays with the stored value.
func clonePlan(plan *models.WeekPlan) *models.WeekPlan {
	copied := *plan
	copied.Days = make([]models.DaySchedule, len(plan.Days))
	for i, day := range plan.Days {
		items := make([]models.WeeklyScheduleItem, len(day.Items))
		copy(items, day.Items)
		for j := range items {
			items[j].Alternatives = append([]models.WeeklyScheduleItem(nil), items[j].Alternatives...)
		}
		day.Items = items
		copied.Days[i] = day
	}
	return &copied
}

func (s *MemoryPlanStore) Get(_ context.Context, userID string) (*models.WeekPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[userID]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return clonePlan(plan), nil
}

func (s *MemoryPlanStore) Save(_ context.Context, userID string, plan *models.WeekPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[userID] = clonePlan(plan)
	return nil
}

func (s *MemoryPlanStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, userID)
	return nil
}
