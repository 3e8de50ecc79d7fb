// File: sophros/services/schedule/service.go
package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/utils"

	"go.uber.org/zap"
)

// ScheduleService is the week-planning surface consumed by the handlers.
type ScheduleService interface {
	// GenerateWeek builds a fresh plan from the given preferences and
	// stores it, replacing any existing plan.
	GenerateWeek(ctx context.Context, userID string, prefs models.UserPreferences) (*models.WeekPlan, error)
	// GetWeek returns the stored plan, generating one from default
	// preferences when none exists.
	GetWeek(ctx context.Context, userID string) (*models.WeekPlan, error)
	// Alternatives returns candidate replacements for one item,
	// synthesizing and caching them when the item carries none.
	Alternatives(ctx context.Context, userID string, dayIndex int, itemID string) ([]models.WeeklyScheduleItem, error)
	// SwapItem, EditItem, AddItem and DeleteItem mutate one day of the
	// stored plan and return the updated day.
	SwapItem(ctx context.Context, userID string, dayIndex int, itemID string, alternative models.WeeklyScheduleItem) (*models.DaySchedule, error)
	EditItem(ctx context.Context, userID string, dayIndex int, item models.WeeklyScheduleItem) (*models.DaySchedule, error)
	AddItem(ctx context.Context, userID string, dayIndex int, item models.WeeklyScheduleItem) (*models.DaySchedule, error)
	DeleteItem(ctx context.Context, userID string, dayIndex int, itemID string) (*models.DaySchedule, error)
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Engine *Engine
	Store  PlanStore
}

func (s *DefaultScheduleService) GenerateWeek(ctx context.Context, userID string, prefs models.UserPreferences) (*models.WeekPlan, error) {
	logger := utils.GetLogger()

	plan := s.Engine.GenerateWeekPlan(prefs)
	if err := s.Store.Save(ctx, userID, plan); err != nil {
		logger.Error("Failed to store generated week plan", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	logger.Debug("Generated week plan",
		zap.String("userID", userID),
		zap.Time("weekStart", plan.WeekStart))
	return plan, nil
}

func (s *DefaultScheduleService) GetWeek(ctx context.Context, userID string) (*models.WeekPlan, error) {
	plan, err := s.Store.Get(ctx, userID)
	if errors.Is(err, ErrPlanNotFound) {
		return s.GenerateWeek(ctx, userID, models.UserPreferences{})
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// loadDay fetches the stored plan and selects one day by index.
func (s *DefaultScheduleService) loadDay(ctx context.Context, userID string, dayIndex int) (*models.WeekPlan, *models.DaySchedule, error) {
	if dayIndex < 0 || dayIndex > 6 {
		return nil, nil, ErrDayOutOfRange
	}

	plan, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if dayIndex >= len(plan.Days) {
		return nil, nil, ErrDayOutOfRange
	}
	return plan, &plan.Days[dayIndex], nil
}

func (s *DefaultScheduleService) Alternatives(ctx context.Context, userID string, dayIndex int, itemID string) ([]models.WeeklyScheduleItem, error) {
	plan, day, err := s.loadDay(ctx, userID, dayIndex)
	if err != nil {
		return nil, err
	}

	i := findItem(day, itemID)
	if i < 0 {
		return nil, ErrItemNotFound
	}

	item := day.Items[i]
	alternatives := s.Engine.GenerateAlternatives(item)

	// Synthesized alternatives are written back so the next request reuses
	// them instead of drawing again.
	if len(item.Alternatives) == 0 && len(alternatives) > 0 {
		day.Items[i].Alternatives = alternatives
		if err := s.Store.Save(ctx, userID, plan); err != nil {
			return nil, err
		}
	}

	return alternatives, nil
}

// mutate runs one mutation against the selected day and persists the plan.
func (s *DefaultScheduleService) mutate(ctx context.Context, userID string, dayIndex int, fn func(day *models.DaySchedule) error) (*models.DaySchedule, error) {
	plan, day, err := s.loadDay(ctx, userID, dayIndex)
	if err != nil {
		return nil, err
	}

	if err := fn(day); err != nil {
		return nil, err
	}

	if err := s.Store.Save(ctx, userID, plan); err != nil {
		return nil, fmt.Errorf("failed to persist mutated plan: %w", err)
	}
	return day, nil
}

func (s *DefaultScheduleService) SwapItem(ctx context.Context, userID string, dayIndex int, itemID string, alternative models.WeeklyScheduleItem) (*models.DaySchedule, error) {
	return s.mutate(ctx, userID, dayIndex, func(day *models.DaySchedule) error {
		return s.Engine.SwapItem(day, itemID, alternative)
	})
}

func (s *DefaultScheduleService) EditItem(ctx context.Context, userID string, dayIndex int, item models.WeeklyScheduleItem) (*models.DaySchedule, error) {
	return s.mutate(ctx, userID, dayIndex, func(day *models.DaySchedule) error {
		return s.Engine.EditItem(day, item)
	})
}

func (s *DefaultScheduleService) AddItem(ctx context.Context, userID string, dayIndex int, item models.WeeklyScheduleItem) (*models.DaySchedule, error) {
	return s.mutate(ctx, userID, dayIndex, func(day *models.DaySchedule) error {
		_, err := s.Engine.AddItem(day, item)
		return err
	})
}

func (s *DefaultScheduleService) DeleteItem(ctx context.Context, userID string, dayIndex int, itemID string) (*models.DaySchedule, error) {
	return s.mutate(ctx, userID, dayIndex, func(day *models.DaySchedule) error {
		return s.Engine.DeleteItem(day, itemID)
	})
}
