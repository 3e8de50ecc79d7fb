package profile

import (
	"errors"
	"fmt"

	userRepo "github.com/emersonmaddock/sophros/database/repository/user"
	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/utils"

	"go.uber.org/zap"
)

// GetProfile returns the stored profile or ErrNotOnboarded.
func (s *DefaultProfileService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if errors.Is(err, userRepo.ErrNotFound) {
		return nil, ErrNotOnboarded
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return user, nil
}

// CreateProfile performs the one-time onboarding submission. Values arrive
// in canonical units and are range-checked before the insert.
func (s *DefaultProfileService) CreateProfile(userID string, req models.UserCreateRequest) (*models.User, error) {
	logger := utils.GetLogger()

	if _, err := s.Repo.GetByID(userID); err == nil {
		return nil, ErrAlreadyOnboarded
	} else if !errors.Is(err, userRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	if errs := validateCreate(req); len(errs) > 0 {
		return nil, ValidationError{Messages: errs}
	}

	if req.PregnancyStatus == "" {
		// Default for males and unspecified input.
		req.PregnancyStatus = models.PregnancyNotPregnant
	}

	user := &models.User{
		ID:              userID,
		Email:           req.Email,
		IsActive:        true,
		Age:             &req.Age,
		WeightKg:        &req.WeightKg,
		HeightCm:        &req.HeightCm,
		Sex:             req.Sex,
		ActivityLevel:   req.ActivityLevel,
		PregnancyStatus: req.PregnancyStatus,
		ShowImperial:    req.ShowImperial,
		Dietary:         req.Dietary,
	}

	if err := s.Repo.Create(user); err != nil {
		logger.Error("Failed to create profile", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	logger.Info("Profile created", zap.String("userID", userID))
	return user, nil
}

// DeleteProfile removes the profile entirely.
func (s *DefaultProfileService) DeleteProfile(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrNotOnboarded
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// validateCreate range-checks an onboarding payload.
func validateCreate(req models.UserCreateRequest) []string {
	var errs []string

	if req.Email == "" {
		errs = append(errs, "Email is required.")
	}
	if req.Age < MinAge || req.Age > MaxAge {
		errs = append(errs, fmt.Sprintf("Age must be between %d and %d.", MinAge, MaxAge))
	}
	if req.WeightKg < MinWeightKg || req.WeightKg > MaxWeightKg {
		errs = append(errs, fmt.Sprintf("Weight must be between %vkg and %vkg.", MinWeightKg, MaxWeightKg))
	}
	if req.HeightCm < MinHeightCm || req.HeightCm > MaxHeightCm {
		errs = append(errs, fmt.Sprintf("Height must be between %vcm and %vcm.", MinHeightCm, MaxHeightCm))
	}
	if req.Sex != models.SexMale && req.Sex != models.SexFemale {
		errs = append(errs, "Sex is not recognized.")
	}
	if !validActivityLevel(req.ActivityLevel) {
		errs = append(errs, "Activity level is not recognized.")
	}
	if req.PregnancyStatus != "" && !validPregnancyStatus(req.PregnancyStatus) {
		errs = append(errs, "Pregnancy status is not recognized.")
	}
	return errs
}
