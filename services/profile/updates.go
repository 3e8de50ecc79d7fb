// File: sophros/services/profile/updates.go
package profile

import (
	"errors"
	"fmt"
	"time"

	userRepo "github.com/emersonmaddock/sophros/database/repository/user"
	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UpdateProfile applies a canonical-unit partial update. Only non-nil
// fields are written; values are range-checked before anything is sent.
func (s *DefaultProfileService) UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error) {
	logger := utils.GetLogger()
	logger.Debug("UpdateProfile called", zap.String("userID", userID), zap.Any("updateRequest", req))

	if errs := validateUpdate(req); len(errs) > 0 {
		return nil, ValidationError{Messages: errs}
	}

	setFields := bson.M{
		"updatedAt": time.Now(),
	}

	if req.Email != nil {
		setFields["email"] = *req.Email
	}
	if req.Age != nil {
		setFields["age"] = *req.Age
	}
	if req.WeightKg != nil {
		setFields["weightKg"] = *req.WeightKg
	}
	if req.HeightCm != nil {
		setFields["heightCm"] = *req.HeightCm
	}
	if req.Sex != nil {
		setFields["sex"] = *req.Sex
	}
	if req.ActivityLevel != nil {
		setFields["activityLevel"] = *req.ActivityLevel
	}
	if req.PregnancyStatus != nil {
		setFields["pregnancyStatus"] = *req.PregnancyStatus
	}
	if req.ShowImperial != nil {
		setFields["showImperial"] = *req.ShowImperial
	}
	if req.Dietary != nil {
		setFields["dietary"] = *req.Dietary
	}

	if len(setFields) == 1 {
		logger.Warn("No updatable fields provided", zap.String("userID", userID))
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateSetDocument(userID, setFields); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrNotOnboarded
		}
		logger.Error("Failed to update profile", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		logger.Error("Failed to fetch updated profile", zap.String("userID", userID), zap.Error(err))
		return nil, err
	}

	logger.Debug("UpdateProfile success", zap.String("userID", userID))
	return updated, nil
}

// SaveProfileForm validates the raw edit buffer against the stored profile
// and applies the diff. Either every validated change lands in one update,
// or nothing is written. Zero changes is success without a write.
func (s *DefaultProfileService) SaveProfileForm(userID string, form ProfileForm) (*models.User, error) {
	logger := utils.GetLogger()

	stored, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates, errs := form.BuildUpdate(stored)
	if len(errs) > 0 {
		logger.Debug("Profile form rejected",
			zap.String("userID", userID),
			zap.Strings("messages", errs))
		return nil, ValidationError{Messages: errs}
	}

	if updates.IsEmpty() {
		logger.Debug("Profile form produced no changes", zap.String("userID", userID))
		return stored, nil
	}

	return s.UpdateProfile(userID, updates)
}

// validateUpdate range-checks the provided fields of a partial update.
func validateUpdate(req models.UserUpdateRequest) []string {
	var errs []string

	if req.Age != nil && (*req.Age < MinAge || *req.Age > MaxAge) {
		errs = append(errs, fmt.Sprintf("Age must be between %d and %d.", MinAge, MaxAge))
	}
	if req.WeightKg != nil && (*req.WeightKg < MinWeightKg || *req.WeightKg > MaxWeightKg) {
		errs = append(errs, fmt.Sprintf("Weight must be between %vkg and %vkg.", MinWeightKg, MaxWeightKg))
	}
	if req.HeightCm != nil && (*req.HeightCm < MinHeightCm || *req.HeightCm > MaxHeightCm) {
		errs = append(errs, fmt.Sprintf("Height must be between %vcm and %vcm.", MinHeightCm, MaxHeightCm))
	}
	if req.Sex != nil && *req.Sex != models.SexMale && *req.Sex != models.SexFemale {
		errs = append(errs, "Sex is not recognized.")
	}
	if req.ActivityLevel != nil && !validActivityLevel(*req.ActivityLevel) {
		errs = append(errs, "Activity level is not recognized.")
	}
	if req.PregnancyStatus != nil && !validPregnancyStatus(*req.PregnancyStatus) {
		errs = append(errs, "Pregnancy status is not recognized.")
	}
	return errs
}
