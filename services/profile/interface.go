package profile

import (
	userRepo "github.com/emersonmaddock/sophros/database/repository/user"
	"github.com/emersonmaddock/sophros/models"
)

// ProfileService manages the canonical biometric profile.
type ProfileService interface {
	// GetProfile returns the stored profile, or ErrNotOnboarded when the
	// user has not completed onboarding yet.
	GetProfile(userID string) (*models.User, error)
	// CreateProfile is the one-time onboarding submission.
	CreateProfile(userID string, req models.UserCreateRequest) (*models.User, error)
	// UpdateProfile applies a canonical-unit partial update.
	UpdateProfile(userID string, req models.UserUpdateRequest) (*models.User, error)
	// SaveProfileForm validates a raw edit-form buffer, diffs it against
	// the stored profile and applies only the changed fields. A diff with
	// zero changes is a success no-op.
	SaveProfileForm(userID string, form ProfileForm) (*models.User, error)
	// DailyTargets derives recommended daily intake bands (BMR, TDEE
	// calories, AMDR macros) from the stored biometrics.
	DailyTargets(userID string) (*DailyTargets, error)
	// DeleteProfile removes the profile entirely.
	DeleteProfile(userID string) error
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo userRepo.UserRepository
}
