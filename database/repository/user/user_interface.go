package userRepo

import (
	"github.com/emersonmaddock/sophros/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no profile exists for the requested user.
// Callers treat it as the "not yet onboarded" state, not a failure.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user profile not found" }

// UserRepository defines methods for profile data access.
type UserRepository interface {
	// GetByID retrieves a profile by identity-provider UID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a profile by its email address.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new profile record.
	Create(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a profile.
	UpdateSetDocument(id string, fields bson.M) error
	// Delete removes a profile record by its ID.
	Delete(id string) error
	// GetByIDWithProjection retrieves a profile by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
}
