// File: sophros/models/user.go
package models

import "time"

// Sex is the biological sex recorded on a profile.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel follows the USDA physical-activity tiers used for TDEE.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// PregnancyStatus is only meaningful when Sex is female.
type PregnancyStatus string

const (
	PregnancyNotPregnant            PregnancyStatus = "not_pregnant"
	PregnancyPregnant               PregnancyStatus = "pregnant"
	PregnancyBreastfeedingExclusive PregnancyStatus = "breastfeeding_exclusive"
	PregnancyBreastfeedingPartial   PregnancyStatus = "breastfeeding_partial"
)

// ValidActivityLevels lists every accepted activity level value.
var ValidActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// ValidPregnancyStatuses lists every accepted pregnancy status value.
var ValidPregnancyStatuses = []PregnancyStatus{
	PregnancyNotPregnant, PregnancyPregnant,
	PregnancyBreastfeedingExclusive, PregnancyBreastfeedingPartial,
}

// DietaryPreferences carries allergy, cuisine and diet selections.
type DietaryPreferences struct {
	Allergies      []string `bson:"allergies,omitempty" json:"allergies,omitempty"`
	IncludeCuisine []string `bson:"includeCuisine,omitempty" json:"includeCuisine,omitempty"`
	ExcludeCuisine []string `bson:"excludeCuisine,omitempty" json:"excludeCuisine,omitempty"`
	IsGlutenFree   bool     `bson:"isGlutenFree" json:"isGlutenFree"`
	IsKetogenic    bool     `bson:"isKetogenic" json:"isKetogenic"`
	IsVegetarian   bool     `bson:"isVegetarian" json:"isVegetarian"`
	IsVegan        bool     `bson:"isVegan" json:"isVegan"`
	IsPescatarian  bool     `bson:"isPescatarian" json:"isPescatarian"`
}

// User is the canonical biometric profile. Weight is always stored in
// kilograms and height in centimeters regardless of the display preference;
// only ShowImperial toggles how clients render the values.
type User struct {
	ID              string              `bson:"id" json:"id"` // identity-provider UID
	Email           string              `bson:"email" json:"email"`
	IsActive        bool                `bson:"isActive" json:"isActive"`
	Age             *int                `bson:"age,omitempty" json:"age"`
	WeightKg        *float64            `bson:"weightKg,omitempty" json:"weightKg"`
	HeightCm        *float64            `bson:"heightCm,omitempty" json:"heightCm"`
	Sex             Sex                 `bson:"sex,omitempty" json:"sex,omitempty"`
	ActivityLevel   ActivityLevel       `bson:"activityLevel,omitempty" json:"activityLevel,omitempty"`
	PregnancyStatus PregnancyStatus     `bson:"pregnancyStatus,omitempty" json:"pregnancyStatus,omitempty"`
	ShowImperial    bool                `bson:"showImperial" json:"showImperial"`
	Dietary         *DietaryPreferences `bson:"dietary,omitempty" json:"dietary,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// UserCreateRequest is the one-time onboarding payload. Biometric values
// arrive already converted to canonical units.
type UserCreateRequest struct {
	Email           string              `json:"email"`
	Age             int                 `json:"age"`
	WeightKg        float64             `json:"weightKg"`
	HeightCm        float64             `json:"heightCm"`
	Sex             Sex                 `json:"sex"`
	ActivityLevel   ActivityLevel       `json:"activityLevel"`
	PregnancyStatus PregnancyStatus     `json:"pregnancyStatus,omitempty"`
	ShowImperial    bool                `json:"showImperial"`
	Dietary         *DietaryPreferences `json:"dietary,omitempty"`
}

// UserUpdateRequest is a partial update; nil means "leave unchanged".
type UserUpdateRequest struct {
	Email           *string             `json:"email,omitempty"`
	Age             *int                `json:"age,omitempty"`
	WeightKg        *float64            `json:"weightKg,omitempty"`
	HeightCm        *float64            `json:"heightCm,omitempty"`
	Sex             *Sex                `json:"sex,omitempty"`
	ActivityLevel   *ActivityLevel      `json:"activityLevel,omitempty"`
	PregnancyStatus *PregnancyStatus    `json:"pregnancyStatus,omitempty"`
	ShowImperial    *bool               `json:"showImperial,omitempty"`
	Dietary         *DietaryPreferences `json:"dietary,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r UserUpdateRequest) IsEmpty() bool {
	return r.Email == nil && r.Age == nil && r.WeightKg == nil && r.HeightCm == nil &&
		r.Sex == nil && r.ActivityLevel == nil && r.PregnancyStatus == nil &&
		r.ShowImperial == nil && r.Dietary == nil
}
