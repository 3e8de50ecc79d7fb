// File: sophros/services/profile/form.go
package profile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/emersonmaddock/sophros/models"
	"github.com/emersonmaddock/sophros/units"
)

// Validation thresholds for canonical biometric values. These are the only
// copies; every screen-facing surface validates through them.
const (
	MinAge      = 13
	MaxAge      = 120
	MinWeightKg = 20.0
	MaxWeightKg = 300.0
	MinHeightCm = 100.0
	MaxHeightCm = 250.0

	// A field is only written when it moved past these from the stored
	// value; equal-within-epsilon edits are no-ops.
	weightEpsilonKg = 0.1
	heightEpsilonCm = 0.1
)

var wholeNumber = regexp.MustCompile(`^\d+$`)

// ProfileForm is the transient edit buffer for the profile screen. All
// values are raw strings as typed; Weight is pounds and the height fields
// feet/inches when ShowImperial is set, otherwise kilograms/centimeters.
type ProfileForm struct {
	Age             string                 `json:"age"`
	Weight          string                 `json:"weight"`
	HeightCm        string                 `json:"heightCm"`
	HeightFeet      string                 `json:"heightFeet"`
	HeightInches    string                 `json:"heightInches"`
	ShowImperial    bool                   `json:"showImperial"`
	ActivityLevel   models.ActivityLevel   `json:"activityLevel,omitempty"`
	PregnancyStatus models.PregnancyStatus `json:"pregnancyStatus,omitempty"`
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseFloat returns nil for blank input and for input that is not a number.
func parseFloat(value string) *float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

// NewProfileForm projects a stored profile into an edit buffer in the
// user's preferred display units.
func NewProfileForm(stored *models.User) ProfileForm {
	form := ProfileForm{
		ShowImperial:    stored.ShowImperial,
		ActivityLevel:   stored.ActivityLevel,
		PregnancyStatus: stored.PregnancyStatus,
	}

	if stored.Age != nil {
		form.Age = strconv.Itoa(*stored.Age)
	}
	if stored.WeightKg != nil {
		if stored.ShowImperial {
			form.Weight = formatFloat(units.KgToLbs(*stored.WeightKg))
		} else {
			form.Weight = formatFloat(*stored.WeightKg)
		}
	}
	if stored.HeightCm != nil {
		form.HeightCm = formatFloat(*stored.HeightCm)
		feet, inches := units.CmToFeetAndInches(*stored.HeightCm)
		form.HeightFeet = strconv.Itoa(feet)
		form.HeightInches = strconv.Itoa(inches)
	}
	return form
}

// WithUnitPreference reprojects the in-progress buffer into the other unit
// system. Values survive the toggle unless their source field was empty.
func (f ProfileForm) WithUnitPreference(imperial bool) ProfileForm {
	if f.ShowImperial == imperial {
		return f
	}

	if imperial {
		if metricWeight := parseFloat(f.Weight); metricWeight != nil {
			f.Weight = formatFloat(units.KgToLbs(*metricWeight))
		} else {
			f.Weight = ""
		}
		if metricHeight := parseFloat(f.HeightCm); metricHeight != nil {
			feet, inches := units.CmToFeetAndInches(*metricHeight)
			f.HeightFeet = strconv.Itoa(feet)
			f.HeightInches = strconv.Itoa(inches)
		} else {
			f.HeightFeet = ""
			f.HeightInches = ""
		}
		f.ShowImperial = true
		return f
	}

	if imperialWeight := parseFloat(f.Weight); imperialWeight != nil {
		f.Weight = formatFloat(units.LbsToKg(*imperialWeight))
	} else {
		f.Weight = ""
	}

	hasImperialHeight := strings.TrimSpace(f.HeightFeet) != "" || strings.TrimSpace(f.HeightInches) != ""
	if hasImperialHeight {
		feet := 0.0
		inches := 0.0
		if v := parseFloat(f.HeightFeet); v != nil {
			feet = *v
		}
		if v := parseFloat(f.HeightInches); v != nil {
			inches = *v
		}
		f.HeightCm = formatFloat(units.FeetAndInchesToCm(feet, inches))
	} else {
		f.HeightCm = ""
	}
	f.ShowImperial = false
	return f
}

// BuildUpdate validates the buffer against the stored profile and returns
// the partial update containing only the fields that both pass validation
// and differ from the canonical values. A non-empty message list means the
// submission is rejected in full.
func (f ProfileForm) BuildUpdate(stored *models.User) (models.UserUpdateRequest, []string) {
	var updates models.UserUpdateRequest
	var errs []string

	ageText := strings.TrimSpace(f.Age)
	switch {
	case ageText == "":
		errs = append(errs, "Age is required.")
	case !wholeNumber.MatchString(ageText):
		errs = append(errs, "Age must be a whole number.")
	default:
		ageValue, _ := strconv.Atoi(ageText)
		if ageValue < MinAge || ageValue > MaxAge {
			errs = append(errs, fmt.Sprintf("Age must be between %d and %d.", MinAge, MaxAge))
		} else if stored.Age == nil || ageValue != *stored.Age {
			updates.Age = &ageValue
		}
	}

	enteredWeight := parseFloat(f.Weight)
	switch {
	case enteredWeight == nil:
		unit := "kg"
		if f.ShowImperial {
			unit = "lbs"
		}
		errs = append(errs, fmt.Sprintf("Weight is required (%s).", unit))
	case *enteredWeight < 0:
		errs = append(errs, "Weight cannot be negative.")
	default:
		weightKg := *enteredWeight
		if f.ShowImperial {
			weightKg = units.LbsToKg(weightKg)
		}
		if weightKg < MinWeightKg || weightKg > MaxWeightKg {
			errs = append(errs, fmt.Sprintf("Weight must be between %vkg and %vkg.", MinWeightKg, MaxWeightKg))
		} else if stored.WeightKg == nil || math.Abs(weightKg-*stored.WeightKg) > weightEpsilonKg {
			updates.WeightKg = &weightKg
		}
	}

	heightCm := f.heightCm(&errs)
	if heightCm != nil {
		if *heightCm < MinHeightCm || *heightCm > MaxHeightCm {
			errs = append(errs, fmt.Sprintf("Height must be between %vcm and %vcm.", MinHeightCm, MaxHeightCm))
		} else if stored.HeightCm == nil || math.Abs(*heightCm-*stored.HeightCm) > heightEpsilonCm {
			updates.HeightCm = heightCm
		}
	}

	if f.ActivityLevel != "" {
		if !validActivityLevel(f.ActivityLevel) {
			errs = append(errs, "Activity level is not recognized.")
		} else if f.ActivityLevel != stored.ActivityLevel {
			level := f.ActivityLevel
			updates.ActivityLevel = &level
		}
	}

	if f.PregnancyStatus != "" {
		if !validPregnancyStatus(f.PregnancyStatus) {
			errs = append(errs, "Pregnancy status is not recognized.")
		} else if f.PregnancyStatus != stored.PregnancyStatus {
			status := f.PregnancyStatus
			updates.PregnancyStatus = &status
		}
	}

	if f.ShowImperial != stored.ShowImperial {
		imperial := f.ShowImperial
		updates.ShowImperial = &imperial
	}

	if len(errs) > 0 {
		return models.UserUpdateRequest{}, errs
	}
	return updates, nil
}

// heightCm resolves the active height fields to centimeters, appending any
// validation messages. Returns nil when the input is unusable.
func (f ProfileForm) heightCm(errs *[]string) *float64 {
	if f.ShowImperial {
		hasFeet := strings.TrimSpace(f.HeightFeet) != ""
		hasInches := strings.TrimSpace(f.HeightInches) != ""
		if !hasFeet && !hasInches {
			*errs = append(*errs, "Height is required.")
			return nil
		}

		feet := 0.0
		inches := 0.0
		if hasFeet {
			v := parseFloat(f.HeightFeet)
			if v == nil {
				*errs = append(*errs, "Height must be numeric.")
				return nil
			}
			feet = *v
		}
		if hasInches {
			v := parseFloat(f.HeightInches)
			if v == nil {
				*errs = append(*errs, "Height must be numeric.")
				return nil
			}
			inches = *v
		}
		if feet < 0 || inches < 0 {
			*errs = append(*errs, "Height cannot be negative.")
			return nil
		}
		cm := units.FeetAndInchesToCm(feet, inches)
		return &cm
	}

	metricHeight := parseFloat(f.HeightCm)
	if metricHeight == nil {
		*errs = append(*errs, "Height is required (cm).")
		return nil
	}
	if *metricHeight < 0 {
		*errs = append(*errs, "Height cannot be negative.")
		return nil
	}
	return metricHeight
}

func validActivityLevel(level models.ActivityLevel) bool {
	for _, v := range models.ValidActivityLevels {
		if v == level {
			return true
		}
	}
	return false
}

func validPregnancyStatus(status models.PregnancyStatus) bool {
	for _, v := range models.ValidPregnancyStatuses {
		if v == status {
			return true
		}
	}
	return false
}
