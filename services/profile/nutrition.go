// File: sophros/services/profile/nutrition.go
package profile

import "github.com/emersonmaddock/sophros/models"

// activityMultipliers maps each activity level to its USDA TDEE factor.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// AMDR shares of total calories per macronutrient (adult ranges), with the
// midpoint used as the target.
const (
	proteinMinShare    = 0.10
	proteinMaxShare    = 0.35
	proteinTargetShare = 0.225

	fatMinShare    = 0.20
	fatMaxShare    = 0.35
	fatTargetShare = 0.275

	carbMinShare    = 0.45
	carbMaxShare    = 0.65
	carbTargetShare = 0.55
)

const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarb    = 4
	caloriesPerGramFat     = 9

	// Calorie targets are offered as TDEE plus or minus this margin.
	calorieMargin = 250
)

// NutrientRange is a min/target/max band for one daily intake value.
type NutrientRange struct {
	Min    int    `json:"min"`
	Target int    `json:"target"`
	Max    int    `json:"max"`
	Unit   string `json:"unit"`
}

// DailyTargets are the recommended daily intake bands derived from a
// profile's biometrics. Calories center on TDEE; the macros follow AMDR.
type DailyTargets struct {
	BMR           int           `json:"bmr"`
	Calories      NutrientRange `json:"calories"`
	Protein       NutrientRange `json:"protein"`
	Carbohydrates NutrientRange `json:"carbohydrates"`
	Fat           NutrientRange `json:"fat"`
}

// CalculateBMR computes basal metabolic rate with the Mifflin-St Jeor
// equation. Unspecified sex uses the female constant as the conservative
// baseline.
func CalculateBMR(weightKg, heightCm float64, age int, sex models.Sex) int {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(bmr)
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to sedentary.
func CalculateTDEE(bmr int, level models.ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[models.ActivitySedentary]
	}
	return int(float64(bmr) * mult)
}

// macroRange converts calorie shares of the TDEE into grams per day.
func macroRange(tdee int, minShare, targetShare, maxShare float64, caloriesPerGram int) NutrientRange {
	grams := func(share float64) int {
		return int(float64(tdee) * share / float64(caloriesPerGram))
	}
	return NutrientRange{
		Min:    grams(minShare),
		Target: grams(targetShare),
		Max:    grams(maxShare),
		Unit:   "g",
	}
}

// CalculateDailyTargets derives the full set of daily intake bands from
// canonical biometric values.
func CalculateDailyTargets(age int, sex models.Sex, weightKg, heightCm float64, level models.ActivityLevel) DailyTargets {
	bmr := CalculateBMR(weightKg, heightCm, age, sex)
	tdee := CalculateTDEE(bmr, level)

	return DailyTargets{
		BMR: bmr,
		Calories: NutrientRange{
			Min:    tdee - calorieMargin,
			Target: tdee,
			Max:    tdee + calorieMargin,
			Unit:   "kcal",
		},
		Protein:       macroRange(tdee, proteinMinShare, proteinTargetShare, proteinMaxShare, caloriesPerGramProtein),
		Carbohydrates: macroRange(tdee, carbMinShare, carbTargetShare, carbMaxShare, caloriesPerGramCarb),
		Fat:           macroRange(tdee, fatMinShare, fatTargetShare, fatMaxShare, caloriesPerGramFat),
	}
}

// DailyTargets computes the intake bands for the stored profile.
func (s *DefaultProfileService) DailyTargets(userID string) (*DailyTargets, error) {
	stored, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if stored.Age == nil || stored.WeightKg == nil || stored.HeightCm == nil {
		return nil, ValidationError{Messages: []string{"Profile is missing age, weight or height."}}
	}

	targets := CalculateDailyTargets(*stored.Age, stored.Sex, *stored.WeightKg, *stored.HeightCm, stored.ActivityLevel)
	return &targets, nil
}
