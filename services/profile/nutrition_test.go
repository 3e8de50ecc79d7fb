package profile

import (
	"errors"
	"testing"

	"github.com/emersonmaddock/sophros/models"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		sex      models.Sex
		want     int
	}{
		// 10*80 + 6.25*180 - 5*30 + 5
		{"male", 80, 180, 30, models.SexMale, 1780},
		// 600 + 1031.25 - 125 - 161 = 1345.25, truncated
		{"female", 60, 165, 25, models.SexFemale, 1345},
		// unspecified sex uses the female constant
		{"unspecified", 60, 165, 25, "", 1345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateBMR(tt.weightKg, tt.heightCm, tt.age, tt.sex); got != tt.want {
				t.Errorf("CalculateBMR = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateTDEE(t *testing.T) {
	tests := []struct {
		name  string
		bmr   int
		level models.ActivityLevel
		want  int
	}{
		{"sedentary", 1500, models.ActivitySedentary, 1800},
		// 1500 * 1.725 = 2587.5, truncated
		{"active", 1500, models.ActivityActive, 2587},
		{"very active", 1000, models.ActivityVeryActive, 1900},
		// unknown levels fall back to sedentary
		{"unknown", 1000, "super_unknown_activity", 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateTDEE(tt.bmr, tt.level); got != tt.want {
				t.Errorf("CalculateTDEE = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDailyTargets(t *testing.T) {
	// Male, 30 years, 180 cm, 80 kg, moderate: BMR 1780, TDEE 2759.
	got := CalculateDailyTargets(30, models.SexMale, 80, 180, models.ActivityModerate)

	if got.BMR != 1780 {
		t.Errorf("BMR = %d, want 1780", got.BMR)
	}
	if got.Calories.Target != 2759 || got.Calories.Min != 2509 || got.Calories.Max != 3009 {
		t.Errorf("calories = %+v, want 2509/2759/3009", got.Calories)
	}
	if got.Calories.Unit != "kcal" {
		t.Errorf("calories unit = %q, want kcal", got.Calories.Unit)
	}

	tdee := float64(2759)
	// Protein: 10-35% of calories at 4 kcal/g.
	if got.Protein.Min != int(tdee*0.10/4) || got.Protein.Max != int(tdee*0.35/4) {
		t.Errorf("protein band = %+v", got.Protein)
	}
	// Fat: 20-35% at 9 kcal/g.
	if got.Fat.Min != int(tdee*0.20/9) || got.Fat.Max != int(tdee*0.35/9) {
		t.Errorf("fat band = %+v", got.Fat)
	}
	// Carbohydrates: 45-65% at 4 kcal/g.
	if got.Carbohydrates.Min != int(tdee*0.45/4) || got.Carbohydrates.Max != int(tdee*0.65/4) {
		t.Errorf("carbohydrate band = %+v", got.Carbohydrates)
	}

	for _, band := range []NutrientRange{got.Protein, got.Fat, got.Carbohydrates} {
		if band.Unit != "g" {
			t.Errorf("macro unit = %q, want g", band.Unit)
		}
		if !(band.Min <= band.Target && band.Target <= band.Max) {
			t.Errorf("band not ordered: %+v", band)
		}
	}
}

func TestDailyTargetsFromStoredProfile(t *testing.T) {
	svc, _ := newTestProfileService()
	req := createRequest()
	req.Age = 25
	req.WeightKg = 60
	req.HeightCm = 165
	if _, err := svc.CreateProfile("uid-t1", req); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	targets, err := svc.DailyTargets("uid-t1")
	if err != nil {
		t.Fatalf("DailyTargets failed: %v", err)
	}
	// Female 60/165/25 moderate: BMR 1345, TDEE 1345*1.55 = 2084.75.
	if targets.BMR != 1345 {
		t.Errorf("BMR = %d, want 1345", targets.BMR)
	}
	if targets.Calories.Target != 2084 {
		t.Errorf("calorie target = %d, want 2084", targets.Calories.Target)
	}
}

func TestDailyTargetsRequireOnboarding(t *testing.T) {
	svc, _ := newTestProfileService()
	if _, err := svc.DailyTargets("nobody"); !errors.Is(err, ErrNotOnboarded) {
		t.Errorf("DailyTargets for unknown user = %v, want ErrNotOnboarded", err)
	}
}
