package profile

import (
	"math"
	"strings"
	"testing"

	"github.com/emersonmaddock/sophros/models"
)

func storedUser() *models.User {
	age := 30
	weight := 70.0
	height := 175.0
	return &models.User{
		ID:              "user-1",
		Age:             &age,
		WeightKg:        &weight,
		HeightCm:        &height,
		ActivityLevel:   models.ActivityModerate,
		PregnancyStatus: models.PregnancyNotPregnant,
		ShowImperial:    false,
	}
}

func metricForm() ProfileForm {
	return ProfileForm{
		Age:             "30",
		Weight:          "70",
		HeightCm:        "175",
		ShowImperial:    false,
		ActivityLevel:   models.ActivityModerate,
		PregnancyStatus: models.PregnancyNotPregnant,
	}
}

func TestBuildUpdateUnchangedIsNoOp(t *testing.T) {
	updates, errs := metricForm().BuildUpdate(storedUser())
	if len(errs) != 0 {
		t.Fatalf("unchanged form produced errors: %v", errs)
	}
	if !updates.IsEmpty() {
		t.Errorf("unchanged form produced updates: %+v", updates)
	}
}

func TestBuildUpdateEpsilonEdits(t *testing.T) {
	// Within 0.1 of the stored canonical value is treated as no change.
	form := metricForm()
	form.Weight = "70.05"
	form.HeightCm = "175.08"
	updates, errs := form.BuildUpdate(storedUser())
	if len(errs) != 0 {
		t.Fatalf("epsilon form produced errors: %v", errs)
	}
	if !updates.IsEmpty() {
		t.Errorf("within-epsilon edit produced updates: %+v", updates)
	}

	form.Weight = "71"
	updates, errs = form.BuildUpdate(storedUser())
	if len(errs) != 0 {
		t.Fatalf("changed form produced errors: %v", errs)
	}
	if updates.WeightKg == nil || *updates.WeightKg != 71 {
		t.Errorf("weight change not captured: %+v", updates)
	}
	if updates.HeightCm != nil {
		t.Error("within-epsilon height was written alongside the weight change")
	}
}

func TestBuildUpdateAgeOutOfRange(t *testing.T) {
	form := metricForm()
	form.Age = "12"
	updates, errs := form.BuildUpdate(storedUser())
	if len(errs) == 0 {
		t.Fatal("under-age form passed validation")
	}
	if !strings.Contains(errs[0], "13") {
		t.Errorf("message does not state the minimum age: %q", errs[0])
	}
	if !updates.IsEmpty() {
		t.Error("rejected submission still produced updates")
	}
}

func TestBuildUpdateRejectionIsAllOrNothing(t *testing.T) {
	// The weight edit is valid on its own, but an invalid age voids the
	// whole submission.
	form := metricForm()
	form.Age = "twelve"
	form.Weight = "80"
	updates, errs := form.BuildUpdate(storedUser())
	if len(errs) == 0 {
		t.Fatal("form with a bad age passed validation")
	}
	if !updates.IsEmpty() {
		t.Errorf("partial update leaked through a rejection: %+v", updates)
	}
}

func TestBuildUpdateImperialWeightOutOfRange(t *testing.T) {
	form := ProfileForm{
		Age:          "30",
		Weight:       "1000",
		HeightFeet:   "5",
		HeightInches: "9",
		ShowImperial: true,
	}
	_, errs := form.BuildUpdate(storedUser())
	if len(errs) == 0 {
		t.Fatal("1000 lbs passed validation")
	}
	found := false
	for _, msg := range errs {
		if strings.Contains(msg, "300kg") {
			found = true
		}
	}
	if !found {
		t.Errorf("no message states the 300kg ceiling: %v", errs)
	}
}

func TestBuildUpdateImperialConvertsToCanonical(t *testing.T) {
	form := ProfileForm{
		Age:          "30",
		Weight:       "165",
		HeightFeet:   "5",
		HeightInches: "9",
		ShowImperial: true,
	}
	updates, errs := form.BuildUpdate(storedUser())
	if len(errs) != 0 {
		t.Fatalf("imperial form produced errors: %v", errs)
	}
	if updates.WeightKg == nil || math.Abs(*updates.WeightKg-74.84268) > 0.01 {
		t.Errorf("165 lbs stored as %v kg, want about 74.84", updates.WeightKg)
	}
	if updates.HeightCm == nil || math.Abs(*updates.HeightCm-175.26) > 0.01 {
		t.Errorf("5'9\" stored as %v cm, want about 175.26", updates.HeightCm)
	}
	if updates.ShowImperial == nil || !*updates.ShowImperial {
		t.Error("unit preference change not captured")
	}
}

func TestBuildUpdateMissingFields(t *testing.T) {
	form := ProfileForm{ShowImperial: false}
	_, errs := form.BuildUpdate(storedUser())
	if len(errs) != 3 {
		t.Fatalf("empty form produced %d messages, want 3: %v", len(errs), errs)
	}
	for _, want := range []string{"Age", "Weight", "Height"} {
		found := false
		for _, msg := range errs {
			if strings.Contains(msg, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no message mentions %s: %v", want, errs)
		}
	}
}

func TestBuildUpdateUnknownActivityLevel(t *testing.T) {
	form := metricForm()
	form.ActivityLevel = "extreme"
	_, errs := form.BuildUpdate(storedUser())
	if len(errs) == 0 {
		t.Fatal("unknown activity level passed validation")
	}
}

func TestNewProfileFormMetricProjection(t *testing.T) {
	form := NewProfileForm(storedUser())
	if form.Age != "30" || form.Weight != "70" || form.HeightCm != "175" {
		t.Errorf("unexpected projection: %+v", form)
	}
	if form.HeightFeet != "5" || form.HeightInches != "9" {
		t.Errorf("imperial height fields not prefilled: %s'%s\"", form.HeightFeet, form.HeightInches)
	}
	if form.ShowImperial {
		t.Error("metric profile projected as imperial")
	}
}

func TestNewProfileFormImperialProjection(t *testing.T) {
	stored := storedUser()
	stored.ShowImperial = true
	form := NewProfileForm(stored)
	if !form.ShowImperial {
		t.Fatal("imperial profile projected as metric")
	}
	lbs := parseFloat(form.Weight)
	if lbs == nil || math.Abs(*lbs-154.3234) > 0.01 {
		t.Errorf("70 kg projected as %q lbs, want about 154.32", form.Weight)
	}
}

func TestWithUnitPreferenceRoundTrip(t *testing.T) {
	form := metricForm()
	toggled := form.WithUnitPreference(true)
	if !toggled.ShowImperial {
		t.Fatal("toggle to imperial did not take")
	}
	if toggled.HeightFeet != "5" || toggled.HeightInches != "9" {
		t.Errorf("175 cm toggled to %s'%s\", want 5'9\"", toggled.HeightFeet, toggled.HeightInches)
	}

	back := toggled.WithUnitPreference(false)
	if back.ShowImperial {
		t.Fatal("toggle back to metric did not take")
	}
	weight := parseFloat(back.Weight)
	if weight == nil || math.Abs(*weight-70) > 0.01 {
		t.Errorf("weight round-tripped to %q, want about 70", back.Weight)
	}
	height := parseFloat(back.HeightCm)
	if height == nil || math.Abs(*height-175) > 0.2 {
		t.Errorf("height round-tripped to %q, want about 175", back.HeightCm)
	}
}

func TestWithUnitPreferencePreservesEmptyFields(t *testing.T) {
	form := ProfileForm{Age: "30", ShowImperial: false}
	toggled := form.WithUnitPreference(true)
	if toggled.Weight != "" || toggled.HeightFeet != "" || toggled.HeightInches != "" {
		t.Errorf("empty fields gained values on toggle: %+v", toggled)
	}
	if toggled.Age != "30" {
		t.Error("age did not survive the toggle")
	}

	same := form.WithUnitPreference(false)
	if same != form {
		t.Error("toggling to the current system changed the buffer")
	}
}
