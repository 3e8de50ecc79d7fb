// File: sophros/models/schedule.go
package models

import "time"

// ItemType is the closed set of schedule item kinds.
type ItemType string

const (
	ItemMeal    ItemType = "meal"
	ItemWorkout ItemType = "workout"
	ItemSleep   ItemType = "sleep"
)

// WeeklyScheduleItem is one scheduled activity in a day. ID is assigned at
// creation and never changes; Type never changes either. An edit replaces a
// same-typed item, it does not re-type it in place.
type WeeklyScheduleItem struct {
	ID       string   `json:"id"`
	Time     string   `json:"time"` // 12-hour wall clock, e.g. "7:30 AM"
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Duration string   `json:"duration"`
	Type     ItemType `json:"type"`

	// Type-specific fields.
	Calories    int     `json:"calories,omitempty"`    // meal
	WorkoutType string  `json:"workoutType,omitempty"` // workout
	TargetHours float64 `json:"targetHours,omitempty"` // sleep

	// Pre-generated candidate replacements for the same slot.
	Alternatives []WeeklyScheduleItem `json:"alternatives,omitempty"`
}

// DaySchedule is one calendar day's items, kept sorted ascending by
// time-of-day after every mutation.
type DaySchedule struct {
	DayOfWeek int                  `json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	Date      time.Time            `json:"date"`
	Items     []WeeklyScheduleItem `json:"items"`
}

// WeekPlan is seven consecutive DaySchedules anchored to the upcoming Sunday.
type WeekPlan struct {
	WeekStart time.Time     `json:"weekStart"`
	Days      []DaySchedule `json:"days"`
}

// UserPreferences drives week-plan generation. CalorieTarget,
// DietaryRestrictions and PreferredWorkoutTypes are carried but do not yet
// influence pool selection or calorie bands.
type UserPreferences struct {
	WakeUpTime            string   `json:"wakeUpTime"`
	SleepTime             string   `json:"sleepTime"`
	MealsPerDay           int      `json:"mealsPerDay"`
	WorkoutsPerWeek       int      `json:"workoutsPerWeek"`
	CalorieTarget         int      `json:"calorieTarget"`
	DietaryRestrictions   []string `json:"dietaryRestrictions,omitempty"`
	PreferredWorkoutTypes []string `json:"preferredWorkoutTypes,omitempty"`
}
