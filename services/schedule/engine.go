// File: sophros/services/schedule/engine.go
package schedule

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/emersonmaddock/sophros/models"

	"github.com/google/uuid"
)

// mealKind selects the duration convention for a meal slot.
type mealKind string

const (
	kindBreakfast mealKind = "breakfast"
	kindLunch     mealKind = "lunch"
	kindDinner    mealKind = "dinner"
	kindSnack     mealKind = "snack"
)

// Default preference values substituted for missing or out-of-range input
// so generation always succeeds.
const (
	DefaultWakeUpTime      = "7:00 AM"
	DefaultSleepTime       = "10:30 PM"
	DefaultMealsPerDay     = 4
	DefaultWorkoutsPerWeek = 3
	DefaultCalorieTarget   = 2000
	defaultSleepTarget     = 8.0
)

// workoutDayPool is the fixed weekday preference order for intense workouts.
var workoutDayPool = []int{1, 3, 5} // Monday, Wednesday, Friday

// sleepTargetCandidates are the hour targets offered as sleep alternatives.
var sleepTargetCandidates = []float64{7, 7.5, 8, 8.5, 9}

// Engine generates and regenerates week plans. Randomness, the clock and
// the ID source are injected so callers can pin deterministic output.
type Engine struct {
	rnd   *rand.Rand
	now   func() time.Time
	newID func() string
}

// NewEngine returns an engine wired with real randomness, the wall clock
// and UUID item identifiers.
func NewEngine() *Engine {
	return NewEngineWith(
		rand.New(rand.NewSource(time.Now().UnixNano())),
		time.Now,
		uuid.NewString,
	)
}

// NewEngineWith constructs an engine from explicit sources. Nil arguments
// fall back to the production defaults.
func NewEngineWith(rnd *rand.Rand, now func() time.Time, newID func() string) *Engine {
	e := &Engine{rnd: rnd, now: now, newID: newID}
	if e.rnd == nil {
		e.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	return e
}

// NormalizePreferences substitutes defaults for missing or out-of-range
// preference fields. Generation never fails on bad input.
func NormalizePreferences(prefs models.UserPreferences) models.UserPreferences {
	if _, err := ParseClock(prefs.WakeUpTime); err != nil {
		prefs.WakeUpTime = DefaultWakeUpTime
	}
	if _, err := ParseClock(prefs.SleepTime); err != nil {
		prefs.SleepTime = DefaultSleepTime
	}
	if prefs.MealsPerDay <= 0 {
		prefs.MealsPerDay = DefaultMealsPerDay
	}
	if prefs.WorkoutsPerWeek < 0 || prefs.WorkoutsPerWeek > 7 {
		prefs.WorkoutsPerWeek = DefaultWorkoutsPerWeek
	}
	if prefs.CalorieTarget <= 0 {
		prefs.CalorieTarget = DefaultCalorieTarget
	}
	return prefs
}

// pickMealOptions returns the pool members inside the calorie band, falling
// back to the whole pool when the band excludes everything.
func pickMealOptions(lo, hi int) []mealOption {
	var filtered []mealOption
	for _, m := range mealOptions {
		if m.Calories >= lo && m.Calories <= hi {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == 0 {
		return mealOptions
	}
	return filtered
}

// sample draws up to count distinct indexes from n.
func (e *Engine) sample(n, count int) []int {
	perm := e.rnd.Perm(n)
	if count > n {
		count = n
	}
	return perm[:count]
}

func mealDuration(kind mealKind) string {
	switch kind {
	case kindSnack:
		return "10 min"
	case kindBreakfast:
		return "20 min"
	default:
		return "30 min"
	}
}

// generateMeal fills one meal slot from the pool members inside the calorie
// band, attaching up to three other band members as alternatives.
func (e *Engine) generateMeal(clock string, kind mealKind, lo, hi int) models.WeeklyScheduleItem {
	pool := pickMealOptions(lo, hi)
	chosen := pool[e.rnd.Intn(len(pool))]

	var others []mealOption
	for _, m := range pool {
		if m.Title != chosen.Title {
			others = append(others, m)
		}
	}

	var alternatives []models.WeeklyScheduleItem
	for _, idx := range e.sample(len(others), 3) {
		alt := others[idx]
		alternatives = append(alternatives, models.WeeklyScheduleItem{
			ID:       e.newID(),
			Time:     clock,
			Title:    alt.Title,
			Subtitle: fmt.Sprintf("%s (%d cal)", alt.Description, alt.Calories),
			Duration: mealDuration(kind),
			Type:     models.ItemMeal,
			Calories: alt.Calories,
		})
	}

	return models.WeeklyScheduleItem{
		ID:           e.newID(),
		Time:         clock,
		Title:        chosen.Title,
		Subtitle:     fmt.Sprintf("%s (%d cal)", chosen.Description, chosen.Calories),
		Duration:     mealDuration(kind),
		Type:         models.ItemMeal,
		Calories:     chosen.Calories,
		Alternatives: alternatives,
	}
}

// generateWorkout fills one workout slot. Intense slots draw from the full
// workout pool, light slots from the light-activity pool.
func (e *Engine) generateWorkout(clock string, intense bool) models.WeeklyScheduleItem {
	pool := lightActivityOptions
	if intense {
		pool = workoutOptions
	}
	chosen := pool[e.rnd.Intn(len(pool))]

	var others []workoutOption
	for _, w := range pool {
		if w.Type != chosen.Type {
			others = append(others, w)
		}
	}

	var alternatives []models.WeeklyScheduleItem
	for _, idx := range e.sample(len(others), 3) {
		alt := others[idx]
		alternatives = append(alternatives, models.WeeklyScheduleItem{
			ID:          e.newID(),
			Time:        clock,
			Title:       alt.Type,
			Duration:    alt.Duration,
			Type:        models.ItemWorkout,
			WorkoutType: alt.Type,
		})
	}

	return models.WeeklyScheduleItem{
		ID:           e.newID(),
		Time:         clock,
		Title:        chosen.Type,
		Duration:     chosen.Duration,
		Type:         models.ItemWorkout,
		WorkoutType:  chosen.Type,
		Alternatives: alternatives,
	}
}

// generateSleep fills the nightly sleep block with the remaining hour
// targets offered as alternatives.
func (e *Engine) generateSleep(clock string, targetHours float64) models.WeeklyScheduleItem {
	var alternatives []models.WeeklyScheduleItem
	for _, hours := range sleepTargetCandidates {
		if hours == targetHours || len(alternatives) == 3 {
			continue
		}
		alternatives = append(alternatives, models.WeeklyScheduleItem{
			ID:          e.newID(),
			Time:        clock,
			Title:       "Sleep",
			Subtitle:    fmt.Sprintf("Target: %v hours", hours),
			Duration:    fmt.Sprintf("%v hrs", hours),
			Type:        models.ItemSleep,
			TargetHours: hours,
		})
	}

	return models.WeeklyScheduleItem{
		ID:           e.newID(),
		Time:         clock,
		Title:        "Sleep",
		Subtitle:     fmt.Sprintf("Target: %v hours", targetHours),
		Duration:     fmt.Sprintf("%v hrs", targetHours),
		Type:         models.ItemSleep,
		TargetHours:  targetHours,
		Alternatives: alternatives,
	}
}

// sortItems orders a day's items ascending by time-of-day. The sort is
// stable, so equal times keep their insertion order.
func sortItems(items []models.WeeklyScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return clockOrEndOfDay(items[i].Time) < clockOrEndOfDay(items[j].Time)
	})
}

// GenerateDaySchedule produces one day of slots: a light morning activity,
// three main meals, an optional snack, the intense-or-light workout, and a
// sleep block, sorted by time-of-day.
func (e *Engine) GenerateDaySchedule(date time.Time, prefs models.UserPreferences, isWorkoutDay bool) models.DaySchedule {
	items := []models.WeeklyScheduleItem{
		e.generateWorkout("7:00 AM", false),
		e.generateMeal("7:30 AM", kindBreakfast, breakfastBand[0], breakfastBand[1]),
	}

	if isWorkoutDay {
		items = append(items, e.generateWorkout("9:00 AM", true))
	}

	items = append(items, e.generateMeal("12:30 PM", kindLunch, lunchBand[0], lunchBand[1]))

	if prefs.MealsPerDay >= 4 {
		items = append(items, e.generateMeal("3:00 PM", kindSnack, snackBand[0], snackBand[1]))
	}

	// Rest days still get evening movement.
	if !isWorkoutDay {
		items = append(items, e.generateWorkout("6:00 PM", false))
	}

	items = append(items, e.generateMeal("7:00 PM", kindDinner, dinnerBand[0], dinnerBand[1]))
	items = append(items, e.generateSleep(prefs.SleepTime, defaultSleepTarget))

	sortItems(items)

	return models.DaySchedule{
		DayOfWeek: int(date.Weekday()),
		Date:      date,
		Items:     items,
	}
}

// GenerateWeekPlan builds seven days anchored to the next Sunday strictly
// after today. Intense workouts land on Monday/Wednesday/Friday, truncated
// to the requested weekly count.
func (e *Engine) GenerateWeekPlan(prefs models.UserPreferences) *models.WeekPlan {
	prefs = NormalizePreferences(prefs)

	today := e.now()
	weekStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	weekStart = weekStart.AddDate(0, 0, 7-int(today.Weekday()))

	workoutCount := prefs.WorkoutsPerWeek
	if workoutCount > len(workoutDayPool) {
		workoutCount = len(workoutDayPool)
	}
	workoutDays := workoutDayPool[:workoutCount]

	days := make([]models.DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		date := weekStart.AddDate(0, 0, i)

		isWorkoutDay := false
		for _, d := range workoutDays {
			if d == i {
				isWorkoutDay = true
			}
		}
		days = append(days, e.GenerateDaySchedule(date, prefs, isWorkoutDay))
	}

	return &models.WeekPlan{
		WeekStart: weekStart,
		Days:      days,
	}
}

// GenerateAlternatives returns the item's pre-generated alternatives when
// present, otherwise synthesizes three fresh candidates for its slot.
func (e *Engine) GenerateAlternatives(item models.WeeklyScheduleItem) []models.WeeklyScheduleItem {
	if len(item.Alternatives) > 0 {
		return item.Alternatives
	}

	var alternatives []models.WeeklyScheduleItem

	switch item.Type {
	case models.ItemMeal:
		lo, hi := 300, 600
		if item.Calories > 0 {
			lo, hi = item.Calories-100, item.Calories+100
		}
		for i := 0; i < 3; i++ {
			alt := e.generateMeal(item.Time, kindLunch, lo, hi)
			alt.Alternatives = nil
			alternatives = append(alternatives, alt)
		}
	case models.ItemWorkout:
		for i := 0; i < 3; i++ {
			alt := e.generateWorkout(item.Time, true)
			alt.Alternatives = nil
			alternatives = append(alternatives, alt)
		}
	case models.ItemSleep:
		current := item.TargetHours
		if current == 0 {
			current = defaultSleepTarget
		}
		for _, hours := range []float64{7, 7.5, 8.5, 9} {
			if hours == current || len(alternatives) == 3 {
				continue
			}
			alt := e.generateSleep(item.Time, hours)
			alt.Alternatives = nil
			alternatives = append(alternatives, alt)
		}
	}

	return alternatives
}
