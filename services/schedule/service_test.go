package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/emersonmaddock/sophros/models"
)

func newTestService(seed int64) *DefaultScheduleService {
	return &DefaultScheduleService{
		Engine: newTestEngine(seed),
		Store:  NewMemoryPlanStore(),
	}
}

func TestGenerateWeekThenGetWeek(t *testing.T) {
	svc := newTestService(20)
	ctx := context.Background()

	generated, err := svc.GenerateWeek(ctx, "user-1", defaultTestPrefs())
	if err != nil {
		t.Fatalf("GenerateWeek failed: %v", err)
	}

	fetched, err := svc.GetWeek(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if !fetched.WeekStart.Equal(generated.WeekStart) {
		t.Errorf("fetched WeekStart = %v, want %v", fetched.WeekStart, generated.WeekStart)
	}
	if len(fetched.Days) != 7 {
		t.Fatalf("fetched plan has %d days, want 7", len(fetched.Days))
	}
	for i, day := range fetched.Days {
		if len(day.Items) != len(generated.Days[i].Items) {
			t.Errorf("day %d item count changed across the store", i)
		}
	}
}

func TestGetWeekGeneratesWhenMissing(t *testing.T) {
	svc := newTestService(21)

	plan, err := svc.GetWeek(context.Background(), "fresh-user")
	if err != nil {
		t.Fatalf("GetWeek on empty store failed: %v", err)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("generated plan has %d days, want 7", len(plan.Days))
	}

	// Missing preferences fall back to defaults, so day 1 is a workout day
	// and every day carries a snack slot.
	if itemAt(plan.Days[1], "9:00 AM", models.ItemWorkout) == nil {
		t.Error("default plan is missing the Monday workout")
	}
	if itemAt(plan.Days[0], "3:00 PM", models.ItemMeal) == nil {
		t.Error("default plan is missing the afternoon snack")
	}
}

func TestSwapItemPersistsAcrossReads(t *testing.T) {
	svc := newTestService(22)
	ctx := context.Background()

	plan, err := svc.GenerateWeek(ctx, "user-2", defaultTestPrefs())
	if err != nil {
		t.Fatalf("GenerateWeek failed: %v", err)
	}

	target := itemAt(plan.Days[2], "12:30 PM", models.ItemMeal)
	if target == nil || len(target.Alternatives) == 0 {
		t.Fatal("lunch slot with alternatives required")
	}
	chosen := target.Alternatives[0]

	day, err := svc.SwapItem(ctx, "user-2", 2, target.ID, chosen)
	if err != nil {
		t.Fatalf("SwapItem failed: %v", err)
	}
	if got := itemAt(*day, "12:30 PM", models.ItemMeal); got == nil || got.Title != chosen.Title {
		t.Fatal("returned day does not reflect the swap")
	}

	stored, err := svc.GetWeek(ctx, "user-2")
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	got := itemAt(stored.Days[2], "12:30 PM", models.ItemMeal)
	if got == nil || got.Title != chosen.Title || got.ID != target.ID {
		t.Error("swap was not persisted to the store")
	}
	for i := range stored.Days {
		if i == 2 {
			continue
		}
		if len(stored.Days[i].Items) != len(plan.Days[i].Items) {
			t.Errorf("day %d changed by a swap on day 2", i)
		}
	}
}

func TestMutationsRejectBadDayIndex(t *testing.T) {
	svc := newTestService(23)
	ctx := context.Background()

	if _, err := svc.GenerateWeek(ctx, "user-3", defaultTestPrefs()); err != nil {
		t.Fatalf("GenerateWeek failed: %v", err)
	}

	for _, idx := range []int{-1, 7, 42} {
		if _, err := svc.DeleteItem(ctx, "user-3", idx, "any"); !errors.Is(err, ErrDayOutOfRange) {
			t.Errorf("DeleteItem(day=%d) = %v, want ErrDayOutOfRange", idx, err)
		}
	}
}

func TestMutationsRequireStoredPlan(t *testing.T) {
	svc := newTestService(24)

	_, err := svc.DeleteItem(context.Background(), "nobody", 0, "any")
	if !errors.Is(err, ErrPlanNotFound) {
		t.Errorf("DeleteItem without a plan = %v, want ErrPlanNotFound", err)
	}
}

func TestAlternativesWriteBack(t *testing.T) {
	svc := newTestService(25)
	ctx := context.Background()

	if _, err := svc.GenerateWeek(ctx, "user-4", defaultTestPrefs()); err != nil {
		t.Fatalf("GenerateWeek failed: %v", err)
	}

	// A user-added item starts with no alternatives; the first request
	// synthesizes a set and caches it on the stored plan.
	day, err := svc.AddItem(ctx, "user-4", 3, models.WeeklyScheduleItem{
		Time:     "4:30 PM",
		Title:    "Protein Shake",
		Duration: "10 min",
		Type:     models.ItemMeal,
		Calories: 220,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	added := itemAt(*day, "4:30 PM", models.ItemMeal)
	if added == nil {
		t.Fatal("added item missing from returned day")
	}
	if len(added.Alternatives) != 0 {
		t.Fatal("added item unexpectedly carries alternatives")
	}

	first, err := svc.Alternatives(ctx, "user-4", 3, added.ID)
	if err != nil {
		t.Fatalf("Alternatives failed: %v", err)
	}
	if len(first) == 0 || len(first) > 3 {
		t.Fatalf("synthesized %d alternatives, want 1 to 3", len(first))
	}

	stored, err := svc.GetWeek(ctx, "user-4")
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	cached := itemAt(stored.Days[3], "4:30 PM", models.ItemMeal)
	if cached == nil || len(cached.Alternatives) != len(first) {
		t.Fatal("synthesized alternatives were not written back to the store")
	}

	second, err := svc.Alternatives(ctx, "user-4", 3, added.ID)
	if err != nil {
		t.Fatalf("second Alternatives call failed: %v", err)
	}
	for i := range first {
		if second[i].Title != first[i].Title {
			t.Errorf("cached alternative %d changed between reads", i)
		}
	}
}

func TestAlternativesUnknownItem(t *testing.T) {
	svc := newTestService(26)
	ctx := context.Background()

	if _, err := svc.GenerateWeek(ctx, "user-5", defaultTestPrefs()); err != nil {
		t.Fatalf("GenerateWeek failed: %v", err)
	}
	if _, err := svc.Alternatives(ctx, "user-5", 0, "missing"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Alternatives for unknown item = %v, want ErrItemNotFound", err)
	}
}
