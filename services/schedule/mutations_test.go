package schedule

import (
	"errors"
	"testing"

	"github.com/emersonmaddock/sophros/models"
)

func testDay(e *Engine) models.DaySchedule {
	return e.GenerateDaySchedule(referenceNow, defaultTestPrefs(), true)
}

func TestSwapItemRetainsSlotID(t *testing.T) {
	e := newTestEngine(10)
	day := testDay(e)

	original := itemAt(day, "12:30 PM", models.ItemMeal)
	if original == nil || len(original.Alternatives) == 0 {
		t.Fatal("lunch slot with alternatives required")
	}
	slotID := original.ID
	chosen := original.Alternatives[0]

	if err := e.SwapItem(&day, slotID, chosen); err != nil {
		t.Fatalf("SwapItem failed: %v", err)
	}

	swapped := itemAt(day, "12:30 PM", models.ItemMeal)
	if swapped == nil {
		t.Fatal("lunch slot missing after swap")
	}
	if swapped.ID != slotID {
		t.Errorf("swap changed the slot ID to %q, want %q", swapped.ID, slotID)
	}
	if swapped.Title != chosen.Title || swapped.Calories != chosen.Calories {
		t.Errorf("swap did not take the alternative's content: got %q", swapped.Title)
	}
	assertSorted(t, day)
}

func TestSwapItemUnknownID(t *testing.T) {
	e := newTestEngine(11)
	day := testDay(e)

	err := e.SwapItem(&day, "missing", models.WeeklyScheduleItem{Time: "12:30 PM"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("SwapItem on unknown ID = %v, want ErrItemNotFound", err)
	}
}

func TestEditItemKeepsType(t *testing.T) {
	e := newTestEngine(12)
	day := testDay(e)

	target := itemAt(day, "7:00 PM", models.ItemMeal)
	if target == nil {
		t.Fatal("dinner slot required")
	}

	edited := models.WeeklyScheduleItem{
		ID:       target.ID,
		Time:     "7:15 PM",
		Title:    "Leftover Stir Fry",
		Duration: "30 min",
		Type:     models.ItemMeal,
		Calories: 600,
	}
	if err := e.EditItem(&day, edited); err != nil {
		t.Fatalf("EditItem failed: %v", err)
	}

	got := itemAt(day, "7:15 PM", models.ItemMeal)
	if got == nil || got.Title != "Leftover Stir Fry" {
		t.Fatal("edited item not found at its new time")
	}
	assertSorted(t, day)

	retyped := edited
	retyped.Type = models.ItemWorkout
	if err := e.EditItem(&day, retyped); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("EditItem across types = %v, want ErrTypeMismatch", err)
	}
}

func TestEditItemRejectsMalformedTime(t *testing.T) {
	e := newTestEngine(13)
	day := testDay(e)
	target := day.Items[0]

	target.Time = "sometime"
	var clockErr InvalidClockError
	if err := e.EditItem(&day, target); !errors.As(err, &clockErr) {
		t.Errorf("EditItem with malformed time = %v, want InvalidClockError", err)
	}
}

func TestAddItemSortsIntoPlace(t *testing.T) {
	e := newTestEngine(14)
	day := testDay(e)

	// Earliest generated slot is 7:00 AM; this must land first.
	added, err := e.AddItem(&day, models.WeeklyScheduleItem{
		Time:     "6:45 AM",
		Title:    "Hydration",
		Duration: "5 min",
		Type:     models.ItemMeal,
	})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if added.ID == "" {
		t.Error("AddItem did not assign an ID")
	}
	if day.Items[0].ID != added.ID {
		t.Errorf("added 6:45 AM item is at position of %q, want first", day.Items[0].Time)
	}
	assertSorted(t, day)
}

func TestDeleteItem(t *testing.T) {
	e := newTestEngine(15)
	day := testDay(e)
	before := len(day.Items)
	target := day.Items[2].ID

	if err := e.DeleteItem(&day, target); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	if len(day.Items) != before-1 {
		t.Errorf("day has %d items after delete, want %d", len(day.Items), before-1)
	}
	if findItem(&day, target) >= 0 {
		t.Error("deleted item still present")
	}

	if err := e.DeleteItem(&day, target); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("second delete = %v, want ErrItemNotFound", err)
	}
}
