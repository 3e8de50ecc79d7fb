// File: sophros/services/schedule/mutations.go
package schedule

import "github.com/emersonmaddock/sophros/models"

// Interactive mutations on one day's item list. Every mutation leaves the
// list sorted ascending by time-of-day and never touches other days.

// findItem returns the index of the item with the given ID, or -1.
func findItem(day *models.DaySchedule, itemID string) int {
	for i := range day.Items {
		if day.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

// SwapItem replaces the item matching itemID with the chosen alternative.
// The slot owns its identity: the original item's ID is retained and the
// alternative's own ID is discarded.
func (e *Engine) SwapItem(day *models.DaySchedule, itemID string, alternative models.WeeklyScheduleItem) error {
	if _, err := ParseClock(alternative.Time); err != nil {
		return err
	}

	i := findItem(day, itemID)
	if i < 0 {
		return ErrItemNotFound
	}

	alternative.ID = day.Items[i].ID
	day.Items[i] = alternative
	sortItems(day.Items)
	return nil
}

// EditItem replaces the item matching updated.ID with a fully re-specified
// item of the same type.
func (e *Engine) EditItem(day *models.DaySchedule, updated models.WeeklyScheduleItem) error {
	if _, err := ParseClock(updated.Time); err != nil {
		return err
	}

	i := findItem(day, updated.ID)
	if i < 0 {
		return ErrItemNotFound
	}
	if day.Items[i].Type != updated.Type {
		return ErrTypeMismatch
	}

	day.Items[i] = updated
	sortItems(day.Items)
	return nil
}

// AddItem inserts a new item with a freshly generated ID and re-sorts the
// day. The returned item carries the assigned ID.
func (e *Engine) AddItem(day *models.DaySchedule, item models.WeeklyScheduleItem) (models.WeeklyScheduleItem, error) {
	if _, err := ParseClock(item.Time); err != nil {
		return models.WeeklyScheduleItem{}, err
	}

	item.ID = e.newID()
	day.Items = append(day.Items, item)
	sortItems(day.Items)
	return item, nil
}

// DeleteItem removes the item matching itemID. The deleted item's
// alternatives go with it; nothing else cascades.
func (e *Engine) DeleteItem(day *models.DaySchedule, itemID string) error {
	i := findItem(day, itemID)
	if i < 0 {
		return ErrItemNotFound
	}

	day.Items = append(day.Items[:i], day.Items[i+1:]...)
	return nil
}
