package schedule

import "errors"

var (
	// ErrPlanNotFound means no stored week plan exists for the user.
	ErrPlanNotFound = errors.New("week plan not found")
	// ErrItemNotFound means the day has no item with the requested ID.
	ErrItemNotFound = errors.New("schedule item not found")
	// ErrDayOutOfRange means the day index was outside 0..6.
	ErrDayOutOfRange = errors.New("day index out of range")
	// ErrTypeMismatch means an edit tried to change an item's type.
	ErrTypeMismatch = errors.New("schedule item type cannot change")
)
