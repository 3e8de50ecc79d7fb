package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidClockError reports a wall-clock string that does not parse.
type InvalidClockError struct {
	Value string
}

func (e InvalidClockError) Error() string {
	return fmt.Sprintf("invalid clock time %q, expected H:MM AM/PM", e.Value)
}

// ParseClock converts a 12-hour "H:MM AM/PM" string into minutes since
// midnight. "12:xx AM" maps to the start of the day and "12:xx PM" to the
// noon boundary. Malformed strings are rejected rather than coerced.
func ParseClock(value string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(value))
	if len(parts) != 2 {
		return 0, InvalidClockError{Value: value}
	}

	period := strings.ToUpper(parts[1])
	if period != "AM" && period != "PM" {
		return 0, InvalidClockError{Value: value}
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, InvalidClockError{Value: value}
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, InvalidClockError{Value: value}
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, InvalidClockError{Value: value}
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return 0, InvalidClockError{Value: value}
	}

	total := (hours % 12) * 60 // 12 o'clock wraps to 0
	total += minutes
	if period == "PM" {
		total += 12 * 60
	}
	return total, nil
}

// clockOrEndOfDay parses a clock string for sorting, pushing anything
// unparseable past the end of the day so it sorts last deterministically.
func clockOrEndOfDay(value string) int {
	minutes, err := ParseClock(value)
	if err != nil {
		return 24 * 60
	}
	return minutes
}
