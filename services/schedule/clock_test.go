package schedule

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"7:30 AM", 450},
		{"12:00 AM", 0},
		{"12:30 PM", 750},
		{"12:00 PM", 720},
		{"11:59 PM", 1439},
		{"1:05 PM", 785},
		{"10:30 pm", 1350},
		{"  6:00 PM ", 1080},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.value)
		if err != nil {
			t.Errorf("ParseClock(%q) returned error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"7:30",
		"noon",
		"25:00 AM",
		"0:15 AM",
		"7:60 PM",
		"7:30 XM",
		"7.30 AM",
		"7:30 AM extra",
	}
	for _, value := range malformed {
		if _, err := ParseClock(value); err == nil {
			t.Errorf("ParseClock(%q) accepted malformed input", value)
		}
	}
}
