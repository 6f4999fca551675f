package wizard

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is the hour / minute / AM-PM triplet picked in the forms.
// Empty strings mean "not selected".
type TimeOfDay struct {
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Period string `json:"period"`
}

func (t TimeOfDay) IsEmpty() bool {
	return t.Hour == "" && t.Minute == "" && t.Period == ""
}

// IsComplete reports whether all three parts are set and in range.
func (t TimeOfDay) IsComplete() bool {
	h, err := strconv.Atoi(t.Hour)
	if err != nil || h < 1 || h > 12 {
		return false
	}
	m, err := strconv.Atoi(t.Minute)
	if err != nil || m < 0 || m > 59 {
		return false
	}
	p := strings.ToUpper(t.Period)
	return p == "AM" || p == "PM"
}

// String renders "HH:MM AM"; incomplete values render as "".
func (t TimeOfDay) String() string {
	if !t.IsComplete() {
		return ""
	}
	h, _ := strconv.Atoi(t.Hour)
	m, _ := strconv.Atoi(t.Minute)
	return fmt.Sprintf("%02d:%02d %s", h, m, strings.ToUpper(t.Period))
}

// ParseTimeOfDay accepts "7:30 PM" / "07:30 pm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	clock, period, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time %q must look like HH:MM AM", s)
	}
	hour, minute, ok := strings.Cut(clock, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time %q must look like HH:MM AM", s)
	}
	t := TimeOfDay{Hour: hour, Minute: minute, Period: strings.TrimSpace(period)}
	if !t.IsComplete() {
		return TimeOfDay{}, fmt.Errorf("time %q is out of range", s)
	}
	return t, nil
}

// CheckOptionalTime enforces the "fully specified or fully empty" rule.
func CheckOptionalTime(t TimeOfDay) bool {
	return t.IsEmpty() || t.IsComplete()
}
