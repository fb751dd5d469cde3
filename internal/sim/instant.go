package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// dayCodes is the fixed weekly day order. Index positions feed Minutes().
var dayCodes = [7]string{"M", "T", "W", "H", "F", "S", "U"}

var dayNames = map[string]string{
	"M": "Monday",
	"T": "Tuesday",
	"W": "Wednesday",
	"H": "Thursday",
	"F": "Friday",
	"S": "Saturday",
	"U": "Sunday",
}

const minutesPerDay = 24 * 60

// MinutesPerWeek is the length of the repeating schedule cycle.
const MinutesPerWeek = 7 * minutesPerDay

// Instant is a point in the repeating 7-day week: day code, hour and minute.
// There is no calendar attached; week 12 and week 13 share the same instants.
type Instant struct {
	Day    string `json:"day"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
}

// NewInstant validates its parts and returns the instant. Out-of-range hours
// or minutes and unknown day codes are rejected rather than normalized.
func NewInstant(day string, hour, minute int) (Instant, error) {
	if _, ok := dayNames[day]; !ok {
		return Instant{}, fmt.Errorf("unknown day code %q", day)
	}
	if hour < 0 || hour > 23 {
		return Instant{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return Instant{}, fmt.Errorf("minute %d out of range", minute)
	}
	return Instant{Day: day, Hour: hour, Minute: minute}, nil
}

// ParseInstant parses the wire form "D-H-M", e.g. "M-10-30".
func ParseInstant(s string) (Instant, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Instant{}, fmt.Errorf("malformed instant %q", s)
	}
	hour, err := strconv.Atoi(parts[1])
	if err != nil {
		return Instant{}, fmt.Errorf("malformed instant %q", s)
	}
	minute, err := strconv.Atoi(parts[2])
	if err != nil {
		return Instant{}, fmt.Errorf("malformed instant %q", s)
	}
	return NewInstant(parts[0], hour, minute)
}

func (i Instant) String() string {
	return fmt.Sprintf("%s-%d-%d", i.Day, i.Hour, i.Minute)
}

// DayName returns the full weekday name for display.
func (i Instant) DayName() string {
	return dayNames[i.Day]
}

func dayIndex(day string) int {
	for idx, code := range dayCodes {
		if code == day {
			return idx
		}
	}
	return 0
}

// Minutes converts to minutes since the start of the week. It is the total
// order used everywhere flights are sorted or compared.
func (i Instant) Minutes() int {
	return dayIndex(i.Day)*minutesPerDay + i.Hour*60 + i.Minute
}

// InstantFromMinutes is the inverse of Minutes, wrapping modulo one week.
func InstantFromMinutes(m int) Instant {
	m = ((m % MinutesPerWeek) + MinutesPerWeek) % MinutesPerWeek
	day := m / minutesPerDay
	rest := m % minutesPerDay
	return Instant{Day: dayCodes[day], Hour: rest / 60, Minute: rest % 60}
}

// AddMinutes returns the instant n minutes later. A duration that runs past
// Sunday wraps back to Monday.
func (i Instant) AddMinutes(n int) Instant {
	return InstantFromMinutes(i.Minutes() + n)
}

// Before reports whether i is strictly earlier in the week than other.
func (i Instant) Before(other Instant) bool {
	return i.Minutes() < other.Minutes()
}
