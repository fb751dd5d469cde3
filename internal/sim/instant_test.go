package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstantRoundTrip(t *testing.T) {
	in, err := NewInstant("W", 14, 5)
	require.NoError(t, err)

	parsed, err := ParseInstant(in.String())
	require.NoError(t, err)
	assert.Equal(t, in, parsed)
}

func TestNewInstantRejectsBadParts(t *testing.T) {
	cases := []struct {
		day    string
		hour   int
		minute int
	}{
		{"X", 10, 30},
		{"Monday", 10, 30},
		{"M", -1, 0},
		{"M", 24, 0},
		{"M", 10, -1},
		{"M", 10, 60},
	}
	for _, c := range cases {
		_, err := NewInstant(c.day, c.hour, c.minute)
		assert.Error(t, err, "day=%s hour=%d minute=%d", c.day, c.hour, c.minute)
	}
}

func TestParseInstantRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "M", "M-10", "M-10-30-5", "M-x-30", "M-10-x", "Q-10-30"} {
		_, err := ParseInstant(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestInstantMinutesOrder(t *testing.T) {
	monday, _ := NewInstant("M", 0, 0)
	thursday, _ := NewInstant("H", 12, 0)
	sunday, _ := NewInstant("U", 23, 59)

	assert.Equal(t, 0, monday.Minutes())
	assert.Equal(t, 3*24*60+12*60, thursday.Minutes())
	assert.Equal(t, MinutesPerWeek-1, sunday.Minutes())

	assert.True(t, monday.Before(thursday))
	assert.True(t, thursday.Before(sunday))
	assert.False(t, sunday.Before(monday))
}

func TestAddMinutesWrapsIntoNextWeek(t *testing.T) {
	late, _ := NewInstant("U", 23, 30)
	wrapped := late.AddMinutes(90)

	assert.Equal(t, Instant{Day: "M", Hour: 1, Minute: 0}, wrapped)
}

func TestInstantFromMinutesInverse(t *testing.T) {
	for _, m := range []int{0, 1, 59, 60, 1439, 1440, 5000, MinutesPerWeek - 1} {
		assert.Equal(t, m, InstantFromMinutes(m).Minutes())
	}
	// negative input wraps backwards from Sunday
	assert.Equal(t, MinutesPerWeek-30, InstantFromMinutes(-30).Minutes())
}

func TestDayName(t *testing.T) {
	i, _ := NewInstant("H", 0, 0)
	assert.Equal(t, "Thursday", i.DayName())
}
