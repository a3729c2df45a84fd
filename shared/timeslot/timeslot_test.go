package timeslot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nutricoach/shared/timeslot"
)

func TestLabels(t *testing.T) {
	labels := timeslot.Labels()

	assert.Len(t, labels, 48)
	assert.Equal(t, "12am", labels[0])
	assert.Equal(t, "1230am", labels[1])
	assert.Equal(t, "12pm", labels[24])
	assert.Equal(t, "1130pm", labels[47])
}

func TestNext(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected string
		ok       bool
	}{
		{
			name:     "on the hour",
			label:    "9am",
			expected: "930am",
			ok:       true,
		},
		{
			name:     "on the half hour",
			label:    "930am",
			expected: "10am",
			ok:       true,
		},
		{
			name:     "crossing noon",
			label:    "1130am",
			expected: "12pm",
			ok:       true,
		},
		{
			name:  "last slot of the day",
			label: "1130pm",
			ok:    false,
		},
		{
			name:  "unknown label",
			label: "25pm",
			ok:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			next, ok := timeslot.Next(test.label)

			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, next)
		})
	}
}

func TestCompare(t *testing.T) {
	// "10am" sorts before "9am" lexically, which is exactly the trap the
	// canonical ordering exists to avoid.
	assert.Positive(t, timeslot.Compare("10am", "9am"))
	assert.Negative(t, timeslot.Compare("9am", "10am"))
	assert.Zero(t, timeslot.Compare("630pm", "630pm"))
	assert.Negative(t, timeslot.Compare("1130pm", "bogus"))
}

func TestKeyRoundTrip(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	key := timeslot.Key(date, "930am")
	assert.Equal(t, "2025-06-16-930am", key)

	parsedDate, label, err := timeslot.SplitKey(key)
	assert.NoError(t, err)
	assert.Equal(t, "930am", label)
	assert.Equal(t, "2025-06-16", parsedDate.Format("2006-01-02"))
}

func TestSplitKeyRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected error
	}{
		{
			name:     "missing label",
			key:      "2025-06-16",
			expected: timeslot.ErrMalformedKey,
		},
		{
			name:     "not a date",
			key:      "yesterday-9am",
			expected: timeslot.ErrMalformedKey,
		},
		{
			name:     "unknown label",
			key:      "2025-06-16-25pm",
			expected: timeslot.ErrUnknownLabel,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := timeslot.SplitKey(test.key)

			assert.ErrorIs(t, err, test.expected)
		})
	}
}

func TestClock(t *testing.T) {
	hour, minute, err := timeslot.Clock("130pm")
	assert.NoError(t, err)
	assert.Equal(t, 13, hour)
	assert.Equal(t, 30, minute)

	_, _, err = timeslot.Clock("noonish")
	assert.ErrorIs(t, err, timeslot.ErrUnknownLabel)
}

func TestDisplayLabel(t *testing.T) {
	date := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Monday, June 16 at 9:30 AM", timeslot.DisplayLabel(date, "930am"))
	assert.Equal(t, "Monday, June 16", timeslot.DisplayLabel(date, "bogus"))
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "mon", timeslot.DayOfWeek(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "sun", timeslot.DayOfWeek(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)))
}
