package timeslot

import (
	"errors"
	"fmt"
	"nutricoach/shared/timezone"
	"strconv"
	"strings"
	"time"
)

// Slot times are string labels like "6am", "630am", "8pm". Labels do not sort
// lexically ("10am" < "9am"), so every ordering and adjacency decision goes
// through the canonical table below. The composer's sort and the allocator's
// next-slot lookup must agree on it.

const (
	SlotMinutes = 30

	dateKeyLen = len("2006-01-02")
)

var (
	ErrUnknownLabel = errors.New("unknown time-of-day label")
	ErrMalformedKey = errors.New("malformed slot key")
)

var (
	labels   []string
	ordinals map[string]int
)

func init() {
	labels = make([]string, 0, 48)
	ordinals = make(map[string]int, 48)

	for halfHour := range 48 {
		hour := halfHour / 2
		minute := (halfHour % 2) * SlotMinutes

		clockHour := hour % 12
		if clockHour == 0 {
			clockHour = 12
		}

		suffix := "am"
		if hour >= 12 {
			suffix = "pm"
		}

		label := strconv.Itoa(clockHour)
		if minute != 0 {
			label += strconv.Itoa(minute)
		}
		label += suffix

		ordinals[label] = len(labels)
		labels = append(labels, label)
	}
}

// Labels returns the 48 half-hour labels in canonical day order, from "12am"
// through "1130pm".
func Labels() []string {
	out := make([]string, len(labels))
	copy(out, labels)

	return out
}

func IsValid(label string) bool {
	_, ok := ordinals[label]

	return ok
}

// Ordinal returns the label's position in the canonical day order.
func Ordinal(label string) (int, bool) {
	ord, ok := ordinals[label]

	return ord, ok
}

// Next returns the label of the following half-hour slot on the same day.
// It reports false for the last slot of the day and for unknown labels.
func Next(label string) (string, bool) {
	ord, ok := ordinals[label]
	if !ok || ord == len(labels)-1 {
		return "", false
	}

	return labels[ord+1], true
}

// Compare orders two labels by canonical day position. Unknown labels sort last.
func Compare(a, b string) int {
	ordA, okA := ordinals[a]
	ordB, okB := ordinals[b]

	if !okA {
		ordA = len(labels)
	}

	if !okB {
		ordB = len(labels)
	}

	return ordA - ordB
}

// Key builds a date-bound slot key, "YYYY-MM-DD-<label>". Raw weekly templates
// use "<dayOfWeek>-<label>" instead; the two shapes must not be conflated.
func Key(date time.Time, label string) string {
	return date.Format("2006-01-02") + "-" + label
}

// SplitKey breaks a date-bound slot key into its calendar date and label.
func SplitKey(key string) (time.Time, string, error) {
	if len(key) < dateKeyLen+2 || key[dateKeyLen] != '-' {
		return time.Time{}, "", ErrMalformedKey
	}

	date, err := timezone.Parse("2006-01-02", key[:dateKeyLen])
	if err != nil {
		return time.Time{}, "", ErrMalformedKey
	}

	label := key[dateKeyLen+1:]
	if !IsValid(label) {
		return time.Time{}, "", ErrUnknownLabel
	}

	return date, label, nil
}

// Clock returns the wall-clock hour and minute a label denotes.
func Clock(label string) (hour, minute int, err error) {
	ord, ok := ordinals[label]
	if !ok {
		return 0, 0, ErrUnknownLabel
	}

	return ord / 2, (ord % 2) * SlotMinutes, nil
}

// DisplayLabel renders a slot as shown to clients, e.g.
// "Monday, June 16 at 9:00 AM".
func DisplayLabel(date time.Time, label string) string {
	hour, minute, err := Clock(label)
	if err != nil {
		return date.Format("Monday, January 2")
	}

	clock := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())

	return fmt.Sprintf("%s at %s", date.Format("Monday, January 2"), clock.Format("3:04 PM"))
}

// DayOfWeek returns the lowercase short weekday name used by slot templates
// ("mon".."sun").
func DayOfWeek(date time.Time) string {
	return strings.ToLower(date.Format("Mon"))
}
