// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"time"

	"github.com/markusmobius/go-dateparser"
)

const secondsInAMinute = 60

// keyLayout keeps a fixed number of fractional digits so that keys sort
// lexically in chronological order.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)
	if total < 0 {
		total = 0
	}

	return total / secondsInAMinute, total % secondsInAMinute
}

// Clock formats a number of seconds as MM:SS. Minutes are not wrapped into
// hours since no workout lasts that long.
func Clock(seconds int) string {
	m, s := SecsToMinsAndSecs(float64(seconds))

	return fmt.Sprintf("%02d:%02d", m, s)
}

// FromStr parses an absolute or relative date such as "2 weeks ago" or
// "2025-01-31".
func FromStr(s string) (time.Time, error) {
	return fromStr(s, time.Now())
}

func fromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, err
	}

	return d.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
