// Package biztime centralizes time handling. All storage and transport
// use UTC; implicit local timezone is prohibited.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DaysAgoUTC returns the UTC instant the given number of days before now.
func DaysAgoUTC(days int) time.Time {
	return NowUTC().AddDate(0, 0, -days)
}
