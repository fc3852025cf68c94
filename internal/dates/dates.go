package dates

import (
	"fmt"
	"strings"
	"time"
)

// Shortcut arguments for the date flag
const (
	Today     = "t"
	Tomorrow  = "T"
	Yesterday = "y"
)

const (
	pageDayLayout = "20060102"
	isoDayLayout  = "2006-01-02"
)

// Resolve turns a date argument into a calendar day in now's location.
// Accepted forms are the shortcuts t, T and y, YYYYMMDD and YYYY-MM-DD.
func Resolve(arg string, now time.Time) (time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch arg = strings.TrimSpace(arg); arg {
	case Today, "":
		return today, nil
	case Tomorrow:
		return today.AddDate(0, 0, 1), nil
	case Yesterday:
		return today.AddDate(0, 0, -1), nil
	}

	for _, layout := range []string{pageDayLayout, isoDayLayout} {
		if len(arg) != len(layout) {
			continue
		}
		if day, err := time.ParseInLocation(layout, arg, now.Location()); err == nil {
			return day, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q: use t (today), T (tomorrow), y (yesterday), YYYYMMDD or YYYY-MM-DD", arg)
}

// PageDay formats a day the way the scoreboard page's day parameter expects
func PageDay(day time.Time) string {
	return day.Format(pageDayLayout)
}

// ISODay formats a day as YYYY-MM-DD for cache keys
func ISODay(day time.Time) string {
	return day.Format(isoDayLayout)
}
