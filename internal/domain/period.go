package domain

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for statements and loads.
const DateLayout = "2006-01-02"

type Period string

const (
	PeriodWeekly  Period = "Weekly"
	PeriodMonthly Period = "Monthly"
	PeriodYearly  Period = "Yearly"
)

var ErrInvalidPeriod = errors.New("period must be one of Weekly, Monthly, Yearly")

var periodDays = map[Period]int{
	PeriodWeekly:  7,
	PeriodMonthly: 30,
	PeriodYearly:  365,
}

// ParsePeriod accepts a period name in any letter case. An empty value means Weekly.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PeriodWeekly, nil
	}
	for p := range periodDays {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", ErrInvalidPeriod
}

// Days returns the window length, or 0 for an unknown period.
func (p Period) Days() int {
	return periodDays[p]
}

// ParseDate reads a stored date as a UTC calendar day. Full RFC 3339 timestamps are accepted too.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// IsISODate reports whether s is a valid YYYY-MM-DD date.
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
