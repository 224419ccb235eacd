package main

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts: the CSV exports carry DD-MM-YYYY, the HTTP API speaks ISO
const (
	csvDateLayout = "02-01-2006"
	apiDateLayout = "2006-01-02"
)

// Date helpers
//
// Record dates are stored truncated to midnight UTC, so closed-interval
// checks can compare times directly.

// dateOnly strips the time-of-day component
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lastWeekRange returns the Monday-Sunday week immediately preceding the
// week containing ref
func lastWeekRange(ref time.Time) (time.Time, time.Time) {
	ref = dateOnly(ref)

	// Days since Monday of ref's week (Monday=0 ... Sunday=6)
	offset := (int(ref.Weekday()) + 6) % 7
	monday := ref.AddDate(0, 0, -(offset + 7))
	sunday := monday.AddDate(0, 0, 6)
	return monday, sunday
}

// lastMonthRange returns the first and last day of the previous calendar month
func lastMonthRange(ref time.Time) (time.Time, time.Time) {
	firstOfThisMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := firstOfThisMonth.AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

// lastQuarterRange returns the previous calendar quarter
func lastQuarterRange(ref time.Time) (time.Time, time.Time) {
	quarter := (int(ref.Month())-1)/3 + 1
	if quarter == 1 {
		start := time.Date(ref.Year()-1, time.October, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(ref.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
		return start, end
	}

	startMonth := time.Month((quarter-2)*3 + 1)
	start := time.Date(ref.Year(), startMonth, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, -1)
	return start, end
}

// lastYearRange returns the previous calendar year
func lastYearRange(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(ref.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// trailingWeekRange returns the 7 calendar days ending at ref, inclusive
func trailingWeekRange(ref time.Time) (time.Time, time.Time) {
	end := dateOnly(ref)
	start := end.AddDate(0, 0, -6)
	return start, end
}

// periodRange resolves a named quick-insight period against ref
func periodRange(period string, ref time.Time) (time.Time, time.Time, error) {
	switch period {
	case "last_week":
		start, end := lastWeekRange(ref)
		return start, end, nil
	case "last_month":
		start, end := lastMonthRange(ref)
		return start, end, nil
	case "last_quarter":
		start, end := lastQuarterRange(ref)
		return start, end, nil
	case "last_year":
		start, end := lastYearRange(ref)
		return start, end, nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("unknown period %q", period)
}

// workingDaysBetween counts weekdays (Mon-Fri) in the closed interval
func workingDaysBetween(start, end time.Time) int {
	count := 0
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// resolveReferenceDate picks the anchor for relative periods: an explicit
// reference query parameter wins, otherwise the configured mode decides
// between the dataset's latest date and the wall clock
func resolveReferenceDate(param string, ds *Dataset) (time.Time, error) {
	if param != "" {
		ref, err := parseDateParam(param)
		if err != nil {
			return time.Time{}, err
		}
		return ref, nil
	}

	if cfg.ReferenceDateMode == "dataset" && ds != nil && !ds.MaxDate.IsZero() {
		return ds.MaxDate, nil
	}
	return dateOnly(time.Now()), nil
}

// parseDateParam parses an ISO date from a query parameter
func parseDateParam(value string) (time.Time, error) {
	t, err := time.Parse(apiDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t, nil
}

// Validation functions

// validateQuestion validates that a chat question is not empty or just whitespace
func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question cannot be empty")
	}
	return nil
}

// validateDateRange ensures a date filter interval is well-formed
func validateDateRange(start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return fmt.Errorf("start date cannot be after end date")
	}
	return nil
}
