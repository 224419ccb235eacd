package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// filterAll is the sentinel meaning "no restriction" for a dimension filter
const filterAll = "All"

// Drill-down dimensions
const (
	drillCategory = "category"
	drillMonth    = "month"
)

// parseFilterState reads one request's filter selection from query
// parameters. Dimension filters repeat the parameter per value
// (?employee=A&employee=B); dates are ISO; bounds are plain floats.
func parseFilterState(c *gin.Context) (FilterState, error) {
	state := FilterState{
		Employees:        c.QueryArray("employee"),
		Projects:         c.QueryArray("project"),
		Clients:          c.QueryArray("client"),
		Categories:       c.QueryArray("category"),
		Search:           c.Query("search"),
		ExcludeZeroHours: c.Query("exclude_zero") == "true" || c.Query("exclude_zero") == "1",
		DrillDimension:   c.Query("drill"),
		DrillValue:       c.Query("drill_value"),
	}

	if v := c.Query("start"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return FilterState{}, err
		}
		state.StartDate = t
	}
	if v := c.Query("end"); v != "" {
		t, err := parseDateParam(v)
		if err != nil {
			return FilterState{}, err
		}
		state.EndDate = t
	}
	if err := validateDateRange(state.StartDate, state.EndDate); err != nil {
		return FilterState{}, err
	}

	var err error
	if state.MinHours, err = floatParam(c, "min_hours"); err != nil {
		return FilterState{}, err
	}
	if state.MaxHours, err = floatParam(c, "max_hours"); err != nil {
		return FilterState{}, err
	}
	if state.MinRate, err = floatParam(c, "min_rate"); err != nil {
		return FilterState{}, err
	}
	if state.MaxRate, err = floatParam(c, "max_rate"); err != nil {
		return FilterState{}, err
	}

	switch state.DrillDimension {
	case "", drillCategory, drillMonth:
	default:
		return FilterState{}, fmt.Errorf("invalid drill dimension %q (want %s or %s)", state.DrillDimension, drillCategory, drillMonth)
	}
	if state.DrillDimension != "" && state.DrillValue == "" {
		return FilterState{}, fmt.Errorf("drill_value is required when drill is set")
	}

	return state, nil
}

// floatParam parses an optional float query parameter
func floatParam(c *gin.Context, name string) (*float64, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, v)
	}
	return &f, nil
}

// isAllSelection reports whether a dimension selection imposes no restriction
func isAllSelection(values []string) bool {
	return len(values) == 0 || slices.Contains(values, filterAll)
}

// applyFilters reduces the record set to the rows matching every filter.
// Filters compose by AND, so application order never changes the result.
// An empty subset is a valid outcome, not an error.
func applyFilters(records []TimesheetRecord, state FilterState) []TimesheetRecord {
	subset := make([]TimesheetRecord, 0, len(records))
	for _, r := range records {
		if matchesFilters(r, state) {
			subset = append(subset, r)
		}
	}
	return subset
}

func matchesFilters(r TimesheetRecord, f FilterState) bool {
	// Closed interval on the date component
	if !f.StartDate.IsZero() && r.Date.Before(f.StartDate) {
		return false
	}
	if !f.EndDate.IsZero() && r.Date.After(f.EndDate) {
		return false
	}

	if !isAllSelection(f.Employees) && !slices.Contains(f.Employees, r.Employee) {
		return false
	}
	if !isAllSelection(f.Projects) && !slices.Contains(f.Projects, r.Project) {
		return false
	}
	if !isAllSelection(f.Clients) && !slices.Contains(f.Clients, r.Client) {
		return false
	}
	if !isAllSelection(f.Categories) && !slices.Contains(f.Categories, r.Category) {
		return false
	}

	if f.MinHours != nil && r.Hours < *f.MinHours {
		return false
	}
	if f.MaxHours != nil && r.Hours > *f.MaxHours {
		return false
	}
	if f.MinRate != nil && r.Rate < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && r.Rate > *f.MaxRate {
		return false
	}

	if f.ExcludeZeroHours && r.Hours == 0 {
		return false
	}
	if f.Search != "" && !matchesSearch(r, f.Search) {
		return false
	}

	switch f.DrillDimension {
	case drillCategory:
		if r.Category != f.DrillValue {
			return false
		}
	case drillMonth:
		if r.MonthName != f.DrillValue {
			return false
		}
	}

	return true
}

// matchesSearch looks for the term in project, description and hour type
func matchesSearch(r TimesheetRecord, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Project), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.HourType), term)
}
