package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// Compliance policies. The standard policy expects a full 8-hour day for
// every weekday of the previous Monday–Sunday week. The flat35 policy
// expects a flat 35 hours over the trailing 7 calendar days.
const (
	PolicyStandard = "standard"
	PolicyFlat35   = "flat35"
)

const (
	hoursPerWorkingDay = 8.0
	flatWeeklyHours    = 35.0
)

// complianceReport checks every employee active in the policy's window.
// An employee is flagged incomplete when logged hours fall short of the
// expectation and no leave entry exists in the window. Flagged employees
// are sorted by missing hours, worst first.
func complianceReport(records []TimesheetRecord, policy string, reference time.Time) (ComplianceReport, error) {
	var (
		start, end time.Time
		expected   float64
	)
	switch policy {
	case PolicyStandard:
		start, end = lastWeekRange(reference)
		expected = float64(workingDaysBetween(start, end)) * hoursPerWorkingDay
	case PolicyFlat35:
		start, end = trailingWeekRange(reference)
		expected = flatWeeklyHours
	default:
		return ComplianceReport{}, fmt.Errorf("unknown compliance policy %q (want %s or %s)", policy, PolicyStandard, PolicyFlat35)
	}

	type acc struct {
		logged   float64
		hadLeave bool
	}
	byEmployee := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range records {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		a, ok := byEmployee[r.Employee]
		if !ok {
			a = &acc{}
			byEmployee[r.Employee] = a
			order = append(order, r.Employee)
		}
		a.logged += r.Hours
		if r.IsLeave {
			a.hadLeave = true
		}
	}

	report := ComplianceReport{
		Policy:        policy,
		WindowStart:   start,
		WindowEnd:     end,
		WorkingDays:   workingDaysBetween(start, end),
		ExpectedHours: expected,
		EmployeeCount: len(order),
		Incomplete:    []ComplianceEntry{},
		OnLeave:       []string{},
	}
	for _, name := range order {
		a := byEmployee[name]
		if a.hadLeave {
			report.OnLeave = append(report.OnLeave, name)
			continue
		}
		if a.logged >= expected {
			continue
		}
		report.Incomplete = append(report.Incomplete, ComplianceEntry{
			Employee:     name,
			HoursLogged:  a.logged,
			MissingHours: expected - a.logged,
		})
	}
	slices.SortStableFunc(report.Incomplete, func(a, b ComplianceEntry) int {
		return descFloat(a.MissingHours, b.MissingHours)
	})
	slices.Sort(report.OnLeave)
	report.AllComplete = len(report.Incomplete) == 0
	return report, nil
}

// @Summary Check weekly timesheet compliance
// @Description Flags employees whose logged hours fall short of the selected policy's weekly expectation
// @Tags compliance
// @Produce json
// @Param policy query string false "Compliance policy: standard or flat35"
// @Param reference query string false "Reference date (YYYY-MM-DD); defaults per server configuration"
// @Param start query string false "Start date filter (YYYY-MM-DD)"
// @Param end query string false "End date filter (YYYY-MM-DD)"
// @Param employee query []string false "Employee filter, repeat per value" collectionFormat(multi)
// @Success 200 {object} ComplianceReport "Window, expectation and flagged employees"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/compliance [get]
func getCompliance(c *gin.Context) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return
	}

	state, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reference, err := resolveReferenceDate(c.Query("reference"), ds)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	policy := c.DefaultQuery("policy", cfg.CompliancePolicy)
	report, err := complianceReport(applyFilters(ds.Records, state), policy, reference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
