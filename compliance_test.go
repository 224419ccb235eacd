package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplianceReport(t *testing.T) {
	t.Run("standard policy flags shortfalls against the previous week", func(t *testing.T) {
		report, err := complianceReport(defaultDataset.Records, PolicyStandard, mustParseDate("2024-03-18"))

		require.NoError(t, err)
		assert.Equal(t, PolicyStandard, report.Policy)
		assert.Equal(t, mustParseDate("2024-03-11"), report.WindowStart)
		assert.Equal(t, mustParseDate("2024-03-17"), report.WindowEnd)
		assert.Equal(t, 5, report.WorkingDays)
		assert.InDelta(t, 40.0, report.ExpectedHours, 0.001)
		assert.Equal(t, 4, report.EmployeeCount)
		assert.False(t, report.AllComplete)

		require.Len(t, report.Incomplete, 2)
		assert.Equal(t, "Dave Wilson", report.Incomplete[0].Employee)
		assert.InDelta(t, 0.0, report.Incomplete[0].HoursLogged, 0.001)
		assert.InDelta(t, 40.0, report.Incomplete[0].MissingHours, 0.001)
		assert.Equal(t, "Bob Smith", report.Incomplete[1].Employee)
		assert.InDelta(t, 12.0, report.Incomplete[1].HoursLogged, 0.001)
		assert.InDelta(t, 28.0, report.Incomplete[1].MissingHours, 0.001)

		assert.Equal(t, []string{"Carol Davis"}, report.OnLeave)
	})

	t.Run("flat35 policy expects 35 hours over the trailing week", func(t *testing.T) {
		report, err := complianceReport(defaultDataset.Records, PolicyFlat35, mustParseDate("2024-03-15"))

		require.NoError(t, err)
		assert.Equal(t, mustParseDate("2024-03-09"), report.WindowStart)
		assert.Equal(t, mustParseDate("2024-03-15"), report.WindowEnd)
		assert.InDelta(t, 35.0, report.ExpectedHours, 0.001)

		require.Len(t, report.Incomplete, 2)
		assert.Equal(t, "Dave Wilson", report.Incomplete[0].Employee)
		assert.InDelta(t, 35.0, report.Incomplete[0].MissingHours, 0.001)
		assert.Equal(t, "Bob Smith", report.Incomplete[1].Employee)
		assert.InDelta(t, 23.0, report.Incomplete[1].MissingHours, 0.001)
	})

	t.Run("employees meeting the expectation are not flagged", func(t *testing.T) {
		report, err := complianceReport(defaultDataset.Records, PolicyStandard, mustParseDate("2024-03-18"))

		require.NoError(t, err)
		for _, e := range report.Incomplete {
			assert.NotEqual(t, "Alice Johnson", e.Employee)
		}
		assert.NotContains(t, report.OnLeave, "Alice Johnson")
	})

	t.Run("any leave in the window exempts regardless of hours", func(t *testing.T) {
		records := []TimesheetRecord{
			makeTestRecord("Eve Janssen", "2024-03-11", "Alpha", "Acme Corp", "Leave", 8, 0, 0),
			makeTestRecord("Frank de Boer", "2024-03-12", "Alpha", "Acme Corp", "Development", 10, 80, 800),
		}

		report, err := complianceReport(records, PolicyStandard, mustParseDate("2024-03-18"))

		require.NoError(t, err)
		assert.Equal(t, []string{"Eve Janssen"}, report.OnLeave)
		require.Len(t, report.Incomplete, 1)
		assert.Equal(t, "Frank de Boer", report.Incomplete[0].Employee)
		assert.InDelta(t, 30.0, report.Incomplete[0].MissingHours, 0.001)
	})

	t.Run("all complete when everyone meets the expectation", func(t *testing.T) {
		var records []TimesheetRecord
		for _, day := range []string{"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14", "2024-03-15"} {
			records = append(records, makeTestRecord("Eve Janssen", day, "Alpha", "Acme Corp", "Development", 8, 80, 640))
		}

		report, err := complianceReport(records, PolicyStandard, mustParseDate("2024-03-18"))

		require.NoError(t, err)
		assert.True(t, report.AllComplete)
		assert.Empty(t, report.Incomplete)
		assert.Empty(t, report.OnLeave)
		assert.Equal(t, 1, report.EmployeeCount)
	})

	t.Run("window without activity reports nothing", func(t *testing.T) {
		report, err := complianceReport(defaultDataset.Records, PolicyStandard, mustParseDate("2099-01-04"))

		require.NoError(t, err)
		assert.Equal(t, 0, report.EmployeeCount)
		assert.True(t, report.AllComplete)
		assert.Empty(t, report.Incomplete)
	})

	t.Run("unknown policy returns error", func(t *testing.T) {
		_, err := complianceReport(defaultDataset.Records, "bogus", mustParseDate("2024-03-18"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown compliance policy")
	})
}

func TestGetCompliance(t *testing.T) {
	t.Run("uses the configured policy by default", func(t *testing.T) {
		resp := makeRequest("GET", "/api/compliance?reference=2024-03-18", nil)

		require.Equal(t, http.StatusOK, resp.Code)

		var report ComplianceReport
		require.NoError(t, parseJSONResponse(resp, &report))

		assert.Equal(t, PolicyStandard, report.Policy)
		assert.InDelta(t, 40.0, report.ExpectedHours, 0.001)
		require.Len(t, report.Incomplete, 2)
		assert.Equal(t, "Dave Wilson", report.Incomplete[0].Employee)
		assert.Equal(t, []string{"Carol Davis"}, report.OnLeave)
	})

	t.Run("policy parameter overrides the default", func(t *testing.T) {
		resp := makeRequest("GET", "/api/compliance?policy=flat35&reference=2024-03-15", nil)

		require.Equal(t, http.StatusOK, resp.Code)

		var report ComplianceReport
		require.NoError(t, parseJSONResponse(resp, &report))

		assert.Equal(t, PolicyFlat35, report.Policy)
		assert.InDelta(t, 35.0, report.ExpectedHours, 0.001)
	})

	t.Run("dimension filters narrow the report", func(t *testing.T) {
		resp := makeRequest("GET", "/api/compliance?reference=2024-03-18&employee=Bob%20Smith", nil)

		require.Equal(t, http.StatusOK, resp.Code)

		var report ComplianceReport
		require.NoError(t, parseJSONResponse(resp, &report))

		assert.Equal(t, 1, report.EmployeeCount)
		require.Len(t, report.Incomplete, 1)
		assert.Equal(t, "Bob Smith", report.Incomplete[0].Employee)
	})

	t.Run("default reference anchors on the dataset", func(t *testing.T) {
		// The fixture's latest date is Friday 2024-03-15, so the standard
		// window is 03-04..03-10, a week with no activity at all
		resp := makeRequest("GET", "/api/compliance", nil)

		require.Equal(t, http.StatusOK, resp.Code)

		var report ComplianceReport
		require.NoError(t, parseJSONResponse(resp, &report))

		assert.Equal(t, mustParseDate("2024-03-04"), report.WindowStart)
		assert.Equal(t, 0, report.EmployeeCount)
		assert.True(t, report.AllComplete)
	})
}
