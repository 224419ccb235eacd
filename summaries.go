package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// filteredRecords resolves the request's dataset and filter selection.
// On failure the error response is already written.
func filteredRecords(c *gin.Context) ([]TimesheetRecord, bool) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return nil, false
	}

	state, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return applyFilters(ds.Records, state), true
}

// limitParam parses the optional ranking cutoff; 0 means no cutoff
func limitParam(c *gin.Context) (int, error) {
	v := c.Query("limit")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", v)
	}
	return n, nil
}

// @Summary Get overall statistics
// @Description Headline totals for the filtered subset. An empty subset reports zeros, never an error.
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Success 200 {object} OverallStats "Totals for the filtered subset"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary [get]
func getSummary(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, overallStats(records))
}

// @Summary Get employee summaries
// @Description Per-employee totals over the filtered subset, ranked by hours descending
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param limit query int false "Keep only the top N entries"
// @Success 200 {array} EmployeeSummary "Ranked employee summaries"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/employees [get]
func getEmployeeSummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	limit, err := limitParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topN(employeeSummaries(records), limit))
}

// @Summary Get project summaries
// @Description Per-project totals over the filtered subset, ranked by hours descending
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param limit query int false "Keep only the top N entries"
// @Success 200 {array} ProjectSummary "Ranked project summaries"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/projects [get]
func getProjectSummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	limit, err := limitParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topN(projectSummaries(records), limit))
}

// @Summary Get client summaries
// @Description Per-client totals over the filtered subset, ranked by revenue descending
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param limit query int false "Keep only the top N entries"
// @Success 200 {array} ClientSummary "Ranked client summaries"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/clients [get]
func getClientSummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	limit, err := limitParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topN(clientSummaries(records), limit))
}

// @Summary Get category summaries
// @Description Per-category totals with each category's share of the subset's hours, ranked by hours descending
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param limit query int false "Keep only the top N entries"
// @Success 200 {array} CategorySummary "Ranked category summaries"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/categories [get]
func getCategorySummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	limit, err := limitParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, topN(categorySummaries(records), limit))
}

// @Summary Get monthly summaries
// @Description Hours and revenue per calendar month in January..December order
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Success 200 {array} MonthlySummary "Monthly totals"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/months [get]
func getMonthlySummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, monthlySummaries(records))
}

// @Summary Get the daily hours trend
// @Description Hours per day over the filtered subset in ascending date order
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Success 200 {array} DailySummary "Daily totals"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/summary/days [get]
func getDailySummaries(c *gin.Context) {
	records, ok := filteredRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dailySummaries(records))
}

// @Summary Quick insight for a named period
// @Description Per-employee activity inside last_week, last_month, last_quarter or last_year, resolved against the reference date
// @Tags summaries
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param period path string true "One of last_week, last_month, last_quarter, last_year"
// @Param reference query string false "Reference date (YYYY-MM-DD); defaults per server configuration"
// @Success 200 {object} map[string]interface{} "Period window, totals and per-employee activity"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/periods/{period} [get]
func getPeriodActivity(c *gin.Context) {
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

	period := c.Param("period")
	start, end, err := periodRange(period, reference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The period owns the date window; other filters still apply
	state.StartDate, state.EndDate = start, end
	subset := applyFilters(ds.Records, state)

	c.JSON(http.StatusOK, gin.H{
		"period":    period,
		"start":     start.Format(apiDateLayout),
		"end":       end.Format(apiDateLayout),
		"stats":     overallStats(subset),
		"employees": periodActivities(subset),
	})
}
