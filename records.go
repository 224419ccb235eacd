package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// @Summary Get filtered records
// @Description The record rows matching the request's filter selection. Dimension filters repeat per value (?employee=A&employee=B); the literal value "All" imposes no restriction.
// @Tags records
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param employee query []string false "Employee filter, repeat per value" collectionFormat(multi)
// @Param project query []string false "Project filter, repeat per value" collectionFormat(multi)
// @Param client query []string false "Client filter, repeat per value" collectionFormat(multi)
// @Param category query []string false "Category filter, repeat per value" collectionFormat(multi)
// @Param min_hours query number false "Minimum hours per record"
// @Param max_hours query number false "Maximum hours per record"
// @Param min_rate query number false "Minimum hourly rate"
// @Param max_rate query number false "Maximum hourly rate"
// @Param search query string false "Case-insensitive search over project, description and hour type"
// @Param exclude_zero query boolean false "Drop records with zero hours"
// @Param drill query string false "Drill-down dimension: category or month"
// @Param drill_value query string false "Drill-down value"
// @Success 200 {object} map[string]interface{} "Matching record count and rows"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/records [get]
func getRecords(c *gin.Context) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return
	}

	state, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := applyFilters(ds.Records, state)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(records),
		"records": records,
	})
}

// distinctValues collects the sorted distinct values of one dimension,
// prefixed with the "All" sentinel the multiselects expect
func distinctValues(records []TimesheetRecord, pick func(TimesheetRecord) string) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		v := pick(r)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return append([]string{filterAll}, values...)
}

// @Summary List filter dimension values
// @Description Distinct values per filterable dimension over the full dataset, each list starting with "All"
// @Tags records
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Success 200 {object} DimensionValues "Distinct values per dimension"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Router /api/dimensions [get]
func getDimensions(c *gin.Context) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, DimensionValues{
		Employees:  distinctValues(ds.Records, func(r TimesheetRecord) string { return r.Employee }),
		Projects:   distinctValues(ds.Records, func(r TimesheetRecord) string { return r.Project }),
		Clients:    distinctValues(ds.Records, func(r TimesheetRecord) string { return r.Client }),
		Categories: distinctValues(ds.Records, func(r TimesheetRecord) string { return r.Category }),
	})
}
