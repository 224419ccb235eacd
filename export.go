package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// exportBaseName matches the original dashboard's download naming
const exportBaseName = "filtered_timesheet_data"

// exportColumns is the column order of an exported file
var exportColumns = []string{
	colEmployee, colDate, colProject, colClient, colCategory,
	colHourType, colHours, colRate, colTotal, colDescription,
	colProjectLeader, colProjectNumber,
}

// exportRow renders one record back to export cell values
func exportRow(r TimesheetRecord) []string {
	return []string{
		r.Employee,
		r.Date.Format(csvDateLayout),
		r.Project,
		r.Client,
		r.Category,
		r.HourType,
		formatNumericCell(r.Hours),
		formatNumericCell(r.Rate),
		formatNumericCell(r.Total),
		r.Description,
		r.ProjectLeader,
		r.ProjectNumber,
	}
}

// formatNumericCell uses the shortest decimal form that reloads to the
// exact same float, so export followed by upload changes no sums
func formatNumericCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// writeTimesheetCSV writes records in the original export format
func writeTimesheetCSV(w io.Writer, records []TimesheetRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(exportRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// buildXLSX renders records as a single-sheet workbook
func buildXLSX(records []TimesheetRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Timesheet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range records {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.Employee,
			r.Date.Format(csvDateLayout),
			r.Project,
			r.Client,
			r.Category,
			r.HourType,
			r.Hours,
			r.Rate,
			r.Total,
			r.Description,
			r.ProjectLeader,
			r.ProjectNumber,
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

// exportFileName stamps the download name the way the original tool did
func exportFileName(ext string, stamped bool, now time.Time) string {
	if !stamped {
		return exportBaseName + "." + ext
	}
	return fmt.Sprintf("%s_%s.%s", exportBaseName, now.Format("20060102_1504"), ext)
}

// @Summary Export the filtered subset as CSV
// @Description Re-export the currently filtered records in the original column layout, dates back in DD-MM-YYYY. The download name carries a timestamp unless stamp=0.
// @Tags export
// @Produce text/csv
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param stamp query string false "Set to 0 for a stable file name without timestamp"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/export/csv [get]
func exportCSV(c *gin.Context) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return
	}

	state, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := writeTimesheetCSV(&buf, applyFilters(ds.Records, state)); err != nil {
		log.Printf("Error writing CSV export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error writing CSV export"})
		return
	}

	name := exportFileName("csv", c.Query("stamp") != "0", time.Now())
	metricExports.WithLabelValues("csv").Inc()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

// @Summary Export the filtered subset as XLSX
// @Description Same subset as the CSV export, rendered as a single-sheet workbook
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param stamp query string false "Set to 0 for a stable file name without timestamp"
// @Success 200 {string} string "XLSX file"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "No data loaded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/export/xlsx [get]
func exportXLSX(c *gin.Context) {
	ds, ok := datasetFromRequest(c)
	if !ok {
		return
	}

	state, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	buf, err := buildXLSX(applyFilters(ds.Records, state))
	if err != nil {
		log.Printf("Error building XLSX export: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building XLSX export"})
		return
	}

	name := exportFileName("xlsx", c.Query("stamp") != "0", time.Now())
	metricExports.WithLabelValues("xlsx").Inc()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, name))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
