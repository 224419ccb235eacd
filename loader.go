package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Column names as they appear in the timesheet exports
const (
	colEmployee      = "Medewerker"
	colDate          = "Datum"
	colProject       = "Project"
	colClient        = "Relatie"
	colCategory      = "Categorie"
	colHourType      = "Urensoort"
	colHours         = "Aantal"
	colRate          = "Uurtarief"
	colTotal         = "Totaal"
	colDescription   = "Toelichting"
	colProjectLeader = "Projectleider"
	colProjectNumber = "Projectnummer"
)

var requiredColumns = []string{
	colEmployee, colDate, colProject, colClient, colCategory,
	colHourType, colHours, colRate, colTotal, colDescription,
}

// Defaults for missing categorical fields
const (
	defaultEmployee      = "Unassigned"
	defaultProject       = "Unknown Project"
	defaultClient        = "Unknown Client"
	defaultCategory      = "Other"
	defaultProjectLeader = "Unassigned"
	defaultProjectNumber = "N/A"
)

var leavePattern = regexp.MustCompile(`(?i)leave|absence`)

// parseTimesheetCSV reads a timesheet export into an immutable Dataset.
//
// Row policy: rows with an unparseable date are dropped (and counted),
// non-numeric hour/rate/total cells are coerced to 0 (and counted), and
// missing categorical fields fall back to named defaults.
func parseTimesheetCSV(r io.Reader, fileName string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV file")
	}

	// Map column names to indices from the header row
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	ds := &Dataset{
		Records:  make([]TimesheetRecord, 0, len(rows)-1),
		FileName: fileName,
		LoadedAt: time.Now(),
	}

	for _, row := range rows[1:] {
		date, err := time.Parse(csvDateLayout, cell(row, colDate))
		if err != nil {
			ds.SkippedRows++
			continue
		}
		date = dateOnly(date)

		record := TimesheetRecord{
			Employee:      stringOrDefault(cell(row, colEmployee), defaultEmployee),
			Date:          date,
			Project:       stringOrDefault(cell(row, colProject), defaultProject),
			Client:        stringOrDefault(cell(row, colClient), defaultClient),
			Category:      stringOrDefault(cell(row, colCategory), defaultCategory),
			HourType:      cell(row, colHourType),
			Hours:         parseNumericCell(cell(row, colHours), &ds.CoercedCells),
			Rate:          parseNumericCell(cell(row, colRate), &ds.CoercedCells),
			Total:         parseNumericCell(cell(row, colTotal), &ds.CoercedCells),
			Description:   cell(row, colDescription),
			ProjectLeader: stringOrDefault(cell(row, colProjectLeader), defaultProjectLeader),
			ProjectNumber: stringOrDefault(cell(row, colProjectNumber), defaultProjectNumber),
		}
		deriveDateParts(&record)
		record.IsLeave = leavePattern.MatchString(record.Category)

		if ds.MinDate.IsZero() || date.Before(ds.MinDate) {
			ds.MinDate = date
		}
		if ds.MaxDate.IsZero() || date.After(ds.MaxDate) {
			ds.MaxDate = date
		}

		ds.Records = append(ds.Records, record)
	}

	return ds, nil
}

// deriveDateParts fills the date features computed once at load time
func deriveDateParts(r *TimesheetRecord) {
	r.Year = r.Date.Year()
	r.Month = int(r.Date.Month())
	r.MonthName = r.Date.Month().String()
	r.Quarter = (r.Month-1)/3 + 1
	_, r.Week = r.Date.ISOWeek()
	r.Weekday = r.Date.Weekday().String()
	r.IsWeekend = r.Date.Weekday() == time.Saturday || r.Date.Weekday() == time.Sunday
}

// stringOrDefault substitutes a named default for missing values
func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseNumericCell coerces a numeric cell to a float. Empty cells read as 0;
// malformed cells also read as 0 but are counted so the load report can
// surface them.
func parseNumericCell(value string, coerced *int) float64 {
	if value == "" {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*coerced++
		return 0
	}
	return f
}

// loadDefaultDataset reads the bundled export served to sessionless requests
func loadDefaultDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening data file: %w", err)
	}
	defer f.Close()

	ds, err := parseTimesheetCSV(f, path)
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// @Summary Upload timesheet CSV
// @Description Upload a timesheet CSV export. Parses and cleans the file, opens a session bound to the resulting dataset, and returns the session id plus load accounting (rows skipped for bad dates, numeric cells coerced to zero).
// @Tags records
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Timesheet CSV file to upload"
// @Success 200 {object} map[string]interface{} "Upload successful - returns session_id, records_loaded, skipped_rows and coerced_cells"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Router /api/upload-csv [post]
func uploadCSV(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	ds, err := parseTimesheetCSV(file, header.Filename)
	if err != nil {
		log.Printf("Error parsing uploaded file %s: %v", header.Filename, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessions.Create(ds)
	metricUploads.Inc()
	metricRecordsLoaded.Set(float64(len(ds.Records)))

	c.JSON(http.StatusOK, gin.H{
		"message":        "CSV uploaded successfully",
		"session_id":     session.ID,
		"file_name":      ds.FileName,
		"records_loaded": len(ds.Records),
		"skipped_rows":   ds.SkippedRows,
		"coerced_cells":  ds.CoercedCells,
		"min_date":       ds.MinDate,
		"max_date":       ds.MaxDate,
	})
}
