package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

var testRouter *gin.Engine

// testCSV is a small timesheet export with known totals: 16 rows over three
// months, four employees, three projects, one leave entry and one zero-hour
// entry. Overall: 95.5 hours, 7685 revenue, latest date Friday 2024-03-15.
const testCSV = `Medewerker,Datum,Project,Relatie,Categorie,Urensoort,Aantal,Uurtarief,Totaal,Toelichting,Projectleider,Projectnummer
Alice Johnson,15-01-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Homepage build,Frank Miller,P-1001
Bob Smith,16-01-2024,Website Redesign,Acme Corp,Development,Regular,6,80,480,API integration,Frank Miller,P-1001
Alice Johnson,17-01-2024,Mobile App,Globex,Design,Regular,4,95,380,Wireframes,Grace Lee,P-1002
Carol Davis,05-02-2024,Mobile App,Globex,Development,Regular,7.5,70,525,Login flow,Grace Lee,P-1002
Bob Smith,06-02-2024,Internal Tools,Initech,Maintenance,Regular,3,80,240,Build server upkeep,Frank Miller,P-1003
Alice Johnson,07-02-2024,Website Redesign,Acme Corp,Meetings,Regular,2,95,190,Sprint review,Frank Miller,P-1001
Alice Johnson,11-03-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Checkout page,Frank Miller,P-1001
Alice Johnson,12-03-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Checkout page,Frank Miller,P-1001
Alice Johnson,13-03-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Payment service,Frank Miller,P-1001
Alice Johnson,14-03-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Payment service,Frank Miller,P-1001
Alice Johnson,15-03-2024,Website Redesign,Acme Corp,Development,Regular,8,95,760,Release prep,Frank Miller,P-1001
Bob Smith,11-03-2024,Internal Tools,Initech,Development,Regular,6,80,480,Deployment scripts,Frank Miller,P-1003
Bob Smith,12-03-2024,Internal Tools,Initech,Development,Regular,6,80,480,Deployment scripts,Frank Miller,P-1003
Carol Davis,11-03-2024,Mobile App,Globex,Leave,Leave hours,8,0,0,Vacation,Grace Lee,P-1002
Carol Davis,13-03-2024,Mobile App,Globex,Development,Regular,5,70,350,Push notifications,Grace Lee,P-1002
Dave Wilson,14-03-2024,Website Redesign,Acme Corp,Meetings,Regular,0,0,0,Standup only,Frank Miller,P-1001
`

// TestMain sets up the test environment
func TestMain(m *testing.M) {
	// Set gin to test mode
	gin.SetMode(gin.TestMode)

	if err := setupTestState(); err != nil {
		log.Fatalf("Failed to set up test state: %v", err)
	}

	os.Exit(m.Run())
}

// setupTestState wires the globals main normally initializes
func setupTestState() error {
	cfg = Config{
		Port:              "8080",
		AllowedOrigins:    []string{"http://localhost:3001"},
		ReferenceDateMode: "dataset",
		CompliancePolicy:  PolicyStandard,
		SessionTTLMinutes: 240,
	}

	ds, err := parseTimesheetCSV(strings.NewReader(testCSV), "fixture.csv")
	if err != nil {
		return fmt.Errorf("failed to parse fixture CSV: %w", err)
	}
	defaultDataset = ds

	resetSessions()
	setupTestRouter()

	return nil
}

// resetSessions replaces the session store with a fresh one
func resetSessions() {
	sessions = newSessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
}

// setupTestRouter configures the test router with all routes
func setupTestRouter() {
	testRouter = gin.New()

	// Add routes (same as main function)
	testRouter.POST("/api/upload-csv", uploadCSV)
	testRouter.GET("/api/records", getRecords)
	testRouter.GET("/api/dimensions", getDimensions)
	testRouter.GET("/api/summary", getSummary)
	testRouter.GET("/api/summary/employees", getEmployeeSummaries)
	testRouter.GET("/api/summary/projects", getProjectSummaries)
	testRouter.GET("/api/summary/clients", getClientSummaries)
	testRouter.GET("/api/summary/categories", getCategorySummaries)
	testRouter.GET("/api/summary/months", getMonthlySummaries)
	testRouter.GET("/api/summary/days", getDailySummaries)
	testRouter.GET("/api/periods/:period", getPeriodActivity)
	testRouter.GET("/api/compliance", getCompliance)
	testRouter.POST("/api/chat", askQuestion)
	testRouter.GET("/api/chat/history", getChatHistory)
	testRouter.GET("/api/export/csv", exportCSV)
	testRouter.GET("/api/export/xlsx", exportXLSX)
	testRouter.POST("/api/sessions", createSession)
	testRouter.GET("/api/sessions/:id", getSession)
	testRouter.DELETE("/api/sessions/:id", deleteSession)
	testRouter.GET("/api/health", healthCheck)
}

// makeTestRecord builds a record the way the loader does, date parts derived
func makeTestRecord(employee, isoDate, project, client, category string, hours, rate, total float64) TimesheetRecord {
	r := TimesheetRecord{
		Employee: employee,
		Date:     mustParseDate(isoDate),
		Project:  project,
		Client:   client,
		Category: category,
		Hours:    hours,
		Rate:     rate,
		Total:    total,
	}
	deriveDateParts(&r)
	r.IsLeave = leavePattern.MatchString(category)
	return r
}

// mustParseDate parses an ISO date for test data and expectations
func mustParseDate(iso string) time.Time {
	t, err := time.Parse(apiDateLayout, iso)
	if err != nil {
		panic(err)
	}
	return dateOnly(t)
}

// makeRequest helper function for making HTTP requests
func makeRequest(method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeSessionRequest helper function for requests scoped to a session
func makeSessionRequest(method, url, sessionID string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(sessionHeader, sessionID)

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// makeMultipartRequest helper function for making multipart requests (file uploads)
func makeMultipartRequest(url string, fieldName, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		panic(err)
	}

	part.Write(fileContent)
	writer.Close()

	req := httptest.NewRequest("POST", url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	testRouter.ServeHTTP(recorder, req)

	return recorder
}

// uploadTestCSV uploads CSV content and returns the created session ID
func uploadTestCSV(t *testing.T, content string) string {
	t.Helper()
	resp := makeMultipartRequest("/api/upload-csv", "file", "upload.csv", []byte(content))
	assertStatusCode(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	assertNoError(t, parseJSONResponse(resp, &response))

	id, _ := response["session_id"].(string)
	if id == "" {
		t.Fatal("Expected session_id in upload response")
	}
	return id
}

// parseJSONResponse helper function to parse JSON response
func parseJSONResponse(recorder *httptest.ResponseRecorder, target interface{}) error {
	return json.Unmarshal(recorder.Body.Bytes(), target)
}

// assertStatusCode helper function to assert HTTP status code
func assertStatusCode(t *testing.T, expected, actual int) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// assertNoError helper function to assert no error occurred
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

// assertError helper function to assert an error occurred
func assertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected an error, but got nil")
	}
}
