package main

import "time"

// TimesheetRecord represents one logged time entry from a timesheet export
type TimesheetRecord struct {
	Employee      string    `json:"employee"`
	Date          time.Time `json:"date"`
	Project       string    `json:"project"`
	Client        string    `json:"client"`
	Category      string    `json:"category"`
	HourType      string    `json:"hour_type"`
	Hours         float64   `json:"hours"`
	Rate          float64   `json:"rate"`
	Total         float64   `json:"total"`
	Description   string    `json:"description"`
	ProjectLeader string    `json:"project_leader"`
	ProjectNumber string    `json:"project_number"`

	// Date features derived once at load time
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Quarter   int    `json:"quarter"`
	Week      int    `json:"week"`
	Weekday   string `json:"weekday"`
	IsWeekend bool   `json:"is_weekend"`
	IsLeave   bool   `json:"is_leave"`
}

// Dataset is an immutable snapshot of one loaded timesheet file
type Dataset struct {
	Records      []TimesheetRecord `json:"records"`
	FileName     string            `json:"file_name"`
	LoadedAt     time.Time         `json:"loaded_at"`
	SkippedRows  int               `json:"skipped_rows"`
	CoercedCells int               `json:"coerced_cells"`
	MinDate      time.Time         `json:"min_date"`
	MaxDate      time.Time         `json:"max_date"`
}

// FilterState carries one request's complete filter selection. It is parsed
// per request and never stored, so every computation sees an explicit,
// immutable state object instead of shared globals.
type FilterState struct {
	StartDate time.Time
	EndDate   time.Time

	Employees  []string
	Projects   []string
	Clients    []string
	Categories []string

	MinHours *float64
	MaxHours *float64
	MinRate  *float64
	MaxRate  *float64

	Search           string
	ExcludeZeroHours bool

	// Drill-down re-scopes the subset to a single category or month value
	DrillDimension string
	DrillValue     string
}

// DimensionValues lists the distinct values per filterable dimension,
// each prefixed with the "All" sentinel for the frontend multiselects
type DimensionValues struct {
	Employees  []string `json:"employees"`
	Projects   []string `json:"projects"`
	Clients    []string `json:"clients"`
	Categories []string `json:"categories"`
}

// OverallStats is the KPI header block for a filtered subset
type OverallStats struct {
	TotalHours    float64 `json:"total_hours"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRate       float64 `json:"avg_rate"`
	EmployeeCount int     `json:"employee_count"`
	RecordCount   int     `json:"record_count"`
}

// EmployeeSummary aggregates one employee's activity
type EmployeeSummary struct {
	Employee     string  `json:"employee"`
	TotalHours   float64 `json:"total_hours"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgRate      float64 `json:"avg_rate"`
	ProjectCount int     `json:"project_count"`
}

// ProjectSummary aggregates one project's activity
type ProjectSummary struct {
	Project       string  `json:"project"`
	TotalHours    float64 `json:"total_hours"`
	TotalRevenue  float64 `json:"total_revenue"`
	EmployeeCount int     `json:"employee_count"`
	AvgRate       float64 `json:"avg_rate"`
}

// ClientSummary aggregates one client's portfolio
type ClientSummary struct {
	Client        string  `json:"client"`
	TotalHours    float64 `json:"total_hours"`
	TotalRevenue  float64 `json:"total_revenue"`
	ProjectCount  int     `json:"project_count"`
	EmployeeCount int     `json:"employee_count"`
}

// CategorySummary aggregates hours and revenue per category
type CategorySummary struct {
	Category     string  `json:"category"`
	TotalHours   float64 `json:"total_hours"`
	TotalRevenue float64 `json:"total_revenue"`
	PercentHours float64 `json:"percent_hours"`
}

// MonthlySummary aggregates one calendar month across all loaded years
type MonthlySummary struct {
	Month        string  `json:"month"`
	TotalHours   float64 `json:"total_hours"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DailySummary is one point of the daily hours trend
type DailySummary struct {
	Date       time.Time `json:"date"`
	TotalHours float64   `json:"total_hours"`
}

// PeriodActivity is one employee's activity within a quick-insight period
type PeriodActivity struct {
	Employee     string    `json:"employee"`
	TotalHours   float64   `json:"total_hours"`
	TotalRevenue float64   `json:"total_revenue"`
	ProjectCount int       `json:"project_count"`
	FirstEntry   time.Time `json:"first_entry"`
	LastEntry    time.Time `json:"last_entry"`
}

// ComplianceEntry is one employee's logged-vs-expected shortfall for a window
type ComplianceEntry struct {
	Employee     string  `json:"employee"`
	HoursLogged  float64 `json:"hours_logged"`
	MissingHours float64 `json:"missing_hours"`
}

// ComplianceReport flags employees whose logged hours fall short of the
// policy's expectation for the reporting window. Employees with any
// leave entry in the window are listed separately and never flagged.
type ComplianceReport struct {
	Policy        string            `json:"policy"`
	WindowStart   time.Time         `json:"window_start"`
	WindowEnd     time.Time         `json:"window_end"`
	WorkingDays   int               `json:"working_days"`
	ExpectedHours float64           `json:"expected_hours"`
	EmployeeCount int               `json:"employee_count"`
	Incomplete    []ComplianceEntry `json:"incomplete"`
	OnLeave       []string          `json:"on_leave"`
	AllComplete   bool              `json:"all_complete"`
}

// ChatEntry is one question/response pair in a session's conversation log
type ChatEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest is the request body for asking the assistant a question
type ChatRequest struct {
	Question string `json:"question"`
}

// Session scopes one user's dataset and conversation log. Nothing outlives it.
type Session struct {
	ID           string      `json:"id"`
	Dataset      *Dataset    `json:"-"`
	Conversation []ChatEntry `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	LastSeen     time.Time   `json:"last_seen"`
}

// SessionInfo is the API representation of a session
type SessionInfo struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	Questions   int       `json:"questions"`
	CreatedAt   time.Time `json:"created_at"`
	LastSeen    time.Time `json:"last_seen"`
}
