package main

import (
	"net/http"
	"testing"
)

// TestGetSummary tests the GET /api/summary endpoint
func TestGetSummary(t *testing.T) {
	t.Run("should return overall statistics", func(t *testing.T) {
		resp := makeRequest("GET", "/api/summary", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var stats OverallStats
		assertNoError(t, parseJSONResponse(resp, &stats))

		if stats.TotalHours != 95.5 {
			t.Errorf("Expected 95.5 total hours, got %f", stats.TotalHours)
		}
		if stats.TotalRevenue != 7685 {
			t.Errorf("Expected 7685 total revenue, got %f", stats.TotalRevenue)
		}
		if stats.AvgRate != 76.25 {
			t.Errorf("Expected average rate 76.25, got %f", stats.AvgRate)
		}
		if stats.EmployeeCount != 4 {
			t.Errorf("Expected 4 employees, got %d", stats.EmployeeCount)
		}
		if stats.RecordCount != 16 {
			t.Errorf("Expected 16 records, got %d", stats.RecordCount)
		}
	})

	t.Run("should respect the filter selection", func(t *testing.T) {
		resp := makeRequest("GET", "/api/summary?category=Development", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var stats OverallStats
		assertNoError(t, parseJSONResponse(resp, &stats))

		if stats.TotalHours != 78.5 {
			t.Errorf("Expected 78.5 development hours, got %f", stats.TotalHours)
		}
		if stats.RecordCount != 11 {
			t.Errorf("Expected 11 development records, got %d", stats.RecordCount)
		}
	})

	t.Run("should report zeros for an empty subset", func(t *testing.T) {
		resp := makeRequest("GET", "/api/summary?employee=Nobody", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var stats OverallStats
		assertNoError(t, parseJSONResponse(resp, &stats))

		if stats.TotalHours != 0 || stats.TotalRevenue != 0 || stats.RecordCount != 0 {
			t.Errorf("Expected zeros for empty subset, got %+v", stats)
		}
	})
}

// TestGetEmployeeSummaries tests the GET /api/summary/employees endpoint
func TestGetEmployeeSummaries(t *testing.T) {
	t.Run("should rank employees by hours", func(t *testing.T) {
		resp := makeRequest("GET", "/api/summary/employees", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var summaries []EmployeeSummary
		assertNoError(t, parseJSONResponse(resp, &summaries))

		if len(summaries) != 4 {
			t.Fatalf("Expected 4 employee summaries, got %d", len(summaries))
		}
		if summaries[0].Employee != "Alice Johnson" {
			t.Errorf("Expected Alice Johnson first, got %s", summaries[0].Employee)
		}
		if summaries[0].TotalHours != 54 {
			t.Errorf("Expected 54 hours for Alice Johnson, got %f", summaries[0].TotalHours)
		}
		if summaries[3].Employee != "Dave Wilson" {
			t.Errorf("Expected Dave Wilson last, got %s", summaries[3].Employee)
		}
	})

	t.Run("should honor the limit parameter", func(t *testing.T) {
		resp := makeRequest("GET", "/api/summary/employees?limit=2", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var summaries []EmployeeSummary
		assertNoError(t, parseJSONResponse(resp, &summaries))

		if len(summaries) != 2 {
			t.Errorf("Expected 2 summaries with limit=2, got %d", len(summaries))
		}
	})
}

// TestGetProjectSummaries tests the GET /api/summary/projects endpoint
func TestGetProjectSummaries(t *testing.T) {
	resp := makeRequest("GET", "/api/summary/projects", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []ProjectSummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 project summaries, got %d", len(summaries))
	}
	if summaries[0].Project != "Website Redesign" {
		t.Errorf("Expected Website Redesign first, got %s", summaries[0].Project)
	}
	if summaries[0].EmployeeCount != 3 {
		t.Errorf("Expected 3 employees on Website Redesign, got %d", summaries[0].EmployeeCount)
	}
}

// TestGetClientSummaries tests the GET /api/summary/clients endpoint
func TestGetClientSummaries(t *testing.T) {
	resp := makeRequest("GET", "/api/summary/clients", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []ClientSummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 client summaries, got %d", len(summaries))
	}
	if summaries[0].Client != "Acme Corp" {
		t.Errorf("Expected Acme Corp first by revenue, got %s", summaries[0].Client)
	}
	if summaries[0].TotalRevenue != 5230 {
		t.Errorf("Expected 5230 revenue for Acme Corp, got %f", summaries[0].TotalRevenue)
	}
}

// TestGetCategorySummaries tests the GET /api/summary/categories endpoint
func TestGetCategorySummaries(t *testing.T) {
	resp := makeRequest("GET", "/api/summary/categories", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []CategorySummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 5 {
		t.Fatalf("Expected 5 category summaries, got %d", len(summaries))
	}
	if summaries[0].Category != "Development" {
		t.Errorf("Expected Development first, got %s", summaries[0].Category)
	}
	if summaries[0].PercentHours < 82 || summaries[0].PercentHours > 83 {
		t.Errorf("Expected Development share around 82%%, got %f", summaries[0].PercentHours)
	}
}

// TestGetMonthlySummaries tests the GET /api/summary/months endpoint
func TestGetMonthlySummaries(t *testing.T) {
	resp := makeRequest("GET", "/api/summary/months", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []MonthlySummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 monthly summaries, got %d", len(summaries))
	}
	if summaries[0].Month != "January" || summaries[2].Month != "March" {
		t.Errorf("Expected January..March calendar order, got %v", summaries)
	}
	if summaries[2].TotalHours != 65 {
		t.Errorf("Expected 65 hours in March, got %f", summaries[2].TotalHours)
	}
}

// TestGetDailySummaries tests the GET /api/summary/days endpoint
func TestGetDailySummaries(t *testing.T) {
	resp := makeRequest("GET", "/api/summary/days", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var summaries []DailySummary
	assertNoError(t, parseJSONResponse(resp, &summaries))

	if len(summaries) != 11 {
		t.Fatalf("Expected 11 daily summaries, got %d", len(summaries))
	}
	if summaries[0].TotalHours != 8 {
		t.Errorf("Expected 8 hours on the first day, got %f", summaries[0].TotalHours)
	}
}

// TestGetPeriodActivity tests the GET /api/periods/:period endpoint
func TestGetPeriodActivity(t *testing.T) {
	t.Run("should resolve the period window", func(t *testing.T) {
		resp := makeRequest("GET", "/api/periods/last_week?reference=2024-03-18", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var response struct {
			Period    string           `json:"period"`
			Start     string           `json:"start"`
			End       string           `json:"end"`
			Stats     OverallStats     `json:"stats"`
			Employees []PeriodActivity `json:"employees"`
		}
		assertNoError(t, parseJSONResponse(resp, &response))

		if response.Period != "last_week" {
			t.Errorf("Expected period last_week, got %s", response.Period)
		}
		if response.Start != "2024-03-11" || response.End != "2024-03-17" {
			t.Errorf("Expected window 2024-03-11..2024-03-17, got %s..%s", response.Start, response.End)
		}
		if response.Stats.TotalHours != 65 {
			t.Errorf("Expected 65 hours last week, got %f", response.Stats.TotalHours)
		}
		if len(response.Employees) != 4 {
			t.Fatalf("Expected 4 active employees, got %d", len(response.Employees))
		}
		if response.Employees[0].Employee != "Alice Johnson" || response.Employees[0].TotalHours != 40 {
			t.Errorf("Expected Alice Johnson with 40 hours first, got %+v", response.Employees[0])
		}
	})

	t.Run("should compose with dimension filters", func(t *testing.T) {
		resp := makeRequest("GET", "/api/periods/last_week?reference=2024-03-18&employee=Bob%20Smith", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var response struct {
			Stats     OverallStats     `json:"stats"`
			Employees []PeriodActivity `json:"employees"`
		}
		assertNoError(t, parseJSONResponse(resp, &response))

		if len(response.Employees) != 1 {
			t.Fatalf("Expected 1 active employee, got %d", len(response.Employees))
		}
		if response.Stats.TotalHours != 12 {
			t.Errorf("Expected 12 hours for Bob Smith, got %f", response.Stats.TotalHours)
		}
	})

	t.Run("should anchor on the dataset by default", func(t *testing.T) {
		resp := makeRequest("GET", "/api/periods/last_month", nil)

		assertStatusCode(t, http.StatusOK, resp.Code)

		var response struct {
			Start string       `json:"start"`
			End   string       `json:"end"`
			Stats OverallStats `json:"stats"`
		}
		assertNoError(t, parseJSONResponse(resp, &response))

		if response.Start != "2024-02-01" || response.End != "2024-02-29" {
			t.Errorf("Expected window 2024-02-01..2024-02-29, got %s..%s", response.Start, response.End)
		}
		if response.Stats.TotalHours != 12.5 {
			t.Errorf("Expected 12.5 hours last month, got %f", response.Stats.TotalHours)
		}
	})
}

// TestHealthCheck tests the GET /api/health endpoint
func TestHealthCheck(t *testing.T) {
	resp := makeRequest("GET", "/api/health", nil)

	assertStatusCode(t, http.StatusOK, resp.Code)

	var response map[string]interface{}
	assertNoError(t, parseJSONResponse(resp, &response))

	if response["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", response["status"])
	}
	if response["data_loaded"] != true {
		t.Errorf("Expected data_loaded true, got %v", response["data_loaded"])
	}
	if response["sessions"] == nil {
		t.Error("Expected a sessions count in the response")
	}
}
