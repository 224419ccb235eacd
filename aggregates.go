package main

import (
	"time"

	"golang.org/x/exp/slices"
)

// overallStats computes the headline numbers for a record set.
// An empty set yields zeros across the board.
func overallStats(records []TimesheetRecord) OverallStats {
	stats := OverallStats{RecordCount: len(records)}
	employees := make(map[string]struct{})
	var rateSum float64
	for _, r := range records {
		stats.TotalHours += r.Hours
		stats.TotalRevenue += r.Total
		rateSum += r.Rate
		employees[r.Employee] = struct{}{}
	}
	stats.AvgRate = meanOf(rateSum, len(records))
	stats.EmployeeCount = len(employees)
	return stats
}

// employeeSummaries groups by employee and ranks by total hours, descending.
// Ties keep the order employees first appear in the records.
func employeeSummaries(records []TimesheetRecord) []EmployeeSummary {
	type acc struct {
		hours, revenue, rateSum float64
		rows                    int
		projects                map[string]struct{}
	}
	byEmployee := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range records {
		a, ok := byEmployee[r.Employee]
		if !ok {
			a = &acc{projects: make(map[string]struct{})}
			byEmployee[r.Employee] = a
			order = append(order, r.Employee)
		}
		a.hours += r.Hours
		a.revenue += r.Total
		a.rateSum += r.Rate
		a.rows++
		a.projects[r.Project] = struct{}{}
	}

	summaries := make([]EmployeeSummary, 0, len(order))
	for _, name := range order {
		a := byEmployee[name]
		summaries = append(summaries, EmployeeSummary{
			Employee:     name,
			TotalHours:   a.hours,
			TotalRevenue: a.revenue,
			AvgRate:      meanOf(a.rateSum, a.rows),
			ProjectCount: len(a.projects),
		})
	}
	slices.SortStableFunc(summaries, func(a, b EmployeeSummary) int {
		return descFloat(a.TotalHours, b.TotalHours)
	})
	return summaries
}

// projectSummaries groups by project and ranks by total hours, descending
func projectSummaries(records []TimesheetRecord) []ProjectSummary {
	type acc struct {
		hours, revenue, rateSum float64
		rows                    int
		employees               map[string]struct{}
	}
	byProject := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range records {
		a, ok := byProject[r.Project]
		if !ok {
			a = &acc{employees: make(map[string]struct{})}
			byProject[r.Project] = a
			order = append(order, r.Project)
		}
		a.hours += r.Hours
		a.revenue += r.Total
		a.rateSum += r.Rate
		a.rows++
		a.employees[r.Employee] = struct{}{}
	}

	summaries := make([]ProjectSummary, 0, len(order))
	for _, name := range order {
		a := byProject[name]
		summaries = append(summaries, ProjectSummary{
			Project:       name,
			TotalHours:    a.hours,
			TotalRevenue:  a.revenue,
			EmployeeCount: len(a.employees),
			AvgRate:       meanOf(a.rateSum, a.rows),
		})
	}
	slices.SortStableFunc(summaries, func(a, b ProjectSummary) int {
		return descFloat(a.TotalHours, b.TotalHours)
	})
	return summaries
}

// clientSummaries groups by client and ranks by total revenue, descending
func clientSummaries(records []TimesheetRecord) []ClientSummary {
	type acc struct {
		hours, revenue      float64
		projects, employees map[string]struct{}
	}
	byClient := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range records {
		a, ok := byClient[r.Client]
		if !ok {
			a = &acc{projects: make(map[string]struct{}), employees: make(map[string]struct{})}
			byClient[r.Client] = a
			order = append(order, r.Client)
		}
		a.hours += r.Hours
		a.revenue += r.Total
		a.projects[r.Project] = struct{}{}
		a.employees[r.Employee] = struct{}{}
	}

	summaries := make([]ClientSummary, 0, len(order))
	for _, name := range order {
		a := byClient[name]
		summaries = append(summaries, ClientSummary{
			Client:        name,
			TotalHours:    a.hours,
			TotalRevenue:  a.revenue,
			ProjectCount:  len(a.projects),
			EmployeeCount: len(a.employees),
		})
	}
	slices.SortStableFunc(summaries, func(a, b ClientSummary) int {
		return descFloat(a.TotalRevenue, b.TotalRevenue)
	})
	return summaries
}

// categorySummaries groups by category with each category's share of
// the subset's hours. Shares are 0 when the subset has no hours at all.
func categorySummaries(records []TimesheetRecord) []CategorySummary {
	type acc struct {
		hours, revenue float64
	}
	byCategory := make(map[string]*acc)
	order := make([]string, 0)
	var totalHours float64
	for _, r := range records {
		a, ok := byCategory[r.Category]
		if !ok {
			a = &acc{}
			byCategory[r.Category] = a
			order = append(order, r.Category)
		}
		a.hours += r.Hours
		a.revenue += r.Total
		totalHours += r.Hours
	}

	summaries := make([]CategorySummary, 0, len(order))
	for _, name := range order {
		a := byCategory[name]
		summaries = append(summaries, CategorySummary{
			Category:     name,
			TotalHours:   a.hours,
			TotalRevenue: a.revenue,
			PercentHours: percentOfTotal(a.hours, totalHours),
		})
	}
	slices.SortStableFunc(summaries, func(a, b CategorySummary) int {
		return descFloat(a.TotalHours, b.TotalHours)
	})
	return summaries
}

// monthlySummaries totals hours and revenue per calendar month,
// returned in January..December order with empty months omitted
func monthlySummaries(records []TimesheetRecord) []MonthlySummary {
	var hours, revenue [13]float64
	var seen [13]bool
	for _, r := range records {
		hours[r.Month] += r.Hours
		revenue[r.Month] += r.Total
		seen[r.Month] = true
	}

	summaries := make([]MonthlySummary, 0, 12)
	for m := 1; m <= 12; m++ {
		if !seen[m] {
			continue
		}
		summaries = append(summaries, MonthlySummary{
			Month:        time.Month(m).String(),
			TotalHours:   hours[m],
			TotalRevenue: revenue[m],
		})
	}
	return summaries
}

// dailySummaries totals hours per day in ascending date order
func dailySummaries(records []TimesheetRecord) []DailySummary {
	byDay := make(map[time.Time]float64)
	for _, r := range records {
		byDay[r.Date] += r.Hours
	}

	summaries := make([]DailySummary, 0, len(byDay))
	for day, total := range byDay {
		summaries = append(summaries, DailySummary{Date: day, TotalHours: total})
	}
	slices.SortFunc(summaries, func(a, b DailySummary) int {
		return a.Date.Compare(b.Date)
	})
	return summaries
}

// periodActivities summarizes per-employee activity inside a period,
// including each employee's first and last entry dates
func periodActivities(records []TimesheetRecord) []PeriodActivity {
	type acc struct {
		hours, revenue float64
		projects       map[string]struct{}
		first, last    time.Time
	}
	byEmployee := make(map[string]*acc)
	order := make([]string, 0)
	for _, r := range records {
		a, ok := byEmployee[r.Employee]
		if !ok {
			a = &acc{projects: make(map[string]struct{}), first: r.Date, last: r.Date}
			byEmployee[r.Employee] = a
			order = append(order, r.Employee)
		}
		a.hours += r.Hours
		a.revenue += r.Total
		a.projects[r.Project] = struct{}{}
		if r.Date.Before(a.first) {
			a.first = r.Date
		}
		if r.Date.After(a.last) {
			a.last = r.Date
		}
	}

	activities := make([]PeriodActivity, 0, len(order))
	for _, name := range order {
		a := byEmployee[name]
		activities = append(activities, PeriodActivity{
			Employee:     name,
			TotalHours:   a.hours,
			TotalRevenue: a.revenue,
			ProjectCount: len(a.projects),
			FirstEntry:   a.first,
			LastEntry:    a.last,
		})
	}
	slices.SortStableFunc(activities, func(a, b PeriodActivity) int {
		return descFloat(a.TotalHours, b.TotalHours)
	})
	return activities
}

// topN returns the first n entries of an already ranked slice.
// Any n outside (0, len) returns the slice unchanged.
func topN[T any](ranked []T, n int) []T {
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// percentOfTotal guards against a zero denominator
func percentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

func meanOf(sum float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// descFloat orders larger values first
func descFloat(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
