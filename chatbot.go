package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Chat categories, in routing priority order
const (
	categoryEmployeePerformance = "employee-performance"
	categoryProject             = "project"
	categoryTimePeriod          = "time-period"
	categoryCompliance          = "compliance"
	categoryTotals              = "totals"
	categoryRevenue             = "revenue"
	categoryTrend               = "trend"
	categoryClient              = "client"
	categoryComparison          = "comparison"
	categoryHelp                = "help"
)

// chatHelpText is the fallback for questions matching no category
const chatHelpText = `I can answer questions about the loaded timesheet data. Try asking:
- "Who worked the most hours?"
- "Show me the project overview"
- "What happened last week?"
- "Who has incomplete timesheets?"
- "What are the total hours?"
- "How much revenue did we make?"
- "Show me the monthly trend"
- "Which clients do we serve?"
- "Compare our employees"`

// chatNoDataText answers any category whose input subset turns out empty
const chatNoDataText = "I couldn't find any timesheet entries to answer that. Upload a timesheet or widen your filters."

type chatRule struct {
	category string
	keywords []string
	respond  func(ds *Dataset, question string) string
}

// chatRules is the router's decision list. Order is load-bearing: the first
// category with a keyword present in the question wins, so earlier entries
// shadow later ones for ambiguous questions.
var chatRules = []chatRule{
	{categoryEmployeePerformance,
		[]string{"who worked", "top employee", "best employee", "most productive", "employee performance", "who logged the most"},
		respondEmployeePerformance},
	{categoryProject,
		[]string{"project"},
		respondProject},
	{categoryTimePeriod,
		[]string{"last week", "last month", "last quarter", "last year"},
		respondTimePeriod},
	{categoryCompliance,
		[]string{"compliance", "incomplete", "missing"},
		respondCompliance},
	{categoryTotals,
		[]string{"total hours", "how many hours", "overall", "altogether"},
		respondTotals},
	{categoryRevenue,
		[]string{"revenue", "earnings", "income", "billed", "how much money", "turnover"},
		respondRevenue},
	{categoryTrend,
		[]string{"trend", "over time", "monthly", "per month", "pattern"},
		respondTrend},
	{categoryClient,
		[]string{"client", "customer"},
		respondClient},
	{categoryComparison,
		[]string{"compare", "versus", " vs ", "difference", "against"},
		respondComparison},
}

// classifyAndAnswer routes a question to the first matching category and
// returns the category name and the formatted answer. Questions matching
// nothing get the static help text.
func classifyAndAnswer(ds *Dataset, question string) (string, string) {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(q, kw) {
				return rule.category, rule.respond(ds, q)
			}
		}
	}
	return categoryHelp, chatHelpText
}

func respondEmployeePerformance(ds *Dataset, _ string) string {
	summaries := employeeSummaries(ds.Records)
	if len(summaries) == 0 {
		return chatNoDataText
	}

	var b strings.Builder
	b.WriteString("**Top performers by logged hours**\n")
	for i, s := range topN(summaries, 3) {
		fmt.Fprintf(&b, "%d. %s: %.1f hours, €%.2f revenue, %d projects\n",
			i+1, s.Employee, s.TotalHours, s.TotalRevenue, s.ProjectCount)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func respondProject(ds *Dataset, _ string) string {
	summaries := projectSummaries(ds.Records)
	if len(summaries) == 0 {
		return chatNoDataText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Project overview**\n%d projects in the data. Top by hours:\n", len(summaries))
	for i, s := range topN(summaries, 3) {
		fmt.Fprintf(&b, "%d. %s: %.1f hours, %d employees, €%.2f revenue\n",
			i+1, s.Project, s.TotalHours, s.EmployeeCount, s.TotalRevenue)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func respondTimePeriod(ds *Dataset, question string) string {
	period := "last_week"
	switch {
	case strings.Contains(question, "last month"):
		period = "last_month"
	case strings.Contains(question, "last quarter"):
		period = "last_quarter"
	case strings.Contains(question, "last year"):
		period = "last_year"
	}

	reference, _ := resolveReferenceDate("", ds)
	start, end, err := periodRange(period, reference)
	if err != nil {
		return chatNoDataText
	}

	subset := applyFilters(ds.Records, FilterState{StartDate: start, EndDate: end})
	stats := overallStats(subset)
	if stats.RecordCount == 0 {
		return fmt.Sprintf("No timesheet entries between %s and %s.",
			start.Format(apiDateLayout), end.Format(apiDateLayout))
	}

	top := employeeSummaries(subset)[0]
	label := strings.ReplaceAll(period, "_", " ")
	return fmt.Sprintf("**Activity for %s (%s to %s)**\n%.1f hours across %d entries by %d employees, €%.2f revenue.\nMost active: %s (%.1f hours).",
		label, start.Format(apiDateLayout), end.Format(apiDateLayout),
		stats.TotalHours, stats.RecordCount, stats.EmployeeCount, stats.TotalRevenue,
		top.Employee, top.TotalHours)
}

// respondCompliance uses the flat 35-hour policy over the trailing week,
// independent of the report endpoint's configured default
func respondCompliance(ds *Dataset, _ string) string {
	if len(ds.Records) == 0 {
		return chatNoDataText
	}

	reference, _ := resolveReferenceDate("", ds)
	report, err := complianceReport(ds.Records, PolicyFlat35, reference)
	if err != nil {
		return chatNoDataText
	}
	if report.EmployeeCount == 0 {
		return fmt.Sprintf("No timesheet entries between %s and %s.",
			report.WindowStart.Format(apiDateLayout), report.WindowEnd.Format(apiDateLayout))
	}
	if report.AllComplete {
		return fmt.Sprintf("**Timesheet compliance (%s to %s)**\nAll %d employees logged at least %.0f hours or had leave.",
			report.WindowStart.Format(apiDateLayout), report.WindowEnd.Format(apiDateLayout),
			report.EmployeeCount, report.ExpectedHours)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Timesheet compliance (%s to %s)**\n%d of %d employees fall short of %.0f hours:\n",
		report.WindowStart.Format(apiDateLayout), report.WindowEnd.Format(apiDateLayout),
		len(report.Incomplete), report.EmployeeCount, report.ExpectedHours)
	for i, e := range report.Incomplete {
		fmt.Fprintf(&b, "%d. %s: %.1f logged, %.1f missing\n", i+1, e.Employee, e.HoursLogged, e.MissingHours)
	}
	if n := len(report.OnLeave); n > 0 {
		fmt.Fprintf(&b, "%d employees had leave and are exempt.", n)
		return b.String()
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func respondTotals(ds *Dataset, _ string) string {
	stats := overallStats(ds.Records)
	if stats.RecordCount == 0 {
		return chatNoDataText
	}
	return fmt.Sprintf("**Overall totals**\n%.1f hours across %d entries by %d employees.\nTotal revenue €%.2f at an average rate of €%.2f/h.",
		stats.TotalHours, stats.RecordCount, stats.EmployeeCount, stats.TotalRevenue, stats.AvgRate)
}

func respondRevenue(ds *Dataset, _ string) string {
	summaries := clientSummaries(ds.Records)
	if len(summaries) == 0 {
		return chatNoDataText
	}

	stats := overallStats(ds.Records)
	var b strings.Builder
	fmt.Fprintf(&b, "**Revenue breakdown**\nTotal revenue €%.2f. Top clients:\n", stats.TotalRevenue)
	for i, s := range topN(summaries, 3) {
		fmt.Fprintf(&b, "%d. %s: €%.2f from %d projects\n", i+1, s.Client, s.TotalRevenue, s.ProjectCount)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func respondTrend(ds *Dataset, _ string) string {
	summaries := monthlySummaries(ds.Records)
	if len(summaries) == 0 {
		return chatNoDataText
	}

	busiest := summaries[0]
	var b strings.Builder
	b.WriteString("**Monthly trend**\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "%s: %.1f hours (€%.2f)\n", s.Month, s.TotalHours, s.TotalRevenue)
		if s.TotalHours > busiest.TotalHours {
			busiest = s
		}
	}
	fmt.Fprintf(&b, "Busiest month: %s (%.1f hours).", busiest.Month, busiest.TotalHours)
	return b.String()
}

func respondClient(ds *Dataset, _ string) string {
	summaries := clientSummaries(ds.Records)
	if len(summaries) == 0 {
		return chatNoDataText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Client overview**\n%d clients in the data. Top by revenue:\n", len(summaries))
	for i, s := range topN(summaries, 3) {
		fmt.Fprintf(&b, "%d. %s: €%.2f revenue, %.1f hours, %d projects\n",
			i+1, s.Client, s.TotalRevenue, s.TotalHours, s.ProjectCount)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func respondComparison(ds *Dataset, _ string) string {
	summaries := employeeSummaries(ds.Records)
	if len(summaries) < 2 {
		return chatNoDataText
	}

	first, second := summaries[0], summaries[1]
	return fmt.Sprintf("**%s vs %s**\n%s: %.1f hours, €%.2f revenue\n%s: %.1f hours, €%.2f revenue\n%s leads by %.1f hours.",
		first.Employee, second.Employee,
		first.Employee, first.TotalHours, first.TotalRevenue,
		second.Employee, second.TotalHours, second.TotalRevenue,
		first.Employee, first.TotalHours-second.TotalHours)
}

// @Summary Ask the timesheet assistant a question
// @Description Routes the question through fixed keyword categories and answers from the session's records
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID; omitted means the server's default dataset"
// @Param request body ChatRequest true "Question to answer"
// @Success 200 {object} ChatEntry "Routed answer with the session id"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/chat [post]
func askQuestion(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateQuestion(req.Question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, ok := sessionForChat(c)
	if !ok {
		return
	}

	category, response := classifyAndAnswer(session.Dataset, req.Question)
	entry := ChatEntry{
		ID:        uuid.New().String(),
		Question:  req.Question,
		Response:  response,
		Category:  category,
		Timestamp: time.Now(),
	}
	sessions.AppendChat(session.ID, entry)
	metricChatQueries.WithLabelValues(category).Inc()

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"id":         entry.ID,
		"question":   entry.Question,
		"response":   entry.Response,
		"category":   entry.Category,
		"timestamp":  entry.Timestamp,
	})
}

// @Summary Get the session's conversation log
// @Tags chat
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} map[string]interface{} "Conversation entries in ask order"
// @Failure 404 {object} map[string]interface{} "Not found"
// @Router /api/chat/history [get]
func getChatHistory(c *gin.Context) {
	session, ok := sessionFromRequest(c)
	if !ok {
		return
	}

	history := sessions.History(session.ID)
	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"count":      len(history),
		"history":    history,
	})
}
