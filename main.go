package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "timesheetanalytics/docs"
)

// Shared server state. Handlers read these; computations always receive
// the record set and filter selection explicitly.
var (
	cfg            Config
	sessions       *SessionStore
	defaultDataset *Dataset
)

// @title Timesheet Analytics API
// @version 1.0
// @description Backend for the timesheet analytics dashboard: CSV ingestion, filtering, aggregation, weekly compliance checks and a keyword-routed assistant.
// @host localhost:8080
// @BasePath /
func main() {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	sessions = newSessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)

	// Optional bundled export served to sessionless requests
	if cfg.DataFile != "" {
		defaultDataset, err = loadDefaultDataset(cfg.DataFile)
		if err != nil {
			log.Fatal("Failed to load data file: ", err)
		}
		log.Printf("Loaded %d records from %s (skipped %d rows, coerced %d cells)",
			len(defaultDataset.Records), cfg.DataFile, defaultDataset.SkippedRows, defaultDataset.CoercedCells)
		metricRecordsLoaded.Set(float64(len(defaultDataset.Records)))
	}

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	// Routes
	r.POST("/api/upload-csv", uploadCSV)
	r.GET("/api/records", getRecords)
	r.GET("/api/dimensions", getDimensions)
	r.GET("/api/summary", getSummary)
	r.GET("/api/summary/employees", getEmployeeSummaries)
	r.GET("/api/summary/projects", getProjectSummaries)
	r.GET("/api/summary/clients", getClientSummaries)
	r.GET("/api/summary/categories", getCategorySummaries)
	r.GET("/api/summary/months", getMonthlySummaries)
	r.GET("/api/summary/days", getDailySummaries)
	r.GET("/api/periods/:period", getPeriodActivity)
	r.GET("/api/compliance", getCompliance)
	r.POST("/api/chat", askQuestion)
	r.GET("/api/chat/history", getChatHistory)
	r.GET("/api/export/csv", exportCSV)
	r.GET("/api/export/xlsx", exportXLSX)
	r.POST("/api/sessions", createSession)
	r.GET("/api/sessions/:id", getSession)
	r.DELETE("/api/sessions/:id", deleteSession)
	r.GET("/api/health", healthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Server starting on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"sessions":    sessions.Count(),
		"data_loaded": defaultDataset != nil,
	})
}
