package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters for the operational surface, served on /metrics
var (
	metricUploads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timesheet_uploads_total",
		Help: "Timesheet CSV files uploaded.",
	})

	metricChatQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timesheet_chat_queries_total",
		Help: "Chat questions answered, by routed category.",
	}, []string{"category"})

	metricExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "timesheet_exports_total",
		Help: "Exports served, by format.",
	}, []string{"format"})

	metricRecordsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "timesheet_records_loaded",
		Help: "Records in the most recently uploaded dataset.",
	})
)
