package domain

import (
	"time"
)

// CoverageStats agrega os totais da tabela analítica
type CoverageStats struct {
	EarliestDate     *time.Time `json:"earliest_date"`
	LatestDate       *time.Time `json:"latest_date"`
	TotalDays        int        `json:"total_days"`
	TotalRows        int64      `json:"total_rows"`
	TotalSpend       float64    `json:"total_spend"`
	TotalImpressions int64      `json:"total_impressions"`
	TotalClicks      int64      `json:"total_clicks"`
}

// StatusReport é o relatório de cobertura exibido pelo comando status
type StatusReport struct {
	TableExists    bool          `json:"table_exists"`
	Stats          CoverageStats `json:"stats"`
	CoveredDates   int           `json:"covered_dates"`
	MissingRanges  []DateRange   `json:"missing_ranges"`
	MonitoredSince time.Time     `json:"monitored_since"`
}
