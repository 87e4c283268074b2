package models

import "time"

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// ProductionRecord is the persisted per-device unit counter. Units roll
// over to 0 when the day window expires; see telemetry.IProduction.
type ProductionRecord struct {
	DeviceID  string `gorm:"primaryKey"`
	Units     int
	DayStart  time.Time
	LastWrite time.Time
}

// ProductionLogEntry is one product-scan event. The per-device log is
// capped at the 100 most recent entries.
type ProductionLogEntry struct {
	ID          string `gorm:"primaryKey"`
	DeviceID    string `gorm:"index"`
	ProductID   string
	ProductName string
	Timestamp   time.Time
	HumanTime   string
}

// ThresholdConfig is the saved form of one metric's alert thresholds.
// Nil pointer means "not set"; the in-memory defaults fill the gaps.
type ThresholdConfig struct {
	Metric   string `gorm:"primaryKey"`
	Min      *float64
	Max      *float64
	Warning  *float64
	Critical *float64
}

// Preference is a global scalar setting (selected device, active tab,
// target units) persisted across sessions.
type Preference struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
