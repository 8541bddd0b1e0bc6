// pkg/models/health.go

package models

import "time"

// BatteryStatus classifies the condition of a battery pack.
type BatteryStatus string

const (
	StatusFresh   BatteryStatus = "fresh"
	StatusGood    BatteryStatus = "good"
	StatusWeak    BatteryStatus = "weak"
	StatusLow     BatteryStatus = "low"
	StatusDead    BatteryStatus = "dead"
	StatusUnknown BatteryStatus = "unknown"
)

// BatteryHealth is a single health snapshot for one vehicle's battery.
// Instances are treated as immutable after construction.
type BatteryHealth struct {
	VehicleID      string         `json:"vehicle_id"`
	Voltage        float64        `json:"voltage"`
	StateOfCharge  float64        `json:"soc"`
	StateOfHealth  float64        `json:"soh"`
	Status         BatteryStatus  `json:"status"`
	Recommendation string         `json:"recommendation"`
	EstimatedHours *float64       `json:"estimated_hours,omitempty"`
	BatteryType    string         `json:"battery_type"`
	Timestamp      time.Time      `json:"timestamp"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// TrendDirection labels the state-of-health trend over an analytics window.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// VoltageRange holds the observed min/max voltage over a window.
type VoltageRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BatteryAnalytics is the aggregate view over one vehicle's history window.
type BatteryAnalytics struct {
	AverageVoltage float64        `json:"average_voltage"`
	AverageSOC     float64        `json:"average_soc"`
	AverageSOH     float64        `json:"average_soh"`
	VoltageRange   VoltageRange   `json:"voltage_range"`
	Trend          TrendDirection `json:"trend"`
	DataPoints     int            `json:"data_points"`
	Period         string         `json:"period"`
}
