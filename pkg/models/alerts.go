// pkg/models/alerts.go

package models

import "time"

// AlertType identifies the rule family that produced an alert.
type AlertType string

const (
	AlertBatteryLow        AlertType = "batteryLow"
	AlertHealthDegradation AlertType = "healthDegradation"
	AlertSuddenDrop        AlertType = "suddenDrop"
	AlertConnectionLost    AlertType = "connectionLost"
	AlertSensorError       AlertType = "sensorError"
	AlertSystemError       AlertType = "systemError"
)

// AlertSeverity orders alert importance: info < warning < critical.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

var severityRank = map[AlertSeverity]int{
	SeverityInfo:     0,
	SeverityWarning:  1,
	SeverityCritical: 2,
}

// AtLeast reports whether s is at or above the given severity.
func (s AlertSeverity) AtLeast(min AlertSeverity) bool {
	return severityRank[s] >= severityRank[min]
}

// Alert is one emitted alert event. All fields except IsRead are immutable
// after creation; IsRead only ever transitions false -> true.
type Alert struct {
	ID        string         `json:"id"`
	VehicleID string         `json:"vehicle_id"`
	Type      AlertType      `json:"type"`
	Severity  AlertSeverity  `json:"severity"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	IsRead    bool           `json:"is_read"`
	Data      map[string]any `json:"data,omitempty"`
}

// Reason returns the rule provenance tag carried in the alert's data
// payload, or "" when none was recorded.
func (a *Alert) Reason() string {
	if a.Data == nil {
		return ""
	}

	reason, _ := a.Data["reason"].(string)

	return reason
}
