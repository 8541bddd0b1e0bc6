package api

import (
	"time"

	"github.com/voltradar/voltradar/pkg/models"
)

//go:generate mockgen -destination=mock_api.go -package=api github.com/voltradar/voltradar/pkg/api Monitor

// Monitor is the slice of the monitor service the HTTP API consumes.
type Monitor interface {
	Vehicles() []string
	CurrentHealth(vehicleID string) (models.BatteryHealth, bool)
	History(vehicleID string, limit int) []models.BatteryHealth
	Analytics(vehicleID string, period time.Duration) models.BatteryAnalytics
	Alerts(vehicleID string) []models.Alert
	UnreadCount(vehicleID string) int
	MarkRead(id string)
	MarkAllRead(vehicleID string)
	ClearAlerts(vehicleID string)
	ClearHistory(vehicleID string)
	ClearAllHistory()
	ResetAnalyticsWindow(keep time.Duration)
	SubscribeHealth(vehicleID string) (<-chan models.BatteryHealth, func())
	SubscribeAlerts() (<-chan []models.Alert, func())
}
