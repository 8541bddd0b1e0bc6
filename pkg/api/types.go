// pkg/api/types.go

package api

import "time"

// SystemStatus summarizes the whole fleet for the dashboard landing call.
// ActiveAlertVehicles counts vehicles with at least one unread critical
// alert.
type SystemStatus struct {
	TotalVehicles       int       `json:"total_vehicles"`
	ActiveAlertVehicles int       `json:"active_alert_vehicles"`
	UnreadAlerts        int       `json:"unread_alerts"`
	LastUpdate          time.Time `json:"last_update"`
}

// UnreadCountResponse wraps the unread alert counter.
type UnreadCountResponse struct {
	VehicleID string `json:"vehicle_id,omitempty"`
	Count     int    `json:"count"`
}
