// Package metrics registers the Prometheus instruments exposed on the
// /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// IngestedRecords counts health records accepted per vehicle.
	IngestedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltradar_ingested_records_total",
			Help: "Total number of battery health records ingested.",
		},
		[]string{"vehicle_id"},
	)

	// AlertsEmitted counts alerts appended to the ledger.
	AlertsEmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltradar_alerts_emitted_total",
			Help: "Total number of alerts emitted by the detector.",
		},
		[]string{"type", "severity"},
	)

	// DecodeFailures counts transport payloads that failed to decode.
	DecodeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "voltradar_ingest_decode_failures_total",
			Help: "Total number of transport payloads dropped as undecodable.",
		},
	)

	// TrackedVehicles reports how many vehicles have a history buffer.
	TrackedVehicles = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "voltradar_tracked_vehicles",
			Help: "Number of vehicles with battery history.",
		},
	)
)

func init() {
	prometheus.MustRegister(IngestedRecords)
	prometheus.MustRegister(AlertsEmitted)
	prometheus.MustRegister(DecodeFailures)
	prometheus.MustRegister(TrackedVehicles)
}
