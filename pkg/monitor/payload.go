// pkg/monitor/payload.go

package monitor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/detector"
	"github.com/voltradar/voltradar/pkg/models"
)

// Recognized payload fields at the transport boundary. Unknown fields are
// only ever carried inside the metadata pass-through, never inspected.
const (
	fieldVoltage        = "voltage"
	fieldSOC            = "soc"
	fieldSOH            = "soh"
	fieldStatus         = "status"
	fieldRecommendation = "recommendation"
	fieldEstimatedHours = "estimated_hours"
	fieldBatteryType    = "battery_type"
	fieldTimestamp      = "timestamp"
	fieldMetadata       = "metadata"
)

// normalizePayload converts a decoded transport payload into a
// BatteryHealth record. Missing numeric fields default to 0, missing enums
// to unknown, missing timestamps to now; the result is always usable and
// normalization never fails.
func normalizePayload(vehicleID string, payload map[string]any, now time.Time, log zerolog.Logger) models.BatteryHealth {
	record := models.BatteryHealth{
		VehicleID: vehicleID,
		Timestamp: now,
	}

	var ok bool

	if record.Voltage, ok = floatField(payload, fieldVoltage); !ok {
		log.Warn().Str("vehicle_id", vehicleID).Msg("payload missing voltage, defaulting to 0")
	}

	record.StateOfCharge, _ = floatField(payload, fieldSOC)
	record.StateOfHealth, _ = floatField(payload, fieldSOH)

	if hours, ok := floatField(payload, fieldEstimatedHours); ok {
		record.EstimatedHours = &hours
	}

	record.BatteryType, _ = stringField(payload, fieldBatteryType)

	if raw, ok := stringField(payload, fieldTimestamp); ok {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			record.Timestamp = ts
		} else {
			log.Warn().
				Str("vehicle_id", vehicleID).
				Str("timestamp", raw).
				Msg("unparseable payload timestamp, using ingest time")
		}
	}

	record.Status = normalizeStatus(payload, record)

	if rec, ok := stringField(payload, fieldRecommendation); ok {
		record.Recommendation = rec
	} else {
		record.Recommendation = detector.RecommendationFor(record.Status)
	}

	if meta, ok := payload[fieldMetadata].(map[string]any); ok {
		record.Metadata = meta
	}

	return record
}

// normalizeStatus parses a supplied status token, deriving one from the
// voltage profile when the payload carries none. Unrecognized tokens map to
// unknown.
func normalizeStatus(payload map[string]any, record models.BatteryHealth) models.BatteryStatus {
	raw, ok := stringField(payload, fieldStatus)
	if !ok {
		return detector.DeriveStatus(record.Voltage, detector.ProfileFor(record.BatteryType))
	}

	switch models.BatteryStatus(raw) {
	case models.StatusFresh, models.StatusGood, models.StatusWeak,
		models.StatusLow, models.StatusDead, models.StatusUnknown:
		return models.BatteryStatus(raw)
	default:
		return models.StatusUnknown
	}
}

// floatField reads a numeric payload field. JSON decoding hands numbers
// over as float64; ints cover hand-built payloads in tests.
func floatField(payload map[string]any, key string) (float64, bool) {
	switch v := payload[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func stringField(payload map[string]any, key string) (string, bool) {
	v, ok := payload[key].(string)
	if !ok || v == "" {
		return "", false
	}

	return v, true
}
