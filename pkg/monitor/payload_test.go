package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

func TestNormalizePayload(t *testing.T) {
	now := time.Now()
	log := logger.WithComponent("test")

	t.Run("full payload", func(t *testing.T) {
		ts := now.Add(-time.Minute).UTC().Truncate(time.Second)

		payload := map[string]any{
			"voltage":         12.6,
			"soc":             90.0,
			"soh":             95.0,
			"status":          "good",
			"recommendation":  "keep driving",
			"estimated_hours": 120.0,
			"battery_type":    "Lead-Acid",
			"timestamp":       ts.Format(time.RFC3339),
			"metadata":        map[string]any{"firmware": "1.2.0"},
		}

		record := normalizePayload("car1", payload, now, log)

		assert.Equal(t, "car1", record.VehicleID)
		assert.Equal(t, 12.6, record.Voltage)
		assert.Equal(t, 90.0, record.StateOfCharge)
		assert.Equal(t, 95.0, record.StateOfHealth)
		assert.Equal(t, models.StatusGood, record.Status)
		assert.Equal(t, "keep driving", record.Recommendation)
		require.NotNil(t, record.EstimatedHours)
		assert.Equal(t, 120.0, *record.EstimatedHours)
		assert.Equal(t, "Lead-Acid", record.BatteryType)
		assert.True(t, record.Timestamp.Equal(ts))
		assert.Equal(t, "1.2.0", record.Metadata["firmware"])
	})

	t.Run("empty payload gets usable defaults", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{}, now, log)

		assert.Zero(t, record.Voltage)
		assert.Zero(t, record.StateOfCharge)
		assert.Zero(t, record.StateOfHealth)
		assert.Nil(t, record.EstimatedHours)
		assert.True(t, record.Timestamp.Equal(now))
		assert.Equal(t, models.StatusDead, record.Status)
	})

	t.Run("missing status derived from voltage", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{
			"voltage":      11.8,
			"battery_type": "Lead-Acid",
		}, now, log)

		assert.Equal(t, models.StatusWeak, record.Status)
		assert.Equal(t, "Battery weakening, plan replacement", record.Recommendation)
	})

	t.Run("unrecognized status maps to unknown", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{
			"voltage": 12.6,
			"status":  "excellent",
		}, now, log)

		assert.Equal(t, models.StatusUnknown, record.Status)
	})

	t.Run("bad timestamp falls back to ingest time", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{
			"voltage":   12.6,
			"timestamp": "yesterday",
		}, now, log)

		assert.True(t, record.Timestamp.Equal(now))
	})

	t.Run("non-numeric voltage defaults to zero", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{
			"voltage": "12.6",
		}, now, log)

		assert.Zero(t, record.Voltage)
	})

	t.Run("9v battery status uses its profile", func(t *testing.T) {
		record := normalizePayload("car1", map[string]any{
			"voltage":      7.0,
			"battery_type": "9V Alkaline",
		}, now, log)

		assert.Equal(t, models.StatusWeak, record.Status)
	})
}
