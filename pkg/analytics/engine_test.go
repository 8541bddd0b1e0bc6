package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voltradar/voltradar/pkg/models"
)

func sample(voltage, soc, soh float64, ts time.Time) models.BatteryHealth {
	return models.BatteryHealth{
		VehicleID:     "car1",
		Voltage:       voltage,
		StateOfCharge: soc,
		StateOfHealth: soh,
		Timestamp:     ts,
	}
}

func TestComputeEmptyWindow(t *testing.T) {
	now := time.Now()

	t.Run("no records at all", func(t *testing.T) {
		got := Compute(nil, time.Hour, now)

		assert.Equal(t, 0, got.DataPoints)
		assert.Equal(t, models.TrendStable, got.Trend)
		assert.Zero(t, got.AverageVoltage)
		assert.Equal(t, "1h", got.Period)
	})

	t.Run("all records older than the window", func(t *testing.T) {
		records := []models.BatteryHealth{
			sample(12.6, 90, 95, now.Add(-2*time.Hour)),
		}

		got := Compute(records, time.Hour, now)

		assert.Equal(t, 0, got.DataPoints)
		assert.Zero(t, got.AverageVoltage)
	})

	t.Run("record exactly at the cutoff is excluded", func(t *testing.T) {
		records := []models.BatteryHealth{
			sample(12.6, 90, 95, now.Add(-time.Hour)),
		}

		got := Compute(records, time.Hour, now)

		assert.Equal(t, 0, got.DataPoints)
	})
}

func TestComputeAverages(t *testing.T) {
	now := time.Now()

	records := []models.BatteryHealth{
		sample(12.6, 90, 95, now.Add(-3*time.Minute)),
		sample(12.4, 85, 94, now.Add(-2*time.Minute)),
		sample(12.2, 80, 93, now.Add(-time.Minute)),
	}

	got := Compute(records, time.Hour, now)

	assert.Equal(t, 3, got.DataPoints)
	assert.InDelta(t, 12.4, got.AverageVoltage, 0.001)
	assert.InDelta(t, 85.0, got.AverageSOC, 0.001)
	assert.InDelta(t, 94.0, got.AverageSOH, 0.001)
	assert.Equal(t, 12.2, got.VoltageRange.Min)
	assert.Equal(t, 12.6, got.VoltageRange.Max)
}

func TestComputeRounding(t *testing.T) {
	now := time.Now()

	records := []models.BatteryHealth{
		sample(12.611, 85.55, 93.33, now.Add(-2*time.Minute)),
		sample(12.622, 85.56, 93.38, now.Add(-time.Minute)),
	}

	got := Compute(records, time.Hour, now)

	// Voltage to two decimals, soc and soh to one.
	assert.InDelta(t, 12.62, got.AverageVoltage, 0.0001)
	assert.InDelta(t, 85.6, got.AverageSOC, 0.0001)
	assert.InDelta(t, 93.4, got.AverageSOH, 0.0001)
}

func TestComputeDefaultPeriod(t *testing.T) {
	now := time.Now()

	records := []models.BatteryHealth{
		sample(12.6, 90, 95, now.Add(-23*time.Hour)),
		sample(12.4, 88, 94, now.Add(-25*time.Hour)),
	}

	got := Compute(records, 0, now)

	assert.Equal(t, "24h", got.Period)
	assert.Equal(t, 1, got.DataPoints)
}

func TestClassifyTrend(t *testing.T) {
	now := time.Now()

	series := func(sohs []float64) []models.BatteryHealth {
		records := make([]models.BatteryHealth, 0, len(sohs))

		for i, soh := range sohs {
			ts := now.Add(-time.Duration(len(sohs)-i) * time.Minute)
			records = append(records, sample(12.5, 90, soh, ts))
		}

		return records
	}

	t.Run("too few points is always stable", func(t *testing.T) {
		sohs := []float64{90, 80, 70, 60, 50, 40, 30, 20, 10}
		got := Compute(series(sohs), time.Hour, now)

		assert.Equal(t, models.TrendStable, got.Trend)
	})

	t.Run("improving", func(t *testing.T) {
		sohs := make([]float64, 0, 24)
		for i := 0; i < 12; i++ {
			sohs = append(sohs, 80)
		}
		for i := 0; i < 12; i++ {
			sohs = append(sohs, 90)
		}

		got := Compute(series(sohs), time.Hour, now)
		assert.Equal(t, models.TrendImproving, got.Trend)
	})

	t.Run("linear recovery", func(t *testing.T) {
		sohs := make([]float64, 0, 24)
		for i := 0; i < 24; i++ {
			sohs = append(sohs, 25+10*float64(i)/23)
		}

		got := Compute(series(sohs), time.Hour, now)
		assert.Equal(t, models.TrendImproving, got.Trend)
	})

	t.Run("declining", func(t *testing.T) {
		sohs := make([]float64, 0, 24)
		for i := 0; i < 12; i++ {
			sohs = append(sohs, 90)
		}
		for i := 0; i < 12; i++ {
			sohs = append(sohs, 80)
		}

		got := Compute(series(sohs), time.Hour, now)
		assert.Equal(t, models.TrendDeclining, got.Trend)
	})

	t.Run("inside the margin is stable", func(t *testing.T) {
		sohs := make([]float64, 0, 20)
		for i := 0; i < 10; i++ {
			sohs = append(sohs, 90)
		}
		for i := 0; i < 10; i++ {
			sohs = append(sohs, 91.5)
		}

		got := Compute(series(sohs), time.Hour, now)
		assert.Equal(t, models.TrendStable, got.Trend)
	})

	t.Run("odd count puts the extra point in the second half", func(t *testing.T) {
		// 11 points: first half is 5, second half is 6.
		sohs := []float64{80, 80, 80, 80, 80, 90, 90, 90, 90, 90, 90}

		got := Compute(series(sohs), time.Hour, now)
		assert.Equal(t, models.TrendImproving, got.Trend)
	})
}

func TestFormatPeriod(t *testing.T) {
	tests := []struct {
		period time.Duration
		want   string
	}{
		{24 * time.Hour, "24h"},
		{time.Hour, "1h"},
		{30 * time.Minute, "30m"},
		{90 * time.Second, "1m30s"},
		{7 * 24 * time.Hour, "168h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPeriod(tt.period))
		})
	}
}
