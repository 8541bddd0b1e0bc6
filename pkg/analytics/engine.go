// Package analytics computes aggregate statistics over battery history
// windows. The engine is pure: it never mutates its input and carries no
// state between calls.
package analytics

import (
	"math"
	"strings"
	"time"

	"github.com/voltradar/voltradar/pkg/models"
)

const (
	// DefaultPeriod is the analytics window when the caller gives none.
	DefaultPeriod = 24 * time.Hour

	// minTrendPoints is the smallest sample count for trend classification.
	minTrendPoints = 10

	// trendMargin is the SOH delta the second half-window must clear.
	trendMargin = 2.0
)

// Compute aggregates the records falling inside the window ending at now.
// An empty window yields a zero-filled result, never an error.
func Compute(records []models.BatteryHealth, period time.Duration, now time.Time) models.BatteryAnalytics {
	if period <= 0 {
		period = DefaultPeriod
	}

	cutoff := now.Add(-period)

	windowed := make([]models.BatteryHealth, 0, len(records))
	for _, rec := range records {
		if rec.Timestamp.After(cutoff) {
			windowed = append(windowed, rec)
		}
	}

	result := models.BatteryAnalytics{
		Trend:      models.TrendStable,
		DataPoints: len(windowed),
		Period:     formatPeriod(period),
	}

	if len(windowed) == 0 {
		return result
	}

	var sumV, sumSOC, sumSOH float64

	minV := windowed[0].Voltage
	maxV := windowed[0].Voltage

	for _, rec := range windowed {
		sumV += rec.Voltage
		sumSOC += rec.StateOfCharge
		sumSOH += rec.StateOfHealth

		if rec.Voltage < minV {
			minV = rec.Voltage
		}

		if rec.Voltage > maxV {
			maxV = rec.Voltage
		}
	}

	n := float64(len(windowed))

	result.AverageVoltage = round(sumV/n, 2)
	result.AverageSOC = round(sumSOC/n, 1)
	result.AverageSOH = round(sumSOH/n, 1)
	result.VoltageRange = models.VoltageRange{Min: minV, Max: maxV}
	result.Trend = classifyTrend(windowed)

	return result
}

// classifyTrend splits the SOH series in half and compares the means.
// Below minTrendPoints the trend is always stable.
func classifyTrend(records []models.BatteryHealth) models.TrendDirection {
	if len(records) < minTrendPoints {
		return models.TrendStable
	}

	half := len(records) / 2

	firstMean := meanSOH(records[:half])
	secondMean := meanSOH(records[half:])

	switch {
	case secondMean > firstMean+trendMargin:
		return models.TrendImproving
	case secondMean < firstMean-trendMargin:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func meanSOH(records []models.BatteryHealth) float64 {
	if len(records) == 0 {
		return 0
	}

	var sum float64
	for _, rec := range records {
		sum += rec.StateOfHealth
	}

	return sum / float64(len(records))
}

func round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// formatPeriod renders a duration label like "24h" or "30m" without the
// zero-valued trailing units time.Duration.String produces.
func formatPeriod(period time.Duration) string {
	s := period.String()

	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}

	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}

	return s
}
