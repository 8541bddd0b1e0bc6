// pkg/detector/thresholds.go

package detector

import (
	"strings"

	"github.com/voltradar/voltradar/pkg/models"
)

// Profile holds the voltage thresholds for one battery class. Different
// chemistries sit at different nominal voltages, so the critical/low lines
// depend on the reported battery type.
type Profile struct {
	Name            string
	FreshVoltage    float64
	LowVoltage      float64
	CriticalVoltage float64
}

var (
	profile9V = Profile{
		Name:            "9V",
		FreshVoltage:    9.0,
		LowVoltage:      7.5,
		CriticalVoltage: 6.5,
	}

	profile12V = Profile{
		Name:            "12V",
		FreshVoltage:    12.6,
		LowVoltage:      12.0,
		CriticalVoltage: 11.5,
	}
)

// ProfileFor selects the threshold profile from the battery type string.
// Anything naming a 9V or alkaline pack gets the 9V profile; everything
// else is treated as a 12V automotive battery.
func ProfileFor(batteryType string) Profile {
	t := strings.ToLower(batteryType)

	if strings.Contains(t, "9v") || strings.Contains(t, "alkaline") {
		return profile9V
	}

	return profile12V
}

// DeriveStatus classifies a pack voltage against a profile. Used when the
// ingested payload carries no status of its own. The negative "unavailable"
// sentinel maps to unknown.
func DeriveStatus(voltage float64, profile Profile) models.BatteryStatus {
	switch {
	case voltage < 0:
		return models.StatusUnknown
	case voltage <= disposeVoltage:
		return models.StatusDead
	case voltage <= profile.CriticalVoltage:
		return models.StatusLow
	case voltage <= profile.LowVoltage:
		return models.StatusWeak
	case voltage < profile.FreshVoltage:
		return models.StatusGood
	default:
		return models.StatusFresh
	}
}

// RecommendationFor maps a status to the advice string surfaced to callers.
func RecommendationFor(status models.BatteryStatus) string {
	switch status {
	case models.StatusFresh:
		return "Battery is fresh"
	case models.StatusGood:
		return "Battery in good condition"
	case models.StatusWeak:
		return "Battery weakening, plan replacement"
	case models.StatusLow:
		return "Replace battery soon"
	case models.StatusDead:
		return "Replace battery immediately"
	default:
		return "Battery state unknown"
	}
}
