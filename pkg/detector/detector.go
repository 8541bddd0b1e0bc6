// Package detector evaluates battery alert rules for each ingested health
// record. Evaluation is a pure function over immutable snapshots of the
// vehicle's history and recent alerts, so every rule is testable without
// the surrounding service.
package detector

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

const (
	// Absolute floor below which a battery is end-of-life regardless of
	// class, with a recovery margin re-arming the alert.
	disposeVoltage        = 4.5
	disposeRecoveryMargin = 0.2
	disposeReason         = "absolute_dispose_<=4_5V"

	socCritical = 10.0
	socLow      = 25.0

	sohDegraded = 70.0
	sohSevere   = 60.0

	swapReason     = "swap_detected"
	swapGap        = 2 * time.Minute
	swapGoodMargin = 0.5
	swapLowVoltage = 5.0
	swapDebounce   = 15 * time.Second

	dropWindow    = 30 * time.Second
	dropThreshold = 1.0
	dropDebounce  = 30 * time.Second

	lowDebounce    = 30 * time.Minute
	healthDebounce = 24 * time.Hour
)

// Detector runs the alert rules. It keeps no per-vehicle state: debounce
// and hysteresis decisions are read back out of the recent-alert snapshot
// passed to each evaluation.
type Detector struct {
	seq atomic.Uint64
	log zerolog.Logger
}

func New() *Detector {
	return &Detector{
		log: logger.WithComponent("detector"),
	}
}

// Evaluate runs every rule against the newly ingested record. prior holds
// the vehicle's earlier records in append order (the new record excluded);
// recent holds the vehicle's existing alerts, newest first. The returned
// alerts are ready to append to the ledger; there are no error conditions.
func (d *Detector) Evaluate(
	record models.BatteryHealth,
	prior []models.BatteryHealth,
	recent []models.Alert,
	now time.Time,
) []models.Alert {
	profile := ProfileFor(record.BatteryType)

	alerts := make([]models.Alert, 0, 2)

	// Voltage/SOC tier: first matching branch wins. A record at or below
	// the disposal floor stays in the disposal branch even when hysteresis
	// suppresses emission.
	switch {
	case record.Voltage <= disposeVoltage:
		if alert, ok := d.checkDisposal(record, prior, recent, now); ok {
			alerts = append(alerts, alert)
		}
	case record.Voltage <= profile.CriticalVoltage || record.StateOfCharge <= socCritical:
		alerts = append(alerts, d.criticalAlert(record, profile, now))
	case record.Voltage <= profile.LowVoltage || record.StateOfCharge <= socLow:
		if alert, ok := d.checkLow(record, profile, recent, now); ok {
			alerts = append(alerts, alert)
		}
	}

	if alert, ok := d.checkHealthDegradation(record, recent, now); ok {
		alerts = append(alerts, alert)
	}

	// Swap detection runs before the generic drop rule but does not
	// suppress it; both may fire on the same transition.
	if alert, ok := d.checkSwap(record, profile, prior, recent, now); ok {
		alerts = append(alerts, alert)
	}

	if alert, ok := d.checkSuddenDrop(record, prior, recent, now); ok {
		alerts = append(alerts, alert)
	}

	return alerts
}

// checkDisposal fires the end-of-life alert. Re-firing is suppressed while
// an earlier disposal alert exists, unless some record after that alert
// rose past the recovery margin.
func (d *Detector) checkDisposal(
	record models.BatteryHealth,
	prior []models.BatteryHealth,
	recent []models.Alert,
	now time.Time,
) (models.Alert, bool) {
	if last, ok := latestWithReason(recent, disposeReason); ok {
		recovered := false

		for _, rec := range prior {
			if rec.Timestamp.After(last.Timestamp) && rec.Voltage > disposeVoltage+disposeRecoveryMargin {
				recovered = true
				break
			}
		}

		if !recovered {
			d.log.Debug().
				Str("vehicle_id", record.VehicleID).
				Float64("voltage", record.Voltage).
				Msg("disposal alert suppressed by hysteresis")

			return models.Alert{}, false
		}
	}

	alert := d.newAlert(record.VehicleID, models.AlertBatteryLow, models.SeverityCritical,
		"Battery depleted",
		fmt.Sprintf("Battery for %s is at %.2fV, below the %.1fV disposal floor. Replace and dispose of it.",
			record.VehicleID, record.Voltage, disposeVoltage),
		now,
		map[string]any{
			"reason":       disposeReason,
			"voltage":      record.Voltage,
			"soc":          record.StateOfCharge,
			"battery_type": record.BatteryType,
		})

	return alert, true
}

// criticalAlert fires on every qualifying record; there is no debounce at
// this tier.
func (d *Detector) criticalAlert(record models.BatteryHealth, profile Profile, now time.Time) models.Alert {
	return d.newAlert(record.VehicleID, models.AlertBatteryLow, models.SeverityCritical,
		"Battery critical",
		fmt.Sprintf("Battery for %s is critically low: %.2fV, %.0f%% charge (%s class).",
			record.VehicleID, record.Voltage, record.StateOfCharge, profile.Name),
		now,
		map[string]any{
			"voltage":            record.Voltage,
			"soc":                record.StateOfCharge,
			"battery_type":       record.BatteryType,
			"critical_threshold": profile.CriticalVoltage,
		})
}

func (d *Detector) checkLow(
	record models.BatteryHealth,
	profile Profile,
	recent []models.Alert,
	now time.Time,
) (models.Alert, bool) {
	if hasTypeSince(recent, models.AlertBatteryLow, now.Add(-lowDebounce)) {
		return models.Alert{}, false
	}

	alert := d.newAlert(record.VehicleID, models.AlertBatteryLow, models.SeverityWarning,
		"Battery low",
		fmt.Sprintf("Battery for %s is low: %.2fV, %.0f%% charge (%s class).",
			record.VehicleID, record.Voltage, record.StateOfCharge, profile.Name),
		now,
		map[string]any{
			"voltage":       record.Voltage,
			"soc":           record.StateOfCharge,
			"battery_type":  record.BatteryType,
			"low_threshold": profile.LowVoltage,
		})

	return alert, true
}

func (d *Detector) checkHealthDegradation(
	record models.BatteryHealth,
	recent []models.Alert,
	now time.Time,
) (models.Alert, bool) {
	if record.StateOfHealth > sohDegraded {
		return models.Alert{}, false
	}

	if hasTypeSince(recent, models.AlertHealthDegradation, now.Add(-healthDebounce)) {
		return models.Alert{}, false
	}

	severity := models.SeverityInfo
	if record.StateOfHealth < sohSevere {
		severity = models.SeverityWarning
	}

	alert := d.newAlert(record.VehicleID, models.AlertHealthDegradation, severity,
		"Battery health degraded",
		fmt.Sprintf("Battery health for %s is at %.1f%%. Consider replacement.",
			record.VehicleID, record.StateOfHealth),
		now,
		map[string]any{
			"soh":          record.StateOfHealth,
			"battery_type": record.BatteryType,
		})

	return alert, true
}

// checkSwap looks for a good-to-very-low transition inside a short gap,
// the signature of the pack being physically swapped while the sensor
// stayed connected.
func (d *Detector) checkSwap(
	record models.BatteryHealth,
	profile Profile,
	prior []models.BatteryHealth,
	recent []models.Alert,
	now time.Time,
) (models.Alert, bool) {
	if record.Voltage > swapLowVoltage {
		return models.Alert{}, false
	}

	goodVoltage := profile.LowVoltage + swapGoodMargin

	var previous *models.BatteryHealth

	for i := len(prior) - 1; i >= 0; i-- {
		rec := prior[i]

		gap := record.Timestamp.Sub(rec.Timestamp)
		if gap < 0 || gap > swapGap {
			continue
		}

		if rec.Voltage >= goodVoltage {
			previous = &rec
			break
		}
	}

	if previous == nil {
		return models.Alert{}, false
	}

	if hasReasonSince(recent, swapReason, now.Add(-swapDebounce)) {
		return models.Alert{}, false
	}

	alert := d.newAlert(record.VehicleID, models.AlertSuddenDrop, models.SeverityCritical,
		"Battery swap detected",
		fmt.Sprintf("Voltage for %s fell from %.2fV to %.2fV within %s; the battery was likely swapped.",
			record.VehicleID, previous.Voltage, record.Voltage, swapGap),
		now,
		map[string]any{
			"reason":           swapReason,
			"previous_voltage": previous.Voltage,
			"current_voltage":  record.Voltage,
			"good_threshold":   goodVoltage,
			"low_threshold":    swapLowVoltage,
			"gap_seconds":      swapGap.Seconds(),
		})

	return alert, true
}

// checkSuddenDrop compares the current voltage against the earliest prior
// sample inside the lookback window, falling back to the immediately
// previous sample when the window is empty.
func (d *Detector) checkSuddenDrop(
	record models.BatteryHealth,
	prior []models.BatteryHealth,
	recent []models.Alert,
	now time.Time,
) (models.Alert, bool) {
	if len(prior) == 0 {
		return models.Alert{}, false
	}

	windowStart := record.Timestamp.Add(-dropWindow)

	previous := prior[len(prior)-1]

	for _, rec := range prior {
		if rec.Timestamp.After(windowStart) {
			previous = rec
			break
		}
	}

	drop := previous.Voltage - record.Voltage
	if drop < dropThreshold {
		return models.Alert{}, false
	}

	if hasTypeSince(recent, models.AlertSuddenDrop, now.Add(-dropDebounce)) {
		return models.Alert{}, false
	}

	alert := d.newAlert(record.VehicleID, models.AlertSuddenDrop, models.SeverityCritical,
		"Sudden voltage drop",
		fmt.Sprintf("Voltage for %s dropped %.2fV (from %.2fV to %.2fV) within %.0fs.",
			record.VehicleID, drop, previous.Voltage, record.Voltage, dropWindow.Seconds()),
		now,
		map[string]any{
			"from_voltage":   previous.Voltage,
			"to_voltage":     record.Voltage,
			"drop":           drop,
			"window_seconds": dropWindow.Seconds(),
		})

	return alert, true
}

func (d *Detector) newAlert(
	vehicleID string,
	alertType models.AlertType,
	severity models.AlertSeverity,
	title, message string,
	now time.Time,
	data map[string]any,
) models.Alert {
	d.log.Info().
		Str("vehicle_id", vehicleID).
		Str("type", string(alertType)).
		Str("severity", string(severity)).
		Msg(title)

	// The sequence keeps IDs unique when two rules fire on the same record.
	return models.Alert{
		ID:        fmt.Sprintf("%s-%s-%d-%d", vehicleID, alertType, now.UnixNano(), d.seq.Add(1)),
		VehicleID: vehicleID,
		Type:      alertType,
		Severity:  severity,
		Title:     title,
		Message:   message,
		Timestamp: now,
		Data:      data,
	}
}

// hasTypeSince reports whether any alert of the given type was created
// after the since instant.
func hasTypeSince(alerts []models.Alert, alertType models.AlertType, since time.Time) bool {
	for i := range alerts {
		if alerts[i].Type == alertType && alerts[i].Timestamp.After(since) {
			return true
		}
	}

	return false
}

// hasReasonSince reports whether any alert tagged with the given reason was
// created after the since instant.
func hasReasonSince(alerts []models.Alert, reason string, since time.Time) bool {
	for i := range alerts {
		if alerts[i].Reason() == reason && alerts[i].Timestamp.After(since) {
			return true
		}
	}

	return false
}

// latestWithReason returns the newest alert tagged with the given reason.
func latestWithReason(alerts []models.Alert, reason string) (models.Alert, bool) {
	var (
		latest models.Alert
		found  bool
	)

	for i := range alerts {
		if alerts[i].Reason() != reason {
			continue
		}

		if !found || alerts[i].Timestamp.After(latest.Timestamp) {
			latest = alerts[i]
			found = true
		}
	}

	return latest, found
}
