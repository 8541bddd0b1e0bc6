// Package monitor binds the history buffers, analytics engine, alert
// detector and alert ledger behind the public ingestion and query API.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/analytics"
	"github.com/voltradar/voltradar/pkg/detector"
	"github.com/voltradar/voltradar/pkg/history"
	"github.com/voltradar/voltradar/pkg/ledger"
	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/metrics"
	"github.com/voltradar/voltradar/pkg/models"
)

const (
	DefaultRetention       = 7 * 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	MaxHistoryEntries int
	MaxAlerts         int
	Retention         time.Duration
	CleanupInterval   time.Duration
	Recorder          Recorder
}

// Service is the single root owner of all per-vehicle state. Constructed
// once per process; external callers only observe through read-only queries
// and subscriptions.
type Service struct {
	histories *history.Manager
	detector  *detector.Detector
	ledger    *ledger.Ledger
	stream    *healthStream
	recorder  Recorder

	retention       time.Duration
	cleanupInterval time.Duration

	ingestMu    sync.Mutex
	ingestLocks map[string]*sync.Mutex

	stopCh chan struct{}
	log    zerolog.Logger
}

// NewService wires the per-vehicle registry, detector and ledger together.
func NewService(opts Options) *Service {
	if opts.Retention <= 0 {
		opts.Retention = DefaultRetention
	}

	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}

	log := logger.WithComponent("monitor")

	return &Service{
		histories:       history.NewManager(opts.MaxHistoryEntries),
		detector:        detector.New(),
		ledger:          ledger.NewLedger(opts.MaxAlerts),
		stream:          newHealthStream(log),
		recorder:        opts.Recorder,
		retention:       opts.Retention,
		cleanupInterval: opts.CleanupInterval,
		ingestLocks:     make(map[string]*sync.Mutex),
		stopCh:          make(chan struct{}),
		log:             log,
	}
}

// Start launches the periodic retention cleanup. Satisfies
// lifecycle.Service.
func (s *Service) Start(ctx context.Context) error {
	go s.cleanupLoop(ctx)

	s.log.Info().
		Dur("retention", s.retention).
		Dur("cleanup_interval", s.cleanupInterval).
		Msg("monitor service started")

	return nil
}

// Stop halts the cleanup loop and closes all health-stream subscriptions.
func (s *Service) Stop(_ context.Context) error {
	close(s.stopCh)
	s.stream.closeAll()

	return nil
}

// Ingest normalizes a decoded transport payload, appends it to the
// vehicle's history, runs the alert rules and notifies subscribers. It
// never fails outward: malformed payloads are normalized with defaults and
// an empty vehicle ID makes the call a no-op. Concurrent calls for the
// same vehicle are serialized so the alert rules always see the alerts
// emitted by earlier records.
func (s *Service) Ingest(vehicleID string, payload map[string]any) {
	if vehicleID == "" {
		s.log.Warn().Msg("ingest without vehicle id dropped")
		return
	}

	lock := s.ingestLock(vehicleID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	record := normalizePayload(vehicleID, payload, now, s.log)

	prior := s.histories.Snapshot(vehicleID)
	s.histories.Append(vehicleID, record)

	metrics.IngestedRecords.WithLabelValues(vehicleID).Inc()
	metrics.TrackedVehicles.Set(float64(s.histories.ActiveVehicles()))

	alerts := s.detector.Evaluate(record, prior, s.ledger.Query(vehicleID), now)
	for _, alert := range alerts {
		s.ledger.Append(alert)
		metrics.AlertsEmitted.WithLabelValues(string(alert.Type), string(alert.Severity)).Inc()

		if s.recorder != nil {
			if err := s.recorder.RecordAlert(context.Background(), alert); err != nil {
				s.log.Warn().Err(err).Str("alert_id", alert.ID).Msg("alert write-through failed")
			}
		}
	}

	if s.recorder != nil {
		if err := s.recorder.RecordHealth(context.Background(), record); err != nil {
			s.log.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("health write-through failed")
		}
	}

	s.stream.publish(record)
}

// ingestLock returns the mutex guarding ingestion for one vehicle.
func (s *Service) ingestLock(vehicleID string) *sync.Mutex {
	s.ingestMu.Lock()
	defer s.ingestMu.Unlock()

	lock, ok := s.ingestLocks[vehicleID]
	if !ok {
		lock = &sync.Mutex{}
		s.ingestLocks[vehicleID] = lock
	}

	return lock
}

// CurrentHealth returns the latest record for a vehicle, or false when the
// vehicle has no data.
func (s *Service) CurrentHealth(vehicleID string) (models.BatteryHealth, bool) {
	return s.histories.Latest(vehicleID)
}

// History returns the vehicle's records in chronological order. A positive
// limit keeps only the most recent records, still chronologically ordered.
func (s *Service) History(vehicleID string, limit int) []models.BatteryHealth {
	records := s.histories.Snapshot(vehicleID)

	if limit > 0 && len(records) > limit {
		records = records[len(records)-limit:]
	}

	return records
}

// Analytics computes aggregates over the vehicle's history window ending
// now. A zero period uses the 24h default.
func (s *Service) Analytics(vehicleID string, period time.Duration) models.BatteryAnalytics {
	return analytics.Compute(s.histories.Snapshot(vehicleID), period, time.Now())
}

// Vehicles lists the vehicle IDs seen so far.
func (s *Service) Vehicles() []string {
	return s.histories.Vehicles()
}

// Alerts returns the ledger snapshot, newest first, optionally scoped to
// one vehicle.
func (s *Service) Alerts(vehicleID string) []models.Alert {
	return s.ledger.Query(vehicleID)
}

func (s *Service) UnreadCount(vehicleID string) int {
	return s.ledger.UnreadCount(vehicleID)
}

func (s *Service) MarkRead(id string) {
	s.ledger.MarkRead(id)
}

func (s *Service) MarkAllRead(vehicleID string) {
	s.ledger.MarkAllRead(vehicleID)
}

func (s *Service) ClearAlerts(vehicleID string) {
	s.ledger.Clear(vehicleID)
}

// ClearHistory empties one vehicle's history buffer.
func (s *Service) ClearHistory(vehicleID string) {
	s.histories.Clear(vehicleID)
}

// ClearAllHistory empties every vehicle's history buffer.
func (s *Service) ClearAllHistory() {
	s.histories.ClearAll()
}

// ResetAnalyticsWindow prunes every vehicle's history to records newer than
// now-keep. keep=0 clears everything.
func (s *Service) ResetAnalyticsWindow(keep time.Duration) {
	if keep <= 0 {
		s.histories.ClearAll()
		return
	}

	removed := s.histories.PruneAll(time.Now().Add(-keep))

	s.log.Info().
		Dur("keep", keep).
		Int("removed", removed).
		Msg("analytics window reset")
}

// SubscribeHealth registers for a vehicle's future health updates. The
// cached current health, when present, is delivered immediately so a late
// subscriber starts with the latest state.
func (s *Service) SubscribeHealth(vehicleID string) (<-chan models.BatteryHealth, func()) {
	var initial *models.BatteryHealth

	if current, ok := s.histories.Latest(vehicleID); ok {
		initial = &current
	}

	return s.stream.subscribe(vehicleID, initial)
}

// SubscribeAlerts registers for full ledger snapshots after each mutation.
func (s *Service) SubscribeAlerts() (<-chan []models.Alert, func()) {
	return s.ledger.Subscribe()
}

// cleanupLoop prunes histories, the ledger and the write-through sink to
// the retention window once per tick. Failures log and retry next tick.
func (s *Service) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.runCleanup(ctx)
		}
	}
}

func (s *Service) runCleanup(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)

	prunedRecords := s.histories.PruneAll(cutoff)
	prunedAlerts := s.ledger.PruneOlderThan(cutoff)

	if s.recorder != nil {
		if err := s.recorder.CleanOldData(ctx, s.retention); err != nil {
			s.log.Warn().Err(err).Msg("write-through cleanup failed")
		}
	}

	s.log.Debug().
		Int("pruned_records", prunedRecords).
		Int("pruned_alerts", prunedAlerts).
		Msg("retention cleanup complete")
}
