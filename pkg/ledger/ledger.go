// Package ledger holds the bounded, newest-first collection of emitted
// alerts with read tracking and broadcast-on-change notification.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

const DefaultMaxAlerts = 100

// Ledger stores alerts newest-first and fans the full snapshot out to
// subscribers after every mutation. Created once at service start and kept
// for the service's lifetime.
type Ledger struct {
	mu          sync.RWMutex
	alerts      []models.Alert // newest first
	maxAlerts   int
	subscribers map[string]chan []models.Alert
	log         zerolog.Logger
}

// NewLedger creates a Ledger holding at most maxAlerts entries.
func NewLedger(maxAlerts int) *Ledger {
	if maxAlerts <= 0 {
		maxAlerts = DefaultMaxAlerts
	}

	return &Ledger{
		alerts:      make([]models.Alert, 0, maxAlerts),
		maxAlerts:   maxAlerts,
		subscribers: make(map[string]chan []models.Alert),
		log:         logger.WithComponent("ledger"),
	}
}

// Append inserts the alert at the head, evicting from the tail when the
// ledger is at capacity.
func (l *Ledger) Append(alert models.Alert) {
	l.mu.Lock()

	l.alerts = append([]models.Alert{alert}, l.alerts...)
	if len(l.alerts) > l.maxAlerts {
		l.alerts = l.alerts[:l.maxAlerts]
	}

	l.mu.Unlock()

	l.broadcast()
}

// MarkRead sets the matching alert's read flag. No-op when the id is
// unknown.
func (l *Ledger) MarkRead(id string) {
	l.mu.Lock()

	for i := range l.alerts {
		if l.alerts[i].ID == id {
			l.alerts[i].IsRead = true
			break
		}
	}

	l.mu.Unlock()

	l.broadcast()
}

// MarkAllRead flags every alert as read, scoped to one vehicle when
// vehicleID is non-empty. Idempotent.
func (l *Ledger) MarkAllRead(vehicleID string) {
	l.mu.Lock()

	for i := range l.alerts {
		if vehicleID == "" || l.alerts[i].VehicleID == vehicleID {
			l.alerts[i].IsRead = true
		}
	}

	l.mu.Unlock()

	l.broadcast()
}

// Clear removes every alert, scoped to one vehicle when vehicleID is
// non-empty.
func (l *Ledger) Clear(vehicleID string) {
	l.mu.Lock()

	if vehicleID == "" {
		l.alerts = l.alerts[:0]
	} else {
		kept := l.alerts[:0]

		for _, alert := range l.alerts {
			if alert.VehicleID != vehicleID {
				kept = append(kept, alert)
			}
		}

		l.alerts = kept
	}

	l.mu.Unlock()

	l.broadcast()
}

// PruneOlderThan drops alerts created before cutoff and returns how many
// were removed. Used by the periodic retention cleanup.
func (l *Ledger) PruneOlderThan(cutoff time.Time) int {
	l.mu.Lock()

	kept := l.alerts[:0]

	for _, alert := range l.alerts {
		if !alert.Timestamp.Before(cutoff) {
			kept = append(kept, alert)
		}
	}

	removed := len(l.alerts) - len(kept)
	l.alerts = kept

	l.mu.Unlock()

	if removed > 0 {
		l.broadcast()
	}

	return removed
}

// Query returns a defensive copy of the ledger, newest first, scoped to one
// vehicle when vehicleID is non-empty.
func (l *Ledger) Query(vehicleID string) []models.Alert {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.snapshotLocked(vehicleID)
}

// UnreadCount counts unread alerts, optionally scoped to one vehicle.
func (l *Ledger) UnreadCount(vehicleID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0

	for i := range l.alerts {
		if l.alerts[i].IsRead {
			continue
		}

		if vehicleID == "" || l.alerts[i].VehicleID == vehicleID {
			count++
		}
	}

	return count
}

// Subscribe registers for full-snapshot updates after each mutation. The
// returned cancel func unregisters the subscriber and closes its channel.
// A slow subscriber misses snapshots rather than stalling mutation.
func (l *Ledger) Subscribe() (<-chan []models.Alert, func()) {
	id := uuid.NewString()
	ch := make(chan []models.Alert, 1)

	l.mu.Lock()
	l.subscribers[id] = ch
	l.mu.Unlock()

	cancel := func() {
		l.mu.Lock()
		defer l.mu.Unlock()

		if sub, ok := l.subscribers[id]; ok {
			delete(l.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (l *Ledger) broadcast() {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.subscribers) == 0 {
		return
	}

	snapshot := l.snapshotLocked("")

	for id, ch := range l.subscribers {
		select {
		case ch <- snapshot:
		default:
			l.log.Debug().Str("subscriber", id).Msg("dropped ledger snapshot for slow subscriber")
		}
	}
}

func (l *Ledger) snapshotLocked(vehicleID string) []models.Alert {
	out := make([]models.Alert, 0, len(l.alerts))

	for _, alert := range l.alerts {
		if vehicleID == "" || alert.VehicleID == vehicleID {
			out = append(out, alert)
		}
	}

	return out
}
