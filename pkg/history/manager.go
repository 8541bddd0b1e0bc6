// pkg/history/manager.go

package history

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

// vehicleHistory pairs a buffer with its own lock so vehicles prune and
// append independently.
type vehicleHistory struct {
	mu  sync.RWMutex
	buf Store
}

// Manager owns the per-vehicle history buffers. Buffers are created on the
// first record for a vehicle and live until explicitly cleared.
type Manager struct {
	vehicles       sync.Map // vehicleID -> *vehicleHistory
	maxEntries     int
	activeVehicles int64
}

// NewManager creates a Manager whose buffers hold at most maxEntries records.
func NewManager(maxEntries int) *Manager {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Manager{maxEntries: maxEntries}
}

func (m *Manager) Append(vehicleID string, record models.BatteryHealth) {
	vh, loaded := m.vehicles.LoadOrStore(vehicleID, &vehicleHistory{
		buf: NewBuffer(m.maxEntries),
	})

	if !loaded {
		atomic.AddInt64(&m.activeVehicles, 1)
		log := logger.WithComponent("history")
		log.Debug().
			Str("vehicle_id", vehicleID).
			Msg("created history buffer")
	}

	h := vh.(*vehicleHistory)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Append(record)
}

// Snapshot returns the vehicle's records in stored order, or nil for an
// unknown vehicle.
func (m *Manager) Snapshot(vehicleID string) []models.BatteryHealth {
	vh, ok := m.vehicles.Load(vehicleID)
	if !ok {
		return nil
	}

	h := vh.(*vehicleHistory)

	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.buf.Snapshot()
}

// Range returns the vehicle's records with start < ts < end.
func (m *Manager) Range(vehicleID string, start, end time.Time) []models.BatteryHealth {
	vh, ok := m.vehicles.Load(vehicleID)
	if !ok {
		return nil
	}

	h := vh.(*vehicleHistory)

	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.buf.Range(start, end)
}

func (m *Manager) Latest(vehicleID string) (models.BatteryHealth, bool) {
	vh, ok := m.vehicles.Load(vehicleID)
	if !ok {
		return models.BatteryHealth{}, false
	}

	h := vh.(*vehicleHistory)

	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.buf.Latest()
}

// PruneAll applies PruneOlderThan(cutoff) to every vehicle and returns the
// total number of records removed.
func (m *Manager) PruneAll(cutoff time.Time) int {
	total := 0

	m.vehicles.Range(func(_, value any) bool {
		h := value.(*vehicleHistory)

		h.mu.Lock()
		total += h.buf.PruneOlderThan(cutoff)
		h.mu.Unlock()

		return true
	})

	return total
}

// Clear empties one vehicle's buffer. No-op for unknown vehicles.
func (m *Manager) Clear(vehicleID string) {
	vh, ok := m.vehicles.Load(vehicleID)
	if !ok {
		return
	}

	h := vh.(*vehicleHistory)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.buf.Clear()
}

// ClearAll empties every vehicle's buffer.
func (m *Manager) ClearAll() {
	m.vehicles.Range(func(_, value any) bool {
		h := value.(*vehicleHistory)

		h.mu.Lock()
		h.buf.Clear()
		h.mu.Unlock()

		return true
	})
}

// Vehicles lists the vehicle IDs with a history buffer.
func (m *Manager) Vehicles() []string {
	ids := make([]string, 0)

	m.vehicles.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})

	return ids
}

// ActiveVehicles reports how many vehicles have been seen.
func (m *Manager) ActiveVehicles() int64 {
	return atomic.LoadInt64(&m.activeVehicles)
}
