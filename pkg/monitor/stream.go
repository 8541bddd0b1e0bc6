// pkg/monitor/stream.go

package monitor

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/models"
)

// healthStream fans health updates out to per-vehicle subscribers. Sends
// never block: a slow subscriber misses updates instead of stalling
// ingestion.
type healthStream struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan models.BatteryHealth // vehicleID -> subscriber ID -> channel
	log  zerolog.Logger
}

func newHealthStream(log zerolog.Logger) *healthStream {
	return &healthStream{
		subs: make(map[string]map[string]chan models.BatteryHealth),
		log:  log,
	}
}

// subscribe registers for a vehicle's health updates. A non-nil initial
// record is delivered before any future update. The cancel func
// unregisters the subscriber and closes its channel.
func (h *healthStream) subscribe(vehicleID string, initial *models.BatteryHealth) (<-chan models.BatteryHealth, func()) {
	id := uuid.NewString()
	ch := make(chan models.BatteryHealth, 1)

	if initial != nil {
		ch <- *initial
	}

	h.mu.Lock()

	if h.subs[vehicleID] == nil {
		h.subs[vehicleID] = make(map[string]chan models.BatteryHealth)
	}

	h.subs[vehicleID][id] = ch

	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		vehicleSubs, ok := h.subs[vehicleID]
		if !ok {
			return
		}

		if sub, ok := vehicleSubs[id]; ok {
			delete(vehicleSubs, id)
			close(sub)
		}

		if len(vehicleSubs) == 0 {
			delete(h.subs, vehicleID)
		}
	}

	return ch, cancel
}

func (h *healthStream) publish(record models.BatteryHealth) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, ch := range h.subs[record.VehicleID] {
		select {
		case ch <- record:
		default:
			h.log.Debug().
				Str("vehicle_id", record.VehicleID).
				Str("subscriber", id).
				Msg("dropped health update for slow subscriber")
		}
	}
}

// closeAll tears down every subscriber; used on service shutdown.
func (h *healthStream) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for vehicleID, vehicleSubs := range h.subs {
		for id, ch := range vehicleSubs {
			close(ch)
			delete(vehicleSubs, id)
		}

		delete(h.subs, vehicleID)
	}
}
