package history

import (
	"time"

	"github.com/voltradar/voltradar/pkg/models"
)

// Store is one vehicle's bounded, append-ordered health buffer.
// Implementations are not synchronized; owners serialize access.
type Store interface {
	// Append adds a record to the tail, evicting from the head when the
	// buffer is at capacity. It always succeeds.
	Append(record models.BatteryHealth)

	// Snapshot returns a defensive copy of the buffer in stored order.
	Snapshot() []models.BatteryHealth

	// Range returns records with start < timestamp < end, strict on both
	// sides, in stored order.
	Range(start, end time.Time) []models.BatteryHealth

	// Latest returns the last-appended record, or false when empty.
	Latest() (models.BatteryHealth, bool)

	// PruneOlderThan drops head entries with timestamps before cutoff and
	// returns how many were removed.
	PruneOlderThan(cutoff time.Time) int

	// Clear empties the buffer.
	Clear()

	// Len reports the number of stored records.
	Len() int
}
