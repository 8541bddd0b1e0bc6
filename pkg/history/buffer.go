// pkg/history/buffer.go

package history

import (
	"time"

	"github.com/voltradar/voltradar/pkg/models"
)

const DefaultMaxEntries = 1000

// Buffer is a capacity-bounded, append-ordered record buffer for a single
// vehicle. Records are kept in ingestion order; out-of-order timestamps are
// accepted but never re-sorted.
type Buffer struct {
	records    []models.BatteryHealth
	maxEntries int
}

// NewBuffer creates a Buffer holding at most maxEntries records.
func NewBuffer(maxEntries int) *Buffer {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Buffer{
		records:    make([]models.BatteryHealth, 0, 64),
		maxEntries: maxEntries,
	}
}

func (b *Buffer) Append(record models.BatteryHealth) {
	b.records = append(b.records, record)

	if len(b.records) > b.maxEntries {
		overflow := len(b.records) - b.maxEntries
		b.records = append(b.records[:0], b.records[overflow:]...)
	}
}

func (b *Buffer) Snapshot() []models.BatteryHealth {
	out := make([]models.BatteryHealth, len(b.records))
	copy(out, b.records)

	return out
}

// Range filters with strict bounds on both sides: start < ts < end.
func (b *Buffer) Range(start, end time.Time) []models.BatteryHealth {
	out := make([]models.BatteryHealth, 0, len(b.records))

	for _, rec := range b.records {
		if rec.Timestamp.After(start) && rec.Timestamp.Before(end) {
			out = append(out, rec)
		}
	}

	return out
}

func (b *Buffer) Latest() (models.BatteryHealth, bool) {
	if len(b.records) == 0 {
		return models.BatteryHealth{}, false
	}

	return b.records[len(b.records)-1], true
}

// PruneOlderThan removes leading entries older than cutoff. Later entries
// with stale timestamps are left in place to preserve append order.
func (b *Buffer) PruneOlderThan(cutoff time.Time) int {
	keep := 0
	for keep < len(b.records) && b.records[keep].Timestamp.Before(cutoff) {
		keep++
	}

	if keep == 0 {
		return 0
	}

	b.records = append(b.records[:0], b.records[keep:]...)

	return keep
}

func (b *Buffer) Clear() {
	b.records = b.records[:0]
}

func (b *Buffer) Len() int {
	return len(b.records)
}
