package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltradar/voltradar/pkg/models"
)

func alert(id, vehicleID string, ts time.Time) models.Alert {
	return models.Alert{
		ID:        id,
		VehicleID: vehicleID,
		Type:      models.AlertBatteryLow,
		Severity:  models.SeverityWarning,
		Title:     "Battery low",
		Timestamp: ts,
	}
}

func TestLedgerAppend(t *testing.T) {
	now := time.Now()

	t.Run("newest first", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car1", now.Add(time.Second)))

		got := l.Query("")
		require.Len(t, got, 2)
		assert.Equal(t, "a2", got[0].ID)
		assert.Equal(t, "a1", got[1].ID)
	})

	t.Run("oldest evicted at capacity", func(t *testing.T) {
		l := NewLedger(3)

		for i := 0; i < 5; i++ {
			l.Append(alert(fmt.Sprintf("a%d", i), "car1", now.Add(time.Duration(i)*time.Second)))
		}

		got := l.Query("")
		require.Len(t, got, 3)
		assert.Equal(t, "a4", got[0].ID)
		assert.Equal(t, "a2", got[2].ID)
	})

	t.Run("query scoped by vehicle", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car2", now))

		got := l.Query("car1")
		require.Len(t, got, 1)
		assert.Equal(t, "a1", got[0].ID)
	})

	t.Run("query is a defensive copy", func(t *testing.T) {
		l := NewLedger(10)
		l.Append(alert("a1", "car1", now))

		got := l.Query("")
		got[0].IsRead = true

		assert.False(t, l.Query("")[0].IsRead)
	})
}

func TestLedgerReadTracking(t *testing.T) {
	now := time.Now()

	t.Run("mark one read", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car1", now))

		l.MarkRead("a1")

		assert.Equal(t, 1, l.UnreadCount(""))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := NewLedger(10)
		l.Append(alert("a1", "car1", now))

		l.MarkRead("missing")

		assert.Equal(t, 1, l.UnreadCount(""))
	})

	t.Run("mark all read scoped and idempotent", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car2", now))

		l.MarkAllRead("car1")
		assert.Equal(t, 0, l.UnreadCount("car1"))
		assert.Equal(t, 1, l.UnreadCount("car2"))

		l.MarkAllRead("car1")
		assert.Equal(t, 1, l.UnreadCount(""))

		l.MarkAllRead("")
		assert.Equal(t, 0, l.UnreadCount(""))
	})
}

func TestLedgerClear(t *testing.T) {
	now := time.Now()

	t.Run("scoped clear keeps other vehicles", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car2", now))

		l.Clear("car1")

		got := l.Query("")
		require.Len(t, got, 1)
		assert.Equal(t, "a2", got[0].ID)
	})

	t.Run("unscoped clear empties everything", func(t *testing.T) {
		l := NewLedger(10)

		l.Append(alert("a1", "car1", now))
		l.Append(alert("a2", "car2", now))

		l.Clear("")

		assert.Empty(t, l.Query(""))
	})
}

func TestLedgerPruneOlderThan(t *testing.T) {
	now := time.Now()
	l := NewLedger(10)

	l.Append(alert("old", "car1", now.Add(-2*time.Hour)))
	l.Append(alert("fresh", "car1", now))

	removed := l.PruneOlderThan(now.Add(-time.Hour))

	assert.Equal(t, 1, removed)

	got := l.Query("")
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)

	assert.Equal(t, 0, l.PruneOlderThan(now.Add(-time.Hour)))
}

func TestLedgerSubscribe(t *testing.T) {
	now := time.Now()

	t.Run("receives snapshot after mutation", func(t *testing.T) {
		l := NewLedger(10)

		ch, cancel := l.Subscribe()
		defer cancel()

		l.Append(alert("a1", "car1", now))

		select {
		case snapshot := <-ch:
			require.Len(t, snapshot, 1)
			assert.Equal(t, "a1", snapshot[0].ID)
		case <-time.After(time.Second):
			t.Fatal("no snapshot received")
		}
	})

	t.Run("cancel closes the channel", func(t *testing.T) {
		l := NewLedger(10)

		ch, cancel := l.Subscribe()
		cancel()

		_, ok := <-ch
		assert.False(t, ok)

		// Mutations after cancel must not panic.
		l.Append(alert("a1", "car1", now))
	})

	t.Run("slow subscriber misses snapshots without stalling", func(t *testing.T) {
		l := NewLedger(10)

		ch, cancel := l.Subscribe()
		defer cancel()

		for i := 0; i < 5; i++ {
			l.Append(alert(fmt.Sprintf("a%d", i), "car1", now))
		}

		// The buffered channel holds the first snapshot; later ones were
		// dropped rather than blocking Append.
		snapshot := <-ch
		assert.NotEmpty(t, snapshot)
	})

	t.Run("double cancel is safe", func(t *testing.T) {
		l := NewLedger(10)

		_, cancel := l.Subscribe()
		cancel()
		cancel()
	})
}
