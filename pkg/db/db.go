// pkg/db/db.go provides the SQLite write-through sink for
// battery history and alerts. The core never reads this data back; it is
// an append-only log for external consumers.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/models"
)

const createTablesSQL = `
	-- Battery health snapshots, append-only
	CREATE TABLE IF NOT EXISTS battery_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vehicle_id TEXT NOT NULL,
		voltage REAL NOT NULL,
		soc REAL NOT NULL,
		soh REAL NOT NULL,
		status TEXT NOT NULL,
		recommendation TEXT,
		estimated_hours REAL,
		battery_type TEXT,
		timestamp TIMESTAMP NOT NULL,
		metadata TEXT
	);

	-- Emitted alerts, append-only
	CREATE TABLE IF NOT EXISTS alerts (
		alert_id TEXT PRIMARY KEY,
		vehicle_id TEXT NOT NULL,
		type TEXT NOT NULL,
		severity TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT,
		timestamp TIMESTAMP NOT NULL,
		data TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_battery_history_vehicle_time
		ON battery_history(vehicle_id, timestamp);
	CREATE INDEX IF NOT EXISTS idx_alerts_vehicle_time
		ON alerts(vehicle_id, timestamp);

	-- Enable WAL mode for better concurrent access
	PRAGMA journal_mode=WAL;
	`

// DB wraps the SQLite connection behind the monitor's Recorder interface.
type DB struct {
	*sql.DB
}

// New opens (or creates) the database at dbPath and initializes the schema.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if _, err := sqlDB.Exec(createTablesSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return &DB{DB: sqlDB}, nil
}

// RecordHealth appends one health snapshot.
func (db *DB) RecordHealth(ctx context.Context, record models.BatteryHealth) error {
	metadataJSON, err := serializeMap(record.Metadata)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO battery_history
		(vehicle_id, voltage, soc, soh, status, recommendation, estimated_hours, battery_type, timestamp, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.VehicleID,
		record.Voltage,
		record.StateOfCharge,
		record.StateOfHealth,
		string(record.Status),
		record.Recommendation,
		record.EstimatedHours,
		record.BatteryType,
		record.Timestamp,
		metadataJSON,
	)
	if err != nil {
		return fmt.Errorf("%w battery history: %w", ErrFailedToInsert, err)
	}

	return nil
}

// RecordAlert appends one alert. Replays of the same alert ID are ignored.
func (db *DB) RecordAlert(ctx context.Context, alert models.Alert) error {
	dataJSON, err := serializeMap(alert.Data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToInsert, err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT OR IGNORE INTO alerts
		(alert_id, vehicle_id, type, severity, title, message, timestamp, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		alert.ID,
		alert.VehicleID,
		string(alert.Type),
		string(alert.Severity),
		alert.Title,
		alert.Message,
		alert.Timestamp,
		dataJSON,
	)
	if err != nil {
		return fmt.Errorf("%w alert: %w", ErrFailedToInsert, err)
	}

	return nil
}

// CleanOldData removes rows older than the retention period.
func (db *DB) CleanOldData(ctx context.Context, retentionPeriod time.Duration) error {
	cutoff := time.Now().Add(-retentionPeriod)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToBeginTx, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log := logger.WithComponent("db")
				log.Warn().Err(rbErr).Msg("failed to rollback")
			}

			return
		}

		err = tx.Commit()
	}()

	if _, err = tx.ExecContext(ctx,
		"DELETE FROM battery_history WHERE timestamp < ?", cutoff,
	); err != nil {
		return fmt.Errorf("%w battery history: %w", ErrFailedToClean, err)
	}

	if _, err = tx.ExecContext(ctx,
		"DELETE FROM alerts WHERE timestamp < ?", cutoff,
	); err != nil {
		return fmt.Errorf("%w alerts: %w", ErrFailedToClean, err)
	}

	return err
}

func serializeMap(m map[string]any) (string, error) {
	if m == nil {
		return "", nil
	}

	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
