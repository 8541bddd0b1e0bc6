package monitor

//go:generate mockgen -destination=mock_monitor.go -package=monitor github.com/voltradar/voltradar/pkg/monitor Recorder

import (
	"context"
	"time"

	"github.com/voltradar/voltradar/pkg/models"
)

// Recorder is the optional write-through sink at the ingest and
// alert-append paths. The core never reads it back; failures are logged
// and ignored.
type Recorder interface {
	RecordHealth(ctx context.Context, record models.BatteryHealth) error
	RecordAlert(ctx context.Context, alert models.Alert) error
	CleanOldData(ctx context.Context, retention time.Duration) error
}
