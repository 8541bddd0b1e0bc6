// pkg/mqtt/subscriber.go

package mqtt

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/voltradar/voltradar/pkg/logger"
	"github.com/voltradar/voltradar/pkg/metrics"
)

//go:generate mockgen -destination=mock_subscriber.go -package=mqtt github.com/voltradar/voltradar/pkg/mqtt Ingestor

// Ingestor accepts decoded health payloads keyed by vehicle ID.
type Ingestor interface {
	Ingest(vehicleID string, payload map[string]any)
}

// Subscriber decodes battery health publications and feeds them into the
// monitor. Decode failures are counted and logged at a bounded rate so a
// misbehaving publisher cannot flood the log.
type Subscriber struct {
	ingestor Ingestor
	warnRate *rate.Limiter
	log      zerolog.Logger
}

func NewSubscriber(ingestor Ingestor) *Subscriber {
	return &Subscriber{
		ingestor: ingestor,
		warnRate: rate.NewLimiter(rate.Limit(1), 5), // 1/s, burst 5
		log:      logger.WithComponent("subscriber"),
	}
}

// Handle is the MessageHandler wired into the Client. Malformed topics and
// payloads are dropped; the monitor's own normalization covers missing
// fields inside otherwise valid JSON.
func (s *Subscriber) Handle(_ context.Context, topic string, payload []byte) {
	vehicleID, ok := VehicleFromTopic(topic)
	if !ok {
		if s.warnRate.Allow() {
			s.log.Warn().Str("topic", topic).Msg("message on unrecognized topic dropped")
		}

		return
	}

	var decoded map[string]any

	if err := json.Unmarshal(payload, &decoded); err != nil {
		metrics.DecodeFailures.Inc()

		if s.warnRate.Allow() {
			s.log.Warn().Err(err).
				Str("vehicle_id", vehicleID).
				Msg("undecodable health payload dropped")
		}

		return
	}

	s.ingestor.Ingest(vehicleID, decoded)
}
