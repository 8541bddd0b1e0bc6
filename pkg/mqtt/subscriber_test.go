package mqtt

import (
	"context"
	"testing"

	"github.com/eclipse/paho.golang/paho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/voltradar/voltradar/pkg/config"
)

func testMQTTConfig() config.MQTTConfig {
	return config.MQTTConfig{
		BrokerURL: "mqtt://localhost:1883",
		ClientID:  "voltradar-test",
	}
}

func TestHealthTopic(t *testing.T) {
	assert.Equal(t, "car/car1/battery/health", HealthTopic("car1"))
}

func TestVehicleFromTopic(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		want  string
		ok    bool
	}{
		{"valid", "car/car1/battery/health", "car1", true},
		{"id with dashes", "car/fleet-07/battery/health", "fleet-07", true},
		{"wrong root", "truck/car1/battery/health", "", false},
		{"wrong leaf", "car/car1/battery/rpm", "", false},
		{"too few segments", "car/car1/health", "", false},
		{"too many segments", "car/car1/battery/health/extra", "", false},
		{"empty vehicle id", "car//battery/health", "", false},
		{"empty topic", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VehicleFromTopic(tt.topic)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriberHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("valid payload reaches the ingestor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := NewMockIngestor(ctrl)
		ingestor.EXPECT().Ingest("car1", gomock.Any()).Do(func(_ string, payload map[string]any) {
			assert.Equal(t, 12.6, payload["voltage"])
		})

		sub := NewSubscriber(ingestor)
		sub.Handle(ctx, "car/car1/battery/health", []byte(`{"voltage": 12.6, "soc": 90}`))
	})

	t.Run("unrecognized topic dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := NewMockIngestor(ctrl)

		sub := NewSubscriber(ingestor)
		sub.Handle(ctx, "car/car1/engine/rpm", []byte(`{"rpm": 900}`))
	})

	t.Run("undecodable payload dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ingestor := NewMockIngestor(ctrl)

		sub := NewSubscriber(ingestor)
		sub.Handle(ctx, "car/car1/battery/health", []byte(`not json`))
		sub.Handle(ctx, "car/car1/battery/health", []byte(`[1, 2, 3]`))
	})
}

func TestClientRouteDeliversInline(t *testing.T) {
	var (
		gotTopic   string
		gotPayload []byte
	)

	c, err := NewClient(testMQTTConfig(), func(_ context.Context, topic string, payload []byte) {
		gotTopic = topic
		gotPayload = payload
	})
	require.NoError(t, err)

	forward, err := c.route(paho.PublishReceived{
		Packet: &paho.Publish{
			Topic:   "car/car1/battery/health",
			Payload: []byte(`{"voltage": 12.6}`),
		},
	})

	require.NoError(t, err)
	assert.True(t, forward)
	assert.Equal(t, "car/car1/battery/health", gotTopic)
	assert.Equal(t, []byte(`{"voltage": 12.6}`), gotPayload)
}

func TestNewClientValidation(t *testing.T) {
	handler := func(context.Context, string, []byte) {}

	t.Run("valid config", func(t *testing.T) {
		c, err := NewClient(testMQTTConfig(), handler)

		require.NoError(t, err)
		assert.Equal(t, DefaultHealthTopicFilter, c.filter)
		assert.Equal(t, defaultQoS, c.qos)
	})

	t.Run("missing broker url", func(t *testing.T) {
		cfg := testMQTTConfig()
		cfg.BrokerURL = ""

		_, err := NewClient(cfg, handler)
		assert.ErrorIs(t, err, errNoBrokerURL)
	})

	t.Run("missing client id", func(t *testing.T) {
		cfg := testMQTTConfig()
		cfg.ClientID = ""

		_, err := NewClient(cfg, handler)
		assert.ErrorIs(t, err, errEmptyClientID)
	})

	t.Run("nil handler", func(t *testing.T) {
		_, err := NewClient(testMQTTConfig(), nil)
		assert.ErrorIs(t, err, errNilHandler)
	})

	t.Run("explicit qos and filter kept", func(t *testing.T) {
		cfg := testMQTTConfig()
		cfg.QoS = 2
		cfg.TopicFilter = "car/car1/battery/health"

		c, err := NewClient(cfg, handler)

		require.NoError(t, err)
		assert.Equal(t, byte(2), c.qos)
		assert.Equal(t, "car/car1/battery/health", c.filter)
	})

	t.Run("stop before start is a no-op", func(t *testing.T) {
		c, err := NewClient(testMQTTConfig(), handler)
		require.NoError(t, err)

		assert.NoError(t, c.Stop(context.Background()))
	})
}
