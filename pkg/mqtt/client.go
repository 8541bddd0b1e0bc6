// Package mqtt connects the monitor to the vehicle telemetry broker and
// routes battery health publications into the ingestion path.
package mqtt

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"
	"github.com/rs/zerolog"

	"github.com/voltradar/voltradar/pkg/config"
	"github.com/voltradar/voltradar/pkg/logger"
)

const (
	defaultKeepAlive      = 60
	defaultConnectTimeout = 5 * time.Second
	reconnectBackoff      = 3 * time.Second
)

const defaultQoS byte = 1

var (
	errNoBrokerURL   = errors.New("mqtt broker url is required")
	errNotStarted    = errors.New("mqtt client not started")
	errNilHandler    = errors.New("mqtt message handler is required")
	errBadBrokerURL  = errors.New("invalid mqtt broker url")
	errEmptyClientID = errors.New("mqtt client id is required")
)

// MessageHandler processes one received publication.
type MessageHandler func(ctx context.Context, topic string, payload []byte)

// Client maintains the broker connection and a single health-topic
// subscription, re-subscribing automatically after reconnects.
type Client struct {
	cfg     config.MQTTConfig
	filter  string
	qos     byte
	handler MessageHandler
	cm      *autopaho.ConnectionManager
	log     zerolog.Logger
}

// NewClient validates the config and prepares a client routing received
// publications to handler.
func NewClient(cfg config.MQTTConfig, handler MessageHandler) (*Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errNoBrokerURL
	}

	if _, err := url.Parse(cfg.BrokerURL); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadBrokerURL, err)
	}

	if cfg.ClientID == "" {
		return nil, errEmptyClientID
	}

	if handler == nil {
		return nil, errNilHandler
	}

	filter := cfg.TopicFilter
	if filter == "" {
		filter = DefaultHealthTopicFilter
	}

	qos := defaultQoS
	if cfg.QoS > 0 && cfg.QoS <= 2 {
		qos = byte(cfg.QoS)
	}

	return &Client{
		cfg:     cfg,
		filter:  filter,
		qos:     qos,
		handler: handler,
		log:     logger.WithComponent("mqtt"),
	}, nil
}

// Start opens the broker connection. Non-blocking; use AwaitConnection to
// wait for the first connect.
func (c *Client) Start(ctx context.Context) error {
	brokerURL, _ := url.Parse(c.cfg.BrokerURL) // validated in NewClient

	pahoCfg := autopaho.ClientConfig{
		ServerUrls:                    []*url.URL{brokerURL},
		KeepAlive:                     defaultKeepAlive,
		CleanStartOnInitialConnection: true,
		ConnectTimeout:                defaultConnectTimeout,
		ReconnectBackoff:              autopaho.NewConstantBackoff(reconnectBackoff),
		ConnectUsername:               c.cfg.Username,
		ConnectPassword:               []byte(c.cfg.Password),
		TlsCfg: &tls.Config{
			InsecureSkipVerify: c.cfg.InsecureSkipVerify, //nolint:gosec // operator opt-in for self-signed brokers
		},
		OnConnectionUp: c.onConnectionUp,
		OnConnectError: func(err error) {
			c.log.Error().Err(err).Msg("broker connection failed, retrying")
		},
		ClientConfig: paho.ClientConfig{
			ClientID: c.cfg.ClientID,
			OnClientError: func(err error) {
				c.log.Error().Err(err).Msg("mqtt client error")
			},
			OnServerDisconnect: func(d *paho.Disconnect) {
				c.log.Warn().Int("reason_code", int(d.ReasonCode)).Msg("broker requested disconnect")
			},
			OnPublishReceived: []func(paho.PublishReceived) (bool, error){
				c.route,
			},
		},
	}

	c.log.Info().
		Str("broker", c.cfg.BrokerURL).
		Str("client_id", c.cfg.ClientID).
		Str("filter", c.filter).
		Msg("starting mqtt client")

	cm, err := autopaho.NewConnection(ctx, pahoCfg)
	if err != nil {
		return fmt.Errorf("failed to start mqtt connection: %w", err)
	}

	c.cm = cm

	return nil
}

// AwaitConnection blocks until the broker connection is up or ctx expires.
func (c *Client) AwaitConnection(ctx context.Context) error {
	if c.cm == nil {
		return errNotStarted
	}

	return c.cm.AwaitConnection(ctx)
}

// Stop disconnects from the broker.
func (c *Client) Stop(ctx context.Context) error {
	if c.cm == nil {
		return nil
	}

	if err := c.cm.Disconnect(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	c.log.Info().Msg("mqtt client disconnected")

	return nil
}

// onConnectionUp subscribes (and re-subscribes after reconnects) to the
// health topic filter.
func (c *Client) onConnectionUp(cm *autopaho.ConnectionManager, _ *paho.Connack) {
	c.log.Info().Str("filter", c.filter).Msg("broker connection up, subscribing")

	if _, err := cm.Subscribe(context.Background(), &paho.Subscribe{
		Subscriptions: []paho.SubscribeOptions{
			{Topic: c.filter, QoS: c.qos},
		},
	}); err != nil {
		c.log.Error().Err(err).Str("filter", c.filter).Msg("subscribe failed")
	}
}

// route hands each publication to the handler on the reader loop. paho
// delivers one packet at a time per connection, so handlers see
// publications in broker order.
func (c *Client) route(p paho.PublishReceived) (bool, error) {
	c.handler(context.Background(), p.Packet.Topic, p.Packet.Payload)

	return true, nil
}
