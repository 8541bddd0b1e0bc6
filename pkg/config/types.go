package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/voltradar/voltradar/pkg/logger"
)

type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// MQTTConfig configures the ingestion subscriber's broker connection.
type MQTTConfig struct {
	BrokerURL          string `json:"broker_url"`
	ClientID           string `json:"client_id"`
	Username           string `json:"username,omitempty"`
	Password           string `json:"password,omitempty"`
	TopicFilter        string `json:"topic_filter,omitempty"` // defaults to car/+/battery/health
	QoS                int    `json:"qos,omitempty"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify,omitempty"`
}

// HistoryConfig bounds the per-vehicle history buffers.
type HistoryConfig struct {
	MaxEntries int      `json:"max_entries"` // default 1000
	Retention  Duration `json:"retention"`   // default 168h
}

// AlertsConfig bounds the alert ledger.
type AlertsConfig struct {
	MaxAlerts int      `json:"max_alerts"` // default 100
	Retention Duration `json:"retention"`  // default 168h
}

// MonitorConfig is the top-level configuration for the monitor service.
type MonitorConfig struct {
	ListenAddr      string        `json:"listen_addr"`
	DBPath          string        `json:"db_path,omitempty"` // empty disables the write-through sink
	CleanupInterval Duration      `json:"cleanup_interval,omitempty"`
	MQTT            MQTTConfig    `json:"mqtt"`
	History         HistoryConfig `json:"history"`
	Alerts          AlertsConfig  `json:"alerts"`
	Logging         logger.Config `json:"logging"`
}

var (
	errNoListenAddr = errors.New("listen_addr is required")
	errNoBrokerURL  = errors.New("mqtt.broker_url is required")
)

func (c *MonitorConfig) Validate() error {
	if c.ListenAddr == "" {
		return errNoListenAddr
	}

	if c.MQTT.BrokerURL == "" {
		return errNoBrokerURL
	}

	return nil
}
