package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "monitor.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDurationUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string duration", `"30m"`, 30 * time.Minute, false},
		{"compound string", `"1h30m"`, 90 * time.Minute, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"soon"`, 0, true},
		{"bad type", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDurationMarshal(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Minute))

	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(out))
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("full monitor config", func(t *testing.T) {
		path := writeConfig(t, `{
			"listen_addr": ":8090",
			"db_path": "/var/lib/voltradar/monitor.db",
			"cleanup_interval": "1h",
			"mqtt": {
				"broker_url": "mqtt://broker:1883",
				"client_id": "voltradar-monitor",
				"qos": 1
			},
			"history": {"max_entries": 500, "retention": "72h"},
			"alerts": {"max_alerts": 50, "retention": "72h"},
			"logging": {"level": "debug"}
		}`)

		var cfg MonitorConfig
		require.NoError(t, LoadAndValidate(path, &cfg))

		assert.Equal(t, ":8090", cfg.ListenAddr)
		assert.Equal(t, "mqtt://broker:1883", cfg.MQTT.BrokerURL)
		assert.Equal(t, time.Hour, time.Duration(cfg.CleanupInterval))
		assert.Equal(t, 500, cfg.History.MaxEntries)
		assert.Equal(t, 72*time.Hour, time.Duration(cfg.History.Retention))
		assert.Equal(t, 50, cfg.Alerts.MaxAlerts)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("missing listen addr", func(t *testing.T) {
		path := writeConfig(t, `{
			"mqtt": {"broker_url": "mqtt://broker:1883", "client_id": "m"}
		}`)

		var cfg MonitorConfig
		assert.ErrorIs(t, LoadAndValidate(path, &cfg), errNoListenAddr)
	})

	t.Run("missing broker url", func(t *testing.T) {
		path := writeConfig(t, `{"listen_addr": ":8090", "mqtt": {"client_id": "m"}}`)

		var cfg MonitorConfig
		assert.ErrorIs(t, LoadAndValidate(path, &cfg), errNoBrokerURL)
	})

	t.Run("unreadable file", func(t *testing.T) {
		var cfg MonitorConfig
		assert.Error(t, LoadAndValidate(filepath.Join(t.TempDir(), "missing.json"), &cfg))
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeConfig(t, `{"listen_addr":`)

		var cfg MonitorConfig
		assert.Error(t, LoadAndValidate(path, &cfg))
	})
}
