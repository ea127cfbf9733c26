package configuration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "YOUR_WIFI_SSID", cfg.Wifi.SSID)
	assert.Equal(t, "192.168.1.100", cfg.Mqtt.Address)
	assert.Equal(t, 1883, cfg.Mqtt.Port)
	assert.Equal(t, 5000, cfg.Gate.OpenDurationMs)
	assert.Equal(t, 5*time.Second, cfg.Gate.OpenDuration())
	assert.False(t, cfg.Mqtt.Authenticated())
	assert.NoError(t, Validate(cfg))
}

func TestInitWithoutFile(t *testing.T) {
	svc, err := Init("")
	require.NoError(t, err)

	assert.Equal(t, Default(), svc.GetConfiguration())
}

func TestInitMissingFile(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestInitFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "configuration.yaml")
	err := os.WriteFile(filename, []byte(`
wifi:
  ssid: parking-lot
  password: s3cret
mqtt:
  address: broker.local
  port: 8883
  username: gate
  password: gatepass
topics:
  gateControl: lot1/gate/control
  gateStatus: lot1/gate/status
  rfidScan: lot1/rfid/scan
gate:
  openDurationMs: 7000
logLevel: debug
`), 0644)
	require.NoError(t, err)

	svc, err := Init(filename)
	require.NoError(t, err)

	cfg := svc.GetConfiguration()
	assert.Equal(t, "parking-lot", cfg.Wifi.SSID)
	assert.Equal(t, 8883, cfg.Mqtt.Port)
	assert.True(t, cfg.Mqtt.Authenticated())
	assert.Equal(t, "lot1/rfid/scan", cfg.Topics.RfidScan)
	assert.Equal(t, 7000, cfg.Gate.OpenDurationMs)
	assert.NoError(t, ValidateForDeployment(cfg))
}

func TestParseSingleKeyKeepsOtherDefaults(t *testing.T) {
	cfg, err := Parse([]byte("mqtt:\n  port: 1884\n"))
	require.NoError(t, err)

	expected := Default()
	expected.Mqtt.Port = 1884
	assert.Equal(t, expected, cfg)
}

func TestParseNoTransformation(t *testing.T) {
	cfg, err := Parse([]byte("mqtt:\n  port: 1883\ngate:\n  openDurationMs: 5000\n"))
	require.NoError(t, err)

	assert.Equal(t, 1883, cfg.Mqtt.Port)
	assert.Equal(t, 5000, cfg.Gate.OpenDurationMs)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKey(t *testing.T) {
	_, err := Parse([]byte("mqtt:\n  host: broker.local\n"))
	assert.Error(t, err)
}

func TestParseRejectsWrongType(t *testing.T) {
	_, err := Parse([]byte("mqtt:\n  port: not-a-port\n"))
	assert.Error(t, err)
}

func TestServiceReturnsCopy(t *testing.T) {
	svc, err := Init("")
	require.NoError(t, err)

	cfg := svc.GetConfiguration()
	cfg.Mqtt.Port = 1

	assert.Equal(t, DefaultMqttPort, svc.GetConfiguration().Mqtt.Port)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Topics.GateStatus = "lot2/gate/status"

	buf, err := Marshal(cfg)
	require.NoError(t, err)

	parsed, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.Mqtt.Username = "gate"
	cfg.Mqtt.Password = "gatepass"

	redacted := cfg.Redacted()
	assert.Equal(t, "********", redacted.Wifi.Password)
	assert.Equal(t, "********", redacted.Mqtt.Password)
	assert.Equal(t, "gate", redacted.Mqtt.Username)
	assert.Equal(t, "gatepass", cfg.Mqtt.Password)
}

func TestRedactedKeepsEmptySecrets(t *testing.T) {
	cfg := Default()
	cfg.Wifi.Password = ""

	redacted := cfg.Redacted()
	assert.Equal(t, "", redacted.Wifi.Password)
	assert.Equal(t, "", redacted.Mqtt.Password)
}
