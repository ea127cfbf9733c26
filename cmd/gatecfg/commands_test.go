package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/supby/gatecfg/internal/configuration"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	out := bytes.Buffer{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "configuration.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	return filename
}

func TestShowMasksSecrets(t *testing.T) {
	out, err := run(t, "show", "-c", "")
	require.NoError(t, err)

	assert.Contains(t, out, "port: 1883")
	assert.Contains(t, out, "openDurationMs: 5000")
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "YOUR_WIFI_PASSWORD")
}

func TestShowReveal(t *testing.T) {
	out, err := run(t, "show", "-c", "", "--reveal")
	require.NoError(t, err)

	assert.Contains(t, out, "YOUR_WIFI_PASSWORD")
}

func TestCheckDefaults(t *testing.T) {
	out, err := run(t, "check", "-c", "")
	require.NoError(t, err)

	assert.Contains(t, out, "configuration OK")
}

func TestCheckDeploymentRejectsPlaceholders(t *testing.T) {
	_, err := run(t, "check", "-c", "", "--deployment")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "wifi.ssid")
}

func TestCheckInvalidFile(t *testing.T) {
	filename := writeConfig(t, "gate:\n  openDurationMs: 0\n")

	_, err := run(t, "check", "-c", filename)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "gate.openDurationMs")
}

func TestRenderToFileAndImportBack(t *testing.T) {
	filename := writeConfig(t, "mqtt:\n  address: broker.local\n  port: 1884\n")
	dir := t.TempDir()
	header := filepath.Join(dir, "config.h")
	imported := filepath.Join(dir, "imported.yaml")

	_, err := run(t, "render", "-c", filename, "-o", header)
	require.NoError(t, err)

	content, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Contains(t, string(content), "#define MQTT_SERVER \"broker.local\"")
	assert.Contains(t, string(content), "#define MQTT_PORT 1884\n")

	_, err = run(t, "import", "-i", header, "-o", imported)
	require.NoError(t, err)

	svc, err := configuration.Init(imported)
	require.NoError(t, err)

	expected := configuration.Default()
	expected.Mqtt.Address = "broker.local"
	expected.Mqtt.Port = 1884
	assert.Equal(t, expected, svc.GetConfiguration())
}

func TestImportRequiresInput(t *testing.T) {
	_, err := run(t, "import")
	assert.Error(t, err)
}
