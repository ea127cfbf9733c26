package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supby/gatecfg/internal/configuration"
)

func TestBrokerURL(t *testing.T) {
	cfg := configuration.Default().Mqtt

	assert.Equal(t, "tcp://192.168.1.100:1883", BrokerURL(cfg))

	cfg.Address = "::1"
	assert.Equal(t, "tcp://[::1]:1883", BrokerURL(cfg))
}

func TestNewClientOptionsWithoutAuth(t *testing.T) {
	cfg := configuration.Default().Mqtt

	opts := NewClientOptions(cfg, "gate-1")

	assert.Len(t, opts.Servers, 1)
	assert.Equal(t, "192.168.1.100:1883", opts.Servers[0].Host)
	assert.Equal(t, "gate-1", opts.ClientID)
	assert.Equal(t, "", opts.Username)
	assert.Equal(t, "", opts.Password)
	assert.True(t, opts.AutoReconnect)
	assert.Equal(t, int64(60), opts.KeepAlive)
}

func TestNewClientOptionsWithAuth(t *testing.T) {
	cfg := configuration.Default().Mqtt
	cfg.Username = "gate"
	cfg.Password = "gatepass"

	opts := NewClientOptions(cfg, "gate-1")

	assert.Equal(t, "gate", opts.Username)
	assert.Equal(t, "gatepass", opts.Password)
}
