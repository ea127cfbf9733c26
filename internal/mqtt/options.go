package mqtt

import (
	"fmt"
	"net"
	"strconv"
	"time"

	mqttlib "github.com/eclipse/paho.mqtt.golang"
	"github.com/supby/gatecfg/internal/configuration"
)

const (
	keepAlive   = 60 * time.Second
	pingTimeout = 1 * time.Second
)

// BrokerURL is the paho server address for the configured broker.
func BrokerURL(cfg configuration.MqttConfiguration) string {
	return fmt.Sprintf("tcp://%s", net.JoinHostPort(cfg.Address, strconv.Itoa(cfg.Port)))
}

// NewClientOptions builds the options a gate controller uses to reach the
// broker. Credentials are set only when the configuration is Authenticated,
// an empty username never turns into a login with empty credentials.
func NewClientOptions(cfg configuration.MqttConfiguration, clientID string) *mqttlib.ClientOptions {
	opts := mqttlib.NewClientOptions()
	opts.AddBroker(BrokerURL(cfg))
	opts.SetClientID(clientID)
	if cfg.Authenticated() {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(keepAlive)
	opts.SetPingTimeout(pingTimeout)
	opts.SetOrderMatters(false)

	return opts
}
