package mqtt

import (
	"context"
	"fmt"
	"log"
	"time"

	mqttlib "github.com/eclipse/paho.mqtt.golang"
	"github.com/supby/gatecfg/internal/configuration"
	"github.com/supby/gatecfg/internal/logger"
)

const (
	probeClientID       = "gatecfg-probe"
	defaultProbeTimeout = 10 * time.Second
	// paho's own connect timeout trails the context deadline so the
	// context decides when a probe gives up.
	connectTimeoutSlack = time.Second
)

// RouteLibraryLogs sends paho's package loggers to l. Paho keeps them in
// package globals, call it once at startup.
func RouteLibraryLogs(l logger.Logger) {
	mqttlib.ERROR = log.New(l.GetWriter(), "[MQTT Client] [ERROR] ", 0)
	mqttlib.CRITICAL = log.New(l.GetWriter(), "[MQTT Client] [CRITICAL] ", 0)
	if l.Enabled(logger.LogLevelWarn) {
		mqttlib.WARN = log.New(l.GetWriter(), "[MQTT Client] [WARN] ", 0)
	}
	if l.Enabled(logger.LogLevelDebug) {
		mqttlib.DEBUG = log.New(l.GetWriter(), "[MQTT Client] [DEBUG] ", 0)
	}
}

// Probe connects to the configured broker and disconnects again. It never
// subscribes or publishes.
func Probe(ctx context.Context, cfg configuration.MqttConfiguration, l logger.Logger) error {
	timeout := defaultProbeTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline) + connectTimeoutSlack
	}

	opts := NewClientOptions(cfg, probeClientID)
	opts.SetAutoReconnect(false)
	opts.SetConnectRetry(false)
	opts.SetConnectTimeout(timeout)

	client := mqttlib.NewClient(opts)
	l.Debug("Connecting to %v", BrokerURL(cfg))

	token := client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		client.Disconnect(0)
		return fmt.Errorf("broker %v: %w", BrokerURL(cfg), ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("broker %v: %w", BrokerURL(cfg), err)
	}

	l.Info("Connected to MQTT on '%v:%v'", cfg.Address, cfg.Port)
	client.Disconnect(250)

	return nil
}
