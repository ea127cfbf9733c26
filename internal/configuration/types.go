package configuration

import "time"

type WifiConfiguration struct {
	SSID     string `yaml:"ssid"`
	Password string `yaml:"password"`
}

type MqttConfiguration struct {
	Address  string `yaml:"address"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Authenticated reports whether the broker should be given credentials.
// An empty username means no authentication, whatever the password holds.
func (c MqttConfiguration) Authenticated() bool {
	return c.Username != ""
}

type TopicsConfiguration struct {
	GateControl string `yaml:"gateControl"`
	GateStatus  string `yaml:"gateStatus"`
	RfidScan    string `yaml:"rfidScan"`
}

type GateConfiguration struct {
	OpenDurationMs int `yaml:"openDurationMs"`
}

// OpenDuration is how long the actuator holds the gate open before reverting.
func (c GateConfiguration) OpenDuration() time.Duration {
	return time.Duration(c.OpenDurationMs) * time.Millisecond
}

type Configuration struct {
	Wifi     WifiConfiguration   `yaml:"wifi"`
	Mqtt     MqttConfiguration   `yaml:"mqtt"`
	Topics   TopicsConfiguration `yaml:"topics"`
	Gate     GateConfiguration   `yaml:"gate"`
	LogLevel string              `yaml:"logLevel"` // debug, info, warn, error
}

const secretMask = "********"

// Redacted returns a copy with secrets masked, for printing.
func (c Configuration) Redacted() Configuration {
	if c.Wifi.Password != "" {
		c.Wifi.Password = secretMask
	}
	if c.Mqtt.Password != "" {
		c.Mqtt.Password = secretMask
	}

	return c
}
