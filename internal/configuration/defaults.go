package configuration

// Values compiled into every build. A configuration file may override any of
// them one at a time.
const (
	DefaultWifiSSID     = "YOUR_WIFI_SSID"
	DefaultWifiPassword = "YOUR_WIFI_PASSWORD"

	DefaultMqttAddress  = "192.168.1.100"
	DefaultMqttPort     = 1883
	DefaultMqttUsername = "" // empty means no authentication
	DefaultMqttPassword = ""

	DefaultTopicGateControl = "parking/gate/control"
	DefaultTopicGateStatus  = "parking/gate/status"
	DefaultTopicRfidScan    = "parking/rfid/scan"

	DefaultGateOpenDurationMs = 5000

	DefaultLogLevel = "info"
)

func Default() Configuration {
	return Configuration{
		Wifi: WifiConfiguration{
			SSID:     DefaultWifiSSID,
			Password: DefaultWifiPassword,
		},
		Mqtt: MqttConfiguration{
			Address:  DefaultMqttAddress,
			Port:     DefaultMqttPort,
			Username: DefaultMqttUsername,
			Password: DefaultMqttPassword,
		},
		Topics: TopicsConfiguration{
			GateControl: DefaultTopicGateControl,
			GateStatus:  DefaultTopicGateStatus,
			RfidScan:    DefaultTopicRfidScan,
		},
		Gate: GateConfiguration{
			OpenDurationMs: DefaultGateOpenDurationMs,
		},
		LogLevel: DefaultLogLevel,
	}
}
