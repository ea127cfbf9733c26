// Package firmware converts between the configuration record and the
// config.h header compiled into the gate controller firmware.
package firmware

// Names of the defines the firmware reads.
const (
	DefineWifiSSID         = "WIFI_SSID"
	DefineWifiPassword     = "WIFI_PASSWORD"
	DefineMqttServer       = "MQTT_SERVER"
	DefineMqttPort         = "MQTT_PORT"
	DefineMqttUser         = "MQTT_USER"
	DefineMqttPassword     = "MQTT_PASSWORD"
	DefineTopicGateControl = "MQTT_TOPIC_GATE_CONTROL"
	DefineTopicGateStatus  = "MQTT_TOPIC_GATE_STATUS"
	DefineTopicRfidScan    = "MQTT_TOPIC_RFID_SCAN"
	DefineGateOpenDuration = "GATE_OPEN_DURATION_MS"

	includeGuard = "CONFIG_H"
)
