package firmware

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/supby/gatecfg/internal/configuration"
)

var headerTemplate = template.Must(template.New("config.h").Funcs(template.FuncMap{
	"c": quote,
}).Parse(`/*
 * Configuration file for ESP32 Gate Controller
 * Generated by gatecfg, edit configuration.yaml instead
 */

#ifndef {{.Guard}}
#define {{.Guard}}

// WiFi Configuration
#define {{.D.WifiSSID}} {{c .Cfg.Wifi.SSID}}
#define {{.D.WifiPassword}} {{c .Cfg.Wifi.Password}}

// MQTT Configuration
#define {{.D.MqttServer}} {{c .Cfg.Mqtt.Address}}  // MQTT broker address
#define {{.D.MqttPort}} {{.Cfg.Mqtt.Port}}
#define {{.D.MqttUser}} {{c .Cfg.Mqtt.Username}}  // Leave empty if no authentication
#define {{.D.MqttPassword}} {{c .Cfg.Mqtt.Password}}

// MQTT Topics
#define {{.D.TopicGateControl}} {{c .Cfg.Topics.GateControl}}
#define {{.D.TopicGateStatus}} {{c .Cfg.Topics.GateStatus}}
#define {{.D.TopicRfidScan}} {{c .Cfg.Topics.RfidScan}}

// Gate Settings
#define {{.D.GateOpenDuration}} {{.Cfg.Gate.OpenDurationMs}}  // How long gate stays open (milliseconds)

#endif
`))

type defineNames struct {
	WifiSSID         string
	WifiPassword     string
	MqttServer       string
	MqttPort         string
	MqttUser         string
	MqttPassword     string
	TopicGateControl string
	TopicGateStatus  string
	TopicRfidScan    string
	GateOpenDuration string
}

// Render writes cfg as a firmware config.h.
func Render(w io.Writer, cfg configuration.Configuration) error {
	return headerTemplate.Execute(w, struct {
		Guard string
		D     defineNames
		Cfg   configuration.Configuration
	}{
		Guard: includeGuard,
		D: defineNames{
			WifiSSID:         DefineWifiSSID,
			WifiPassword:     DefineWifiPassword,
			MqttServer:       DefineMqttServer,
			MqttPort:         DefineMqttPort,
			MqttUser:         DefineMqttUser,
			MqttPassword:     DefineMqttPassword,
			TopicGateControl: DefineTopicGateControl,
			TopicGateStatus:  DefineTopicGateStatus,
			TopicRfidScan:    DefineTopicRfidScan,
			GateOpenDuration: DefineGateOpenDuration,
		},
		Cfg: cfg,
	})
}

// quote renders s as a C string literal. Control bytes become three digit
// octal escapes so a following digit is never read as part of the escape.
func quote(s string) string {
	b := strings.Builder{}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\' || ch == '"':
			b.WriteByte('\\')
			b.WriteByte(ch)
		case ch == '\n':
			b.WriteString(`\n`)
		case ch == '\r':
			b.WriteString(`\r`)
		case ch == '\t':
			b.WriteString(`\t`)
		case ch < 0x20 || ch == 0x7f:
			fmt.Fprintf(&b, "\\%03o", ch)
		default:
			b.WriteByte(ch)
		}
	}
	b.WriteByte('"')

	return b.String()
}
