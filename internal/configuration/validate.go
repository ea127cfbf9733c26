package configuration

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrInvalid marks a value that no build can use.
	ErrInvalid = errors.New("invalid value")
	// ErrPlaceholder marks a value left at the shipped placeholder.
	ErrPlaceholder = errors.New("placeholder value")
)

// FieldError names the configuration key that failed.
type FieldError struct {
	Key    string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalid(key string, format string, v ...interface{}) error {
	return &FieldError{Key: key, Reason: fmt.Sprintf(format, v...), Err: ErrInvalid}
}

var hostnameLabel = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks every value and returns all problems found, each naming
// its key.
func Validate(cfg Configuration) error {
	var err error

	err = multierr.Append(err, validateAddress(cfg.Mqtt.Address))

	if cfg.Mqtt.Port < 1 || cfg.Mqtt.Port > 65535 {
		err = multierr.Append(err, invalid("mqtt.port", "must be in [1, 65535], got %d", cfg.Mqtt.Port))
	}

	if !cfg.Mqtt.Authenticated() && cfg.Mqtt.Password != "" {
		err = multierr.Append(err, invalid("mqtt.password", "set while mqtt.username is empty"))
	}

	topics := []struct {
		key   string
		value string
	}{
		{"topics.gateControl", cfg.Topics.GateControl},
		{"topics.gateStatus", cfg.Topics.GateStatus},
		{"topics.rfidScan", cfg.Topics.RfidScan},
	}
	seen := make(map[string]string, len(topics))
	for _, t := range topics {
		if terr := validateTopic(t.key, t.value); terr != nil {
			err = multierr.Append(err, terr)
			continue
		}
		if other, ok := seen[t.value]; ok {
			err = multierr.Append(err, invalid(t.key, "duplicates %v (%q)", other, t.value))
			continue
		}
		seen[t.value] = t.key
	}

	if cfg.Gate.OpenDurationMs <= 0 {
		err = multierr.Append(err, invalid("gate.openDurationMs", "must be positive, got %d", cfg.Gate.OpenDurationMs))
	}

	if !logLevels[cfg.LogLevel] {
		err = multierr.Append(err, invalid("logLevel", "unknown level %q", cfg.LogLevel))
	}

	return err
}

// ValidateForDeployment runs Validate and also rejects network credentials
// still holding the shipped placeholders.
func ValidateForDeployment(cfg Configuration) error {
	err := Validate(cfg)

	switch cfg.Wifi.SSID {
	case "":
		err = multierr.Append(err, invalid("wifi.ssid", "must not be empty"))
	case DefaultWifiSSID:
		err = multierr.Append(err, &FieldError{Key: "wifi.ssid", Reason: "still the placeholder " + DefaultWifiSSID, Err: ErrPlaceholder})
	}

	// empty password is an open network
	if cfg.Wifi.Password == DefaultWifiPassword {
		err = multierr.Append(err, &FieldError{Key: "wifi.password", Reason: "still the placeholder " + DefaultWifiPassword, Err: ErrPlaceholder})
	}

	return err
}

func validateAddress(address string) error {
	const key = "mqtt.address"

	if address == "" {
		return invalid(key, "must not be empty")
	}
	if net.ParseIP(address) != nil {
		return nil
	}
	if len(address) > 253 {
		return invalid(key, "hostname longer than 253 characters")
	}

	for _, label := range strings.Split(strings.TrimSuffix(address, "."), ".") {
		if !hostnameLabel.MatchString(label) {
			return invalid(key, "%q is neither an IP address nor a hostname", address)
		}
	}

	return nil
}

func validateTopic(key string, topic string) error {
	if topic == "" {
		return invalid(key, "must not be empty")
	}
	if strings.ContainsAny(topic, "+#") {
		return invalid(key, "wildcards are not allowed in %q", topic)
	}
	if strings.ContainsRune(topic, 0) {
		return invalid(key, "contains NUL")
	}

	return nil
}
