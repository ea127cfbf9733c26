package configuration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type configurationService struct {
	configuration Configuration
}

func (s *configurationService) GetConfiguration() Configuration {
	return s.configuration
}

// Init loads filename over the compiled defaults. An empty filename yields
// the defaults alone.
func Init(filename string) (ConfigurationService, error) {
	cfg := Default()
	if filename == "" {
		return &configurationService{configuration: cfg}, nil
	}

	buf, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read configuration file %v: %w", filename, err)
	}

	cfg, err = Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("configuration file %v: %w", filename, err)
	}

	return &configurationService{configuration: cfg}, nil
}

// Parse decodes YAML over the compiled defaults. Keys not present keep their
// default value.
func Parse(buf []byte) (Configuration, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
		return Configuration{}, err
	}

	return cfg, nil
}

func Marshal(cfg Configuration) ([]byte, error) {
	return yaml.Marshal(cfg)
}
