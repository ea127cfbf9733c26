package configuration

// ConfigurationService hands out the loaded configuration. Every call returns
// a copy, the loaded values never change.
type ConfigurationService interface {
	GetConfiguration() Configuration
}
