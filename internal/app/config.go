package app

// Config holds the application configuration assembled from CLI flags.
type Config struct {
	// Debug enables verbose logging across the application.
	Debug bool

	// ConfigPath is a custom configuration directory (optional). When empty
	// the per-user default directory is used.
	ConfigPath string

	// Transport overrides the configured MCP transport when non-empty.
	Transport string

	// Host and Port override the streamable-http bind address. Port zero
	// means "keep the configured value".
	Host string
	Port int
}

// NewConfig creates a new application configuration from CLI flag values.
func NewConfig(debug bool, configPath, transport, host string, port int) *Config {
	return &Config{
		Debug:      debug,
		ConfigPath: configPath,
		Transport:  transport,
		Host:       host,
		Port:       port,
	}
}
