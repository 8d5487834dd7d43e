package config

import "mcp-fred/internal/fred"

// GetDefaultConfig returns the default configuration: stdio transport
// against the public FRED API.
func GetDefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      8090,
		},
		FRED: FREDConfig{
			BaseURL: fred.DefaultBaseURL,
		},
	}
}
