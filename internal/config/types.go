package config

// Transport names for the MCP server.
const (
	// TransportStdio serves the MCP protocol over stdin/stdout.
	TransportStdio = "stdio"
	// TransportStreamableHTTP serves the MCP protocol over streamable HTTP.
	TransportStreamableHTTP = "streamable-http"
)

// Config is the top-level configuration structure for mcp-fred.
type Config struct {
	Server ServerConfig `yaml:"server"`
	FRED   FREDConfig   `yaml:"fred"`
}

// ServerConfig defines how the MCP server is exposed.
type ServerConfig struct {
	Transport string `yaml:"transport,omitempty"` // stdio or streamable-http (default: stdio)
	Host      string `yaml:"host,omitempty"`      // Host to bind for streamable-http (default: localhost)
	Port      int    `yaml:"port,omitempty"`      // Port to bind for streamable-http (default: 8090)
}

// FREDConfig defines how the upstream FRED API is reached. The API key is
// never part of the config file; it comes from the FRED_API_KEY environment
// variable, resolved lazily on first tool call.
type FREDConfig struct {
	BaseURL string `yaml:"baseURL,omitempty"` // Upstream base URL (default: https://api.stlouisfed.org/fred)
}
