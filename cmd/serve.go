package cmd

import (
	"context"
	"fmt"

	"mcp-fred/internal/app"

	"github.com/spf13/cobra"
)

// serveDebug enables verbose logging across the application.
var serveDebug bool

// serveConfigPath specifies a custom configuration directory. When empty,
// configuration is loaded from the per-user default directory.
var serveConfigPath string

// serveTransport selects the MCP transport (stdio or streamable-http),
// overriding the config file when set.
var serveTransport string

// serveHost and servePort set the bind address for the streamable-http
// transport; ignored for stdio.
var (
	serveHost string
	servePort int
)

// serveCmd starts the MCP server. This is the command an MCP client
// configuration points at.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the FRED MCP server",
	Long: `Starts the MCP server and blocks until the client closes the stream
or the process is interrupted.

By default the server speaks the MCP protocol over stdin/stdout, which is
what AI assistant configurations expect:

  { "command": "mcp-fred", "args": ["serve"] }

With --transport streamable-http the server binds --host:--port instead.

Logs always go to stderr; stdout stays reserved for protocol messages.

Configuration is read from config.yaml in --config-path (default:
~/.config/mcp-fred). The FRED API key is never part of the config file;
set the FRED_API_KEY environment variable.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(serveDebug, serveConfigPath, serveTransport, serveHost, servePort)

	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Custom configuration directory")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "", "MCP transport: stdio or streamable-http (default from config)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind host for streamable-http")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Bind port for streamable-http")
}
