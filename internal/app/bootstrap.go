package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mcp-fred/internal/config"
	"mcp-fred/internal/credential"
	"mcp-fred/internal/fred"
	"mcp-fred/internal/mcpserver"
	"mcp-fred/pkg/logging"
)

// Application bundles everything needed to serve the FRED tool catalog.
type Application struct {
	config    *Config
	fredCfg   config.Config
	mcpServer *mcpserver.Server
}

// NewApplication performs the bootstrap sequence: logging, configuration,
// and server wiring. The FRED API key is deliberately not resolved here;
// the credential provider reads it lazily on the first tool call so the
// server can start (and advertise its tools) without one.
func NewApplication(cfg *Config) (*Application, error) {
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	// Stdout carries the MCP protocol in stdio mode; all logs go to stderr.
	logging.Init(appLogLevel, os.Stderr)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}
	fredCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration from %s", configPath)
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flag overrides win over the config file.
	if cfg.Transport != "" {
		fredCfg.Server.Transport = cfg.Transport
	}
	if cfg.Host != "" {
		fredCfg.Server.Host = cfg.Host
	}
	if cfg.Port != 0 {
		fredCfg.Server.Port = cfg.Port
	}

	creds := credential.NewEnvProvider()
	client := fred.NewClient(creds, fred.WithBaseURL(fredCfg.FRED.BaseURL))

	return &Application{
		config:    cfg,
		fredCfg:   fredCfg,
		mcpServer: mcpserver.NewServer(client, creds),
	}, nil
}

// Run serves the MCP protocol until the transport terminates or the process
// is interrupted. SIGINT and SIGTERM trigger a graceful shutdown.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info("Bootstrap", "Serving FRED tools (transport: %s)", a.fredCfg.Server.Transport)
	err := a.mcpServer.Start(ctx, a.fredCfg.Server)
	if err != nil && ctx.Err() == nil {
		logging.Error("Bootstrap", err, "Server terminated")
		return err
	}
	logging.Info("Bootstrap", "Server stopped")
	return nil
}
