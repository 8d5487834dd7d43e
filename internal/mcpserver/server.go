package mcpserver

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"mcp-fred/internal/config"
	"mcp-fred/internal/credential"
	"mcp-fred/internal/fred"
	"mcp-fred/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "mcp-fred"
	serverVersion = "1.0.0"
)

// credentialMissingText is the fixed response for every tool call made
// without a configured API key. It precedes argument validation, so the
// text is identical no matter which tool was called or with what arguments.
const credentialMissingText = "ERROR: FRED_API_KEY environment variable not set"

type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Server serves the FRED tool catalog over the MCP protocol. It holds no
// per-invocation state; each tool call is processed to completion before
// the next one is accepted by the stdio transport.
type Server struct {
	client    *fred.Client
	creds     *credential.Provider
	mcpServer *server.MCPServer
	handlers  map[string]toolHandler
}

// NewServer creates the MCP server and registers the static tool catalog.
func NewServer(client *fred.Client, creds *credential.Provider) *Server {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{
		client:    client,
		creds:     creds,
		mcpServer: mcpServer,
	}
	s.handlers = map[string]toolHandler{
		ToolGetSeries:     s.handleGetSeries,
		ToolGetSeriesInfo: s.handleGetSeriesInfo,
	}

	for _, tool := range Tools() {
		handler, exists := s.handlers[tool.Name]
		if !exists {
			panic(fmt.Sprintf("tool %s has no registered handler", tool.Name))
		}
		mcpServer.AddTool(tool, s.withCredentialCheck(handler))
	}

	return s
}

// withCredentialCheck wraps a tool handler so the credential check runs
// before argument validation; without a key every tool resolves to the same
// fixed text result, never a protocol fault. Calls naming a tool outside the
// catalog never reach a handler: the protocol layer rejects them against the
// advertised tool list.
func (s *Server) withCredentialCheck(handler toolHandler) func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if _, err := s.creds.Get(); err != nil {
			return mcp.NewToolResultError(credentialMissingText), nil
		}
		return handler(ctx, request)
	}
}

// Start serves the MCP protocol on the configured transport and blocks until
// the context is cancelled or the transport terminates. For stdio that means
// running until the duplex stream closes.
func (s *Server) Start(ctx context.Context, serverConfig config.ServerConfig) error {
	switch serverConfig.Transport {
	case config.TransportStreamableHTTP:
		addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)

		httpServer := server.NewStreamableHTTPServer(s.mcpServer)
		errCh := make(chan error, 1)
		go func() {
			if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		case err := <-errCh:
			return err
		}

	case config.TransportStdio, "":
		logging.Info("Server", "Starting MCP server with stdio transport")
		return server.NewStdioServer(s.mcpServer).Listen(ctx, os.Stdin, os.Stdout)

	default:
		return fmt.Errorf("unknown transport %q", serverConfig.Transport)
	}
}
