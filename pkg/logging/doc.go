// Package logging provides structured logging for mcp-fred built on the
// standard slog package.
//
// All log entries carry a subsystem identifier so output can be filtered
// per component:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("FredClient", "fetched %d observations", n)
//	logging.Error("Server", err, "stdio transport terminated")
//
// Subsystems in use: Bootstrap, Config, FredClient, Normalizer, Server.
//
// When the server runs with the stdio transport, stdout belongs to the MCP
// protocol; every log writer in this process points at stderr.
package logging
