// Package app bootstraps and runs the mcp-fred server process.
//
// The Application follows a two-phase pattern: the bootstrap phase
// initializes logging, loads configuration, and wires the credential
// provider, FRED client, and MCP server together; the execution phase
// serves the configured transport until the stdio stream closes or the
// process receives SIGINT/SIGTERM.
package app
