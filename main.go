package main

import (
	"mcp-fred/cmd"

	"github.com/joho/godotenv"
)

// Version can be set during build with -ldflags
var version = "dev"

func main() {
	// Load FRED_API_KEY and friends from a local .env when present.
	// Missing files are fine; the environment stays authoritative.
	_ = godotenv.Load()

	cmd.SetVersion(version)
	cmd.Execute()
}
