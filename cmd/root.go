package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the mcp-fred application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mcp-fred",
	Short: "MCP server for FRED macroeconomic data",
	Long: `mcp-fred exposes FRED (Federal Reserve Economic Data) time series
retrieval as MCP tools. AI assistants connect over stdio (or streamable
HTTP) and call get_series / get_series_info to fetch observations and
series metadata.

The FRED_API_KEY environment variable supplies the upstream credential;
it is read lazily on the first tool call.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This is called from the main package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "mcp-fred version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newToolsCmd())
}
