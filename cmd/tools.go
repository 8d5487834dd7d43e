package cmd

import (
	"mcp-fred/internal/mcpserver"
	pkgstrings "mcp-fred/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newToolsCmd creates the Cobra command that prints the advertised tool
// catalog. Useful for inspecting the server without wiring up an MCP client.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server advertises",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"NAME", "DESCRIPTION"})
			for _, tool := range mcpserver.Tools() {
				t.AppendRow(table.Row{
					tool.Name,
					pkgstrings.TruncateDescription(tool.Description, pkgstrings.DefaultDescriptionMaxLen),
				})
			}
			t.Render()
		},
	}
}
