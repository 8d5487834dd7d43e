package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names in the static catalog.
const (
	ToolGetSeries     = "get_series"
	ToolGetSeriesInfo = "get_series_info"
)

// defaultLimit is the number of trailing observations returned when the
// caller does not supply a limit.
const defaultLimit = 100

// Tools returns the static tool catalog. The descriptors are immutable for
// the process lifetime; their schemas are advertised to MCP clients for
// client-side validation.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolGetSeries,
			mcp.WithDescription("Retrieve observations from a FRED series. "+
				"Returns time series data with date and value columns. "+
				"Common series IDs: FEDFUNDS (Fed Funds Rate), "+
				"GDP (Gross Domestic Product), CPIAUCSL (CPI Inflation), "+
				"UNRATE (Unemployment Rate), WALCL (Fed Balance Sheet)"),
			mcp.WithString("series_id",
				mcp.Required(),
				mcp.Description("FRED series identifier (e.g., FEDFUNDS, GDP, CPIAUCSL)"),
			),
			mcp.WithString("start_date",
				mcp.Description("Start date in YYYY-MM-DD format"),
			),
			mcp.WithString("end_date",
				mcp.Description("End date in YYYY-MM-DD format"),
			),
			mcp.WithNumber("limit",
				mcp.DefaultNumber(defaultLimit),
				mcp.Description("Maximum number of observations to return"),
			),
		),
		mcp.NewTool(ToolGetSeriesInfo,
			mcp.WithDescription("Get information about a FRED series including title, "+
				"frequency, units, and notes"),
			mcp.WithString("series_id",
				mcp.Required(),
				mcp.Description("FRED series identifier"),
			),
		),
	}
}
