package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"mcp-fred/internal/formatting"
	"mcp-fred/internal/fred"
	"mcp-fred/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleGetSeries handles the get_series tool.
//
// Args:
//   - series_id (required): FRED series identifier, opaque to this server
//   - start_date, end_date (optional): forwarded verbatim to the upstream
//   - limit (optional, default 100): trailing observation window
//
// One upstream GET per call. The client's failure variants map to distinct
// texts: a transport failure names the underlying error, a reachable
// upstream with no data yields the no-data message.
func (s *Server) handleGetSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID, err := request.RequireString("series_id")
	if err != nil {
		return mcp.NewToolResultError("series_id argument is required"), nil
	}

	query := fred.SeriesQuery{
		SeriesID:  seriesID,
		StartDate: request.GetString("start_date", ""),
		EndDate:   request.GetString("end_date", ""),
	}
	limit := int(request.GetFloat("limit", defaultLimit))

	raw, err := s.client.Observations(ctx, query)
	if err != nil {
		if errors.Is(err, fred.ErrNoObservations) {
			return mcp.NewToolResultText(formatting.NoData(seriesID)), nil
		}
		logging.Error("Server", err, "get_series failed for %s", seriesID)
		return mcp.NewToolResultError(fmt.Sprintf("Error retrieving series data: %v", err)), nil
	}

	observations, dropped := fred.Normalize(raw)
	return mcp.NewToolResultText(formatting.RenderSeries(seriesID, observations, limit, dropped)), nil
}

// handleGetSeriesInfo handles the get_series_info tool.
//
// Args:
//   - series_id (required): FRED series identifier
//
// A series the upstream does not know yields a not-found text distinct from
// any transport failure.
func (s *Server) handleGetSeriesInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seriesID, err := request.RequireString("series_id")
	if err != nil {
		return mcp.NewToolResultError("series_id argument is required"), nil
	}

	meta, err := s.client.SeriesInfo(ctx, seriesID)
	if err != nil {
		if errors.Is(err, fred.ErrSeriesNotFound) {
			return mcp.NewToolResultText(fmt.Sprintf("Series '%s' not found", seriesID)), nil
		}
		logging.Error("Server", err, "get_series_info failed for %s", seriesID)
		return mcp.NewToolResultError(fmt.Sprintf("Error retrieving series info: %v", err)), nil
	}

	return mcp.NewToolResultText(formatting.RenderSeriesInfo(meta)), nil
}
