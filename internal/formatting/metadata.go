package formatting

import (
	"fmt"
	"strings"

	"mcp-fred/internal/fred"

	pkgstrings "mcp-fred/pkg/strings"
)

// notesMaxLen caps the rendered notes field. An ellipsis is appended only
// when the original notes actually exceed this length.
const notesMaxLen = 200

// missingField is the literal placeholder for metadata fields the upstream
// omitted.
const missingField = "N/A"

// RenderSeriesInfo renders a series metadata record, one line per field.
// Absent fields render as the N/A placeholder.
func RenderSeriesInfo(meta fred.SeriesMeta) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Series Information: %s\n", meta.SeriesID)
	fmt.Fprintf(&b, "Title: %s\n", orMissing(meta.Title))
	fmt.Fprintf(&b, "Frequency: %s\n", orMissing(meta.Frequency))
	fmt.Fprintf(&b, "Units: %s\n", orMissing(meta.Units))
	fmt.Fprintf(&b, "Seasonal Adjustment: %s\n", orMissing(meta.SeasonalAdjustment))
	fmt.Fprintf(&b, "Last Updated: %s\n", orMissing(meta.LastUpdated))
	fmt.Fprintf(&b, "Notes: %s", pkgstrings.Truncate(orMissing(meta.Notes), notesMaxLen))
	return b.String()
}

func orMissing(field string) string {
	if field == "" {
		return missingField
	}
	return field
}
