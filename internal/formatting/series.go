package formatting

import (
	"fmt"
	"strconv"
	"strings"

	"mcp-fred/internal/fred"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// dateLayout is the calendar date format used in all rendered output.
const dateLayout = "2006-01-02"

// seriesTableStyle is a border-free variant of the default go-pretty style,
// keeping the report a plain two-column table.
var seriesTableStyle = func() table.Style {
	style := table.StyleDefault
	style.Options.DrawBorder = false
	style.Options.SeparateColumns = true
	style.Options.SeparateHeader = true
	style.Options.SeparateRows = false
	return style
}()

// RenderSeries renders a normalized observation set as a text report with a
// header block (series id, count, date span) followed by a DATE/VALUE table.
//
// When the set holds more than limit entries only the trailing limit entries
// are kept, preserving their relative order; the header counts and date span
// describe the windowed set. A limit of zero or less disables truncation and
// returns the full sequence.
//
// dropped is the number of records the normalizer discarded; when nonzero a
// footer line reports it.
//
// An empty observation set renders as a single explanatory line naming the
// series. That message is deliberately distinct from any transport failure
// text: it means the upstream was reachable but had nothing usable.
func RenderSeries(seriesID string, observations []fred.Observation, limit int, dropped int) string {
	observations = window(observations, limit)
	if len(observations) == 0 {
		return NoData(seriesID)
	}

	minDate, maxDate := observations[0].Date, observations[0].Date
	for _, obs := range observations[1:] {
		if obs.Date.Before(minDate) {
			minDate = obs.Date
		}
		if obs.Date.After(maxDate) {
			maxDate = obs.Date
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Series: %s\n", seriesID)
	fmt.Fprintf(&b, "Observations: %d\n", len(observations))
	fmt.Fprintf(&b, "Period: %s to %s\n\n", minDate.Format(dateLayout), maxDate.Format(dateLayout))

	tw := table.NewWriter()
	tw.SetStyle(seriesTableStyle)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "VALUE", Align: text.AlignRight},
	})
	tw.AppendHeader(table.Row{"DATE", "VALUE"})
	for _, obs := range observations {
		tw.AppendRow(table.Row{obs.Date.Format(dateLayout), formatValue(obs.Value)})
	}
	b.WriteString(tw.Render())

	if dropped > 0 {
		fmt.Fprintf(&b, "\n\n%d observations dropped (non-numeric values)", dropped)
	}
	return b.String()
}

// NoData is the message for a series the upstream could be queried for but
// returned nothing usable. It must stay distinct from transport failure
// texts so a missing series is never mistaken for an unreachable upstream.
func NoData(seriesID string) string {
	return fmt.Sprintf("No data retrieved for series '%s'. Verify series ID validity or connectivity.", seriesID)
}

// window keeps the trailing limit entries of the sequence. The order stays
// untouched, so the result is the chronologically most recent observations
// when the upstream order is ascending. limit <= 0 means no truncation.
func window(observations []fred.Observation, limit int) []fred.Observation {
	if limit <= 0 || len(observations) <= limit {
		return observations
	}
	return observations[len(observations)-limit:]
}

// formatValue renders a value with the minimal number of digits needed to
// round-trip, so 5.50 prints as 5.5 and 5.25 as 5.25.
func formatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
