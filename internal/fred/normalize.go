package fred

import (
	"math"
	"strconv"
	"time"

	"mcp-fred/pkg/logging"
)

// dateLayout is the calendar date format FRED uses for observation dates.
const dateLayout = "2006-01-02"

// Normalize converts raw observation records into typed Observations.
//
// Records whose value is missing, non-numeric (FRED marks missing values
// with "."), NaN, or infinite are dropped, as are records whose date does
// not parse as a calendar date. Dropping is per record and never aborts the
// batch: partial, malformed upstream data must not fail the whole query.
//
// Upstream record order is preserved; no sorting, deduplication, or
// interpolation happens here. Empty input yields empty output.
//
// The second return value is the number of dropped records.
func Normalize(raw []RawObservation) ([]Observation, int) {
	observations := make([]Observation, 0, len(raw))
	dropped := 0

	for _, record := range raw {
		value, err := strconv.ParseFloat(record.Value, 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			dropped++
			continue
		}
		date, err := time.Parse(dateLayout, record.Date)
		if err != nil {
			dropped++
			continue
		}
		observations = append(observations, Observation{Date: date, Value: value})
	}

	if dropped > 0 {
		logging.Debug("Normalizer", "dropped %d of %d raw observations", dropped, len(raw))
	}
	return observations, dropped
}
