package fred

import "time"

// SeriesQuery describes one observations request. SeriesID is opaque to this
// system; no validation against a known catalog is performed. StartDate and
// EndDate are passed through verbatim as upstream query parameters, so the
// upstream remains the source of truth for date format errors.
type SeriesQuery struct {
	SeriesID  string
	StartDate string
	EndDate   string
}

// RawObservation is one observation record exactly as FRED returns it.
// Value is a string on the wire and may be the "." missing-value marker.
type RawObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// Observation is one cleaned (date, value) data point. Value is always a
// finite number; records that fail to parse never become Observations.
type Observation struct {
	Date  time.Time
	Value float64
}

// SeriesMeta holds the descriptive fields of a series. Every field is
// optional on the upstream side; absent fields stay empty and are rendered
// with a placeholder by the formatter.
type SeriesMeta struct {
	SeriesID           string `json:"id"`
	Title              string `json:"title"`
	Frequency          string `json:"frequency"`
	Units              string `json:"units"`
	SeasonalAdjustment string `json:"seasonal_adjustment"`
	LastUpdated        string `json:"last_updated"`
	Notes              string `json:"notes"`
}

// observationsEnvelope is the top-level shape of the observations endpoint.
// The pointer distinguishes "key absent" from "key present but empty".
type observationsEnvelope struct {
	Observations *[]RawObservation `json:"observations"`
}

// seriesEnvelope is the top-level shape of the series metadata endpoint.
type seriesEnvelope struct {
	Seriess []SeriesMeta `json:"seriess"`
}
