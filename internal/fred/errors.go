package fred

import "errors"

// ErrNoObservations indicates the upstream replied with valid JSON that
// carries no "observations" key. The upstream was reachable; the series is
// absent or the query matched nothing. Distinct from any transport failure.
var ErrNoObservations = errors.New("no observations in upstream response")

// ErrSeriesNotFound indicates the series metadata endpoint replied without
// a usable "seriess" entry for the requested id.
var ErrSeriesNotFound = errors.New("series not found")
