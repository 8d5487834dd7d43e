// Package fred implements the client for the FRED (Federal Reserve Economic
// Data) HTTP API and the normalization of its observation records.
//
// API reference: https://fred.stlouisfed.org/docs/api/fred/
//
// The client performs exactly one GET per logical query, with a fixed
// 30-second timeout and no retries. Failure modes are kept distinct so
// callers never conflate them:
//
//   - transport failures and non-2xx statuses surface as wrapped errors
//   - a reachable upstream whose JSON lacks the expected top-level key
//     surfaces as ErrNoObservations / ErrSeriesNotFound
//
// Normalization is a deliberate data-cleaning step: upstream observation
// values are strings and may be non-numeric placeholders (FRED uses "." for
// missing values). Records that do not parse as finite numbers are dropped
// at the record level and never abort the batch.
package fred
