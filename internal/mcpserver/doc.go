// Package mcpserver exposes FRED data retrieval as MCP tools.
//
// The tool catalog is static and defined at process start: get_series and
// get_series_info, each with a JSON-schema argument specification that is
// advertised verbatim to MCP clients. Advertisement does not substitute for
// runtime validation; the handlers re-check required arguments on every
// call.
//
// Every registered tool runs the same per-invocation pipeline:
//
//  1. credential check (missing API key short-circuits with a fixed text)
//  2. argument extraction with documented defaults
//  3. delegation: upstream client, then normalizer, then formatter
//  4. a single text result
//
// Data-layer problems never become protocol faults. Transport failures and
// missing series each resolve to their own well-formed text response. Calls
// naming a tool outside the catalog are rejected at the protocol layer,
// which validates tools/call against the advertised tool list before any
// handler runs.
package mcpserver
