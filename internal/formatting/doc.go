// Package formatting renders normalized FRED data as fixed-width text
// reports for MCP tool results.
//
// Output is plain text with a single content type. Rendering is a pure
// function of its inputs: formatting the same data twice yields identical
// text, and nothing here performs I/O.
package formatting
