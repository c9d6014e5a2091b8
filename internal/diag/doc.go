// Package diag holds the diagnostic data model shared by the adapter and
// the engine boundary: locations, diagnostics, the collecting sink and
// the duplicate-message combiner.
package diag
