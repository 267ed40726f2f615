// Package cli parses command-line arguments into the app-level
// configuration, validating the closed-set flags (log level, log format)
// before any work starts.
package cli
