package config

import "fmt"

// validateCross enforces the invariants that cannot be checked per-option:
// the source-location mode and its compatibility with pattern filtering.
// It runs before any filesystem work so a run either proceeds with a fully
// valid plan or does not start.
func validateCross(opts *Options) error {
	single := opts.SourceDirectory != ""
	multi := len(opts.SourcePaths) > 0

	switch {
	case single && multi:
		return fmt.Errorf("source_directory (%q) and source_paths are mutually exclusive: configure exactly one", opts.SourceDirectory)
	case !single && !multi:
		return fmt.Errorf("one of source_directory or source_paths must be provided")
	}

	if opts.filteringEnabled() {
		if multi {
			return fmt.Errorf("includes/excludes patterns are incompatible with the source_paths option")
		}
		if !single {
			return fmt.Errorf("includes/excludes patterns require the source_directory option")
		}
	}

	return nil
}
