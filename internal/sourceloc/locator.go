package sourceloc

import (
	"fmt"
	"iter"
)

// Single produces the one-element sequence for single-location mode. The
// configured string is parsed once, lazily, when the sequence is consumed.
func Single(raw string) iter.Seq2[Location, error] {
	return func(yield func(Location, error) bool) {
		yield(Parse(raw))
	}
}

// Multi produces one location per configured string, in input order,
// preserving duplicates. Each string is parsed independently; a parse
// failure is yielded in place of the location and identifies the offending
// string, letting the consumer stop there.
func Multi(raws []string) iter.Seq2[Location, error] {
	return func(yield func(Location, error) bool) {
		for _, raw := range raws {
			loc, err := Parse(raw)
			if err != nil {
				err = fmt.Errorf("source_paths entry %q: %w", raw, err)
			}
			if !yield(loc, err) {
				return
			}
		}
	}
}

// Collect drains a sequence eagerly, stopping at the first error. Resolution
// uses it to verify every configured location before any document is read;
// the generation engine receives the already-verified slice.
func Collect(seq iter.Seq2[Location, error]) ([]Location, error) {
	var locs []Location
	for loc, err := range seq {
		if err != nil {
			return nil, err
		}
		locs = append(locs, loc)
	}
	return locs, nil
}
