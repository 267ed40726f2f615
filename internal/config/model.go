package config

import (
	"iter"

	"github.com/vk/schemabind/internal/extension"
	"github.com/vk/schemabind/internal/filter"
	"github.com/vk/schemabind/internal/sourceloc"
	"github.com/vk/schemabind/internal/strategy"
)

// RunConfig is the immutable snapshot of every resolved option for one
// invocation. It is built once by Resolve, validated, and treated as
// read-only by everything downstream; it is safe to share across however
// many workers the generation engine uses.
type RunConfig struct {
	Options

	// Resolved strategy axes. The raw strings they came from remain in
	// Options for diagnostics.
	Style     strategy.AnnotationStyle
	Inclusion strategy.InclusionLevel
	Kind      strategy.SourceType
	SortOrder strategy.SortOrder

	// Resolved extension bindings.
	Annotator   extension.Annotator
	RuleFactory extension.RuleFactory

	// EffectiveTargetVersion is the outcome of candidate resolution, and
	// TargetVersionSource names the candidate that supplied it.
	EffectiveTargetVersion string
	TargetVersionSource    string

	// WordDelimiters is PropertyWordDelimiters as a character set.
	WordDelimiters []rune
}

// Plan is the complete, validated output of one resolution: the
// configuration, the ordered source locations, and the active file filter.
// A Plan is only ever constructed whole; a failed resolution produces none
// of it.
type Plan struct {
	Config *RunConfig

	// Filter is the pattern filter when filtering is active, otherwise the
	// always-include filter.
	Filter filter.Filter

	locations []sourceloc.Location
}

// Sources returns the ordered source-location sequence. The locations were
// verified during resolution; the engine consumes the sequence once and must
// not retain it past the run.
func (p *Plan) Sources() iter.Seq[sourceloc.Location] {
	return func(yield func(sourceloc.Location) bool) {
		for _, loc := range p.locations {
			if !yield(loc) {
				return
			}
		}
	}
}

// SourceCount reports how many locations the plan will feed the engine.
func (p *Plan) SourceCount() int {
	return len(p.locations)
}
