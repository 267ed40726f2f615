package extension

// Annotator decorates generated types with serialization annotations, in
// addition to whatever the configured annotation style emits. The concrete
// annotation work happens in the generation engine; this layer only decides
// which implementation is active.
type Annotator interface {
	// Name is the identifier the annotator was registered under.
	Name() string
}

// RuleFactory produces the schema-to-type mapping rules the generation
// engine applies. The built-in factory covers standard behavior; a custom
// one can override individual rules.
type RuleFactory interface {
	// Name is the identifier the factory was registered under.
	Name() string
}

// DefaultAnnotatorName identifies the built-in no-op annotator.
const DefaultAnnotatorName = "noop"

// DefaultRuleFactoryName identifies the built-in rule factory.
const DefaultRuleFactoryName = "default"

// NoopAnnotator is the built-in annotator that adds nothing.
type NoopAnnotator struct{}

func (NoopAnnotator) Name() string { return DefaultAnnotatorName }

// BaseRuleFactory is the built-in rule factory with standard behavior.
type BaseRuleFactory struct{}

func (BaseRuleFactory) Name() string { return DefaultRuleFactoryName }
