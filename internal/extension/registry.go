package extension

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Registry holds the registered constructors for each extension point. The
// two points are independent and share no state beyond living in the same
// registry value.
type Registry struct {
	annotators    map[string]func() Annotator
	ruleFactories map[string]func() RuleFactory
}

// New creates a Registry pre-populated with the built-in defaults.
func New() *Registry {
	r := &Registry{
		annotators:    make(map[string]func() Annotator),
		ruleFactories: make(map[string]func() RuleFactory),
	}
	r.RegisterAnnotator(DefaultAnnotatorName, func() Annotator { return NoopAnnotator{} })
	r.RegisterRuleFactory(DefaultRuleFactoryName, func() RuleFactory { return BaseRuleFactory{} })
	return r
}

// RegisterAnnotator registers a named annotator constructor.
func (r *Registry) RegisterAnnotator(name string, ctor func() Annotator) {
	if _, exists := r.annotators[name]; exists {
		panic(fmt.Sprintf("annotator with name '%s' already registered", name))
	}
	slog.Debug("Registering annotator.", "name", name)
	r.annotators[name] = ctor
}

// RegisterRuleFactory registers a named rule-factory constructor.
func (r *Registry) RegisterRuleFactory(name string, ctor func() RuleFactory) {
	if _, exists := r.ruleFactories[name]; exists {
		panic(fmt.Sprintf("rule factory with name '%s' already registered", name))
	}
	slog.Debug("Registering rule factory.", "name", name)
	r.ruleFactories[name] = ctor
}

// ResolveAnnotator returns an instance of the named annotator. A blank name
// yields the built-in default; an unknown name is a configuration error
// listing the registered identifiers.
func (r *Registry) ResolveAnnotator(name string) (Annotator, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultAnnotatorName
	}
	ctor, ok := r.annotators[name]
	if !ok {
		return nil, fmt.Errorf("custom_annotator %q is not a registered annotator: registered names are [%s]",
			name, strings.Join(sortedKeys(r.annotators), ", "))
	}
	return ctor(), nil
}

// ResolveRuleFactory returns an instance of the named rule factory, with the
// same blank/unknown semantics as ResolveAnnotator.
func (r *Registry) ResolveRuleFactory(name string) (RuleFactory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultRuleFactoryName
	}
	ctor, ok := r.ruleFactories[name]
	if !ok {
		return nil, fmt.Errorf("custom_rule_factory %q is not a registered rule factory: registered names are [%s]",
			name, strings.Join(sortedKeys(r.ruleFactories), ", "))
	}
	return ctor(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
