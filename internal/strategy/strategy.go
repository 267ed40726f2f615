package strategy

import (
	"fmt"
	"sort"
	"strings"
)

// resolve looks raw up in table, ignoring case. No fuzzy matching, no
// defaulting on ambiguity: either the value is in the table or the option is
// rejected with the full allowed set in the message.
func resolve[T any](option, raw string, table map[string]T) (T, error) {
	if v, ok := table[strings.ToLower(raw)]; ok {
		return v, nil
	}

	allowed := make([]string, 0, len(table))
	for name := range table {
		allowed = append(allowed, name)
	}
	sort.Strings(allowed)

	var zero T
	return zero, fmt.Errorf("unrecognized %s value %q: allowed values are [%s]", option, raw, strings.Join(allowed, ", "))
}
