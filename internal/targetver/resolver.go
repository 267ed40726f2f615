package targetver

import (
	"context"
	"strings"

	"github.com/vk/schemabind/internal/ctxlog"
)

// Candidate is one prioritized source of a target version. Get is only
// invoked if every earlier candidate came back blank.
type Candidate struct {
	Name string
	Get  func() string
}

// Resolve walks candidates in order and returns the first non-blank value
// along with the name of the candidate that supplied it. Later candidates
// are not evaluated. Callers are expected to terminate the list with a
// guaranteed-present fallback (see Candidates); if nothing supplies a value
// the result is empty, which only happens with a caller-built list.
func Resolve(ctx context.Context, candidates []Candidate) (name, value string) {
	logger := ctxlog.FromContext(ctx)

	for _, c := range candidates {
		v := strings.TrimSpace(c.Get())
		if v == "" {
			continue
		}
		logger.Debug("Resolved target version for generated sources.", "source", c.Name, "version", v)
		return c.Name, v
	}
	return "", ""
}
