package filter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter decides whether a candidate file path is part of the input set.
// Implementations are pure predicates: construction may touch the filesystem
// to canonicalize the base directory, Accept never does.
type Filter interface {
	Accept(path string) bool
}

// all includes every candidate. Used when no filtering is configured.
type all struct{}

func (all) Accept(string) bool { return true }

// All returns the always-include filter.
func All() Filter { return all{} }

// Patterns matches candidate paths against include and exclude globs
// relative to a base directory. A path is accepted iff it matches at least
// one include pattern (or none were configured) and matches no exclude
// pattern and no default exclude. Exclude always wins over include.
type Patterns struct {
	base     string
	includes []string
	excludes []string
}

// New builds a pattern filter anchored at baseDir. It fails with a
// configuration error when baseDir cannot be resolved to a real, readable
// directory. Patterns are normalized once here: separators to slashes,
// lowercased for case-insensitive matching, and a trailing slash expands to
// everything beneath that directory.
func New(baseDir string, includes, excludes []string) (*Patterns, error) {
	canonical, err := canonicalDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("filter base directory %q: %w", baseDir, err)
	}

	f := &Patterns{base: canonical}
	for _, p := range includes {
		f.includes = append(f.includes, normalizePattern(p))
	}
	for _, p := range excludes {
		f.excludes = append(f.excludes, normalizePattern(p))
	}
	f.excludes = append(f.excludes, defaultExcludes...)

	return f, nil
}

// Accept reports whether path is part of the input set. Paths outside the
// base directory are never accepted.
func (f *Patterns) Accept(path string) bool {
	rel, ok := f.relativize(path)
	if !ok {
		return false
	}

	included := len(f.includes) == 0
	for _, p := range f.includes {
		if match(p, rel) {
			included = true
			break
		}
	}
	if !included {
		return false
	}

	for _, p := range f.excludes {
		if match(p, rel) {
			return false
		}
	}
	return true
}

// relativize makes path relative to the base directory in slash form,
// lowercased to mirror the patterns.
func (f *Patterns) relativize(path string) (string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(f.base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return strings.ToLower(filepath.ToSlash(rel)), true
}

func match(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, rel)
	return err == nil && ok
}

func normalizePattern(p string) string {
	p = filepath.ToSlash(strings.TrimSpace(p))
	p = strings.TrimPrefix(p, "./")
	if strings.HasSuffix(p, "/") {
		p += "**"
	}
	return strings.ToLower(p)
}

func canonicalDir(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("not set")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory")
	}
	// Readability check up front so pattern evaluation never has to care.
	d, err := os.Open(abs)
	if err != nil {
		return "", err
	}
	d.Close()
	return abs, nil
}
