package sourceloc

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Location is one addressable input: a single document or a traversable
// directory. Locations are produced fresh for each run and never mutated
// after creation.
type Location struct {
	// Raw is the configured string, after path normalization.
	Raw string
	// URL is the parsed form. File locations use the file scheme with an
	// absolute path.
	URL *url.URL
	// Dir reports whether the location is a directory on the local
	// filesystem. Remote locations are always treated as single documents.
	Dir bool
}

// Path returns the local filesystem path for file-scheme locations, or ""
// for remote ones.
func (l Location) Path() string {
	if l.URL.Scheme != "file" {
		return ""
	}
	return l.URL.Path
}

func (l Location) String() string {
	return l.Raw
}

// Parse interprets a configured location string. It accepts absolute or
// relative filesystem paths and file/http/https URLs; anything else is a
// configuration error naming the offending string. Local paths are not
// required to exist yet, but when they do, directory-ness is captured here so
// downstream code never re-stats.
func Parse(raw string) (Location, error) {
	if strings.TrimSpace(raw) == "" {
		return Location{}, fmt.Errorf("source location must not be blank")
	}

	normalized := filepath.Clean(raw)

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		switch u.Scheme {
		case "file":
			return fromPath(raw, u.Path)
		case "http", "https":
			return Location{Raw: raw, URL: u}, nil
		default:
			return Location{}, fmt.Errorf("source location %q uses unsupported scheme %q", raw, u.Scheme)
		}
	}

	return fromPath(raw, normalized)
}

// fromPath builds a file-scheme location from a local path. Single-character
// schemes fall through to here so Windows-style drive paths parse as paths.
func fromPath(raw, path string) (Location, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Location{}, fmt.Errorf("source location %q is not a valid path: %w", raw, err)
	}

	loc := Location{
		Raw: filepath.Clean(path),
		URL: &url.URL{Scheme: "file", Path: abs},
	}
	if info, err := os.Stat(abs); err == nil {
		loc.Dir = info.IsDir()
	}
	return loc, nil
}
