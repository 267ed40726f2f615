// Package filter implements the include/exclude pattern predicate applied to
// candidate schema files during directory traversal. Patterns are glob-style
// (single-segment * and directory-spanning **), evaluated case-insensitively
// relative to a base directory, with an always-applied set of default
// excludes for version-control and build-artifact directories.
package filter
