// Package sourceloc turns configured source-location strings into addressable
// input locations. A location is either a single schema document or a
// directory to be traversed by the generation engine; this package only
// parses and sequences locations, it never expands directories itself.
package sourceloc
