// Package config defines the raw option surface of one generation run, the
// fully-resolved immutable RunConfig handed to the generation engine, and
// the resolution pipeline that turns one into the other.
//
// Resolution is strictly ordered: target version, strategy and extension
// probes, the cross-option validator, source verification, then filter
// construction. It either produces a complete Plan or fails with a
// configuration error before any document is read; there are no partial
// commits. Format-specific loaders (HCL lives in the hclloader package)
// produce the Options value this package consumes.
package config
