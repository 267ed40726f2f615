// Package strategy resolves string-valued configuration options to members
// of their fixed variant sets. Each axis (annotation style, inclusion level,
// source type, source sort order) is a closed table; lookup is
// case-insensitive and exact, and anything outside the table is a
// configuration error that names the allowed values.
package strategy
