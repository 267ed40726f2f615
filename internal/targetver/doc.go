// Package targetver determines the effective language-version target for
// generated sources by walking an ordered list of candidate sources and
// taking the first one that supplies a value. The final candidate derives a
// version from the executing environment and never comes back empty, so
// resolution itself can never fail.
package targetver
