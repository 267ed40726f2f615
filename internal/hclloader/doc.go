// Package hclloader reads the user's HCL configuration document and
// produces the raw config.Options for a run. A document holds one generate
// block with the option surface and an optional host block with build
// environment facts. Anything left unset keeps its documented default.
package hclloader
