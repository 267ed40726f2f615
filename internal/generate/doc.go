// Package generate is the seam to the schema-to-code generation engine. The
// real engine is an external collaborator; this package defines the contract
// it receives (a validated plan) and ships a dry-run implementation that
// walks the selected sources and reports what would be generated.
package generate
