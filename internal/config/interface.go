package config

import "context"

// Loader is the interface for a format-specific option loader. It reads the
// user's configuration document and produces the raw Options value, with
// documented defaults applied for anything left unset.
type Loader interface {
	Load(ctx context.Context, path string) (*Options, error)
}
