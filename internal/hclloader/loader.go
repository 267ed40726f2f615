package hclloader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/ctxlog"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL option loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level blocks of a configuration document.
type fileRoot struct {
	Generate *generateBlock `hcl:"generate,block"`
	Host     *hostBlock     `hcl:"host,block"`
	Remain   hcl.Body       `hcl:",remain"`
}

// Load parses the document at path and overlays it onto the defaults.
func (l *Loader) Load(ctx context.Context, path string) (*config.Options, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if root.Generate == nil {
		return nil, fmt.Errorf("configuration file %s has no generate block", path)
	}

	opts := config.DefaultOptions()
	if err := root.Generate.mergeInto(&opts); err != nil {
		return nil, fmt.Errorf("invalid generate block in %s: %w", path, err)
	}
	if root.Host != nil {
		root.Host.mergeInto(&opts)
	}

	logger.Debug("HCL loading complete.", "path", path)
	return &opts, nil
}
