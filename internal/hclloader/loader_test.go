package hclloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemabind.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
generate {
  source_directory = "schemas"
}
`)

	opts, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "schemas", opts.SourceDirectory)
	assert.Equal(t, "generated-sources/schemabind", opts.OutputDirectory)
	assert.Equal(t, "jackson2", opts.AnnotationStyle)
	assert.Equal(t, "NON_NULL", opts.InclusionLevel)
	assert.Equal(t, "jsonschema", opts.SourceType)
	assert.Equal(t, "OS", opts.SourceSortOrder)
	assert.Equal(t, "- _", opts.PropertyWordDelimiters)
	assert.Equal(t, "UTF-8", opts.OutputEncoding)
	assert.Equal(t, "#/.", opts.RefFragmentPathDelimiters)
	assert.True(t, opts.UseDoubleNumbers)
	assert.True(t, opts.IncludeGetters)
	assert.True(t, opts.IncludeSetters)
	assert.False(t, opts.GenerateBuilders)
	assert.Empty(t, opts.FormatTypeMapping)
}

func TestLoadOverlaysConfiguredValues(t *testing.T) {
	path := writeConfig(t, `
generate {
  source_directory   = "schemas"
  output_directory   = "out/bindings"
  target_package     = "com.example.model"
  generate_builders  = true
  include_getters    = false
  annotation_style   = "gson"
  inclusion_level    = "NON_EMPTY"
  source_type        = "yamlschema"
  source_sort_order  = "FILES_FIRST"
  class_name_prefix  = "Api"
  class_name_suffix  = "Dto"
  includes           = ["**/*.json"]
  excludes           = ["**/internal/**"]
  target_version     = "17"
  custom_annotator   = "stamping"
  use_commons_lang3  = true

  custom_date_pattern      = "yyyy-MM-dd"
  custom_date_time_pattern = "yyyy-MM-dd'T'HH:mm:ss"

  format_type_mapping = {
    "date-time" = "java.time.OffsetDateTime"
    "uri"       = "java.net.URI"
  }
}

host {
  properties = {
    "compiler.source" = "11"
  }
  runtime_version = "go1.24.5"

  compiler {
    release = "17"
  }
}
`)

	opts, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "out/bindings", opts.OutputDirectory)
	assert.Equal(t, "com.example.model", opts.TargetPackage)
	assert.True(t, opts.GenerateBuilders)
	assert.False(t, opts.IncludeGetters)
	assert.True(t, opts.IncludeSetters) // untouched default
	assert.Equal(t, "gson", opts.AnnotationStyle)
	assert.Equal(t, "NON_EMPTY", opts.InclusionLevel)
	assert.Equal(t, "yamlschema", opts.SourceType)
	assert.Equal(t, "FILES_FIRST", opts.SourceSortOrder)
	assert.Equal(t, "Api", opts.ClassNamePrefix)
	assert.Equal(t, "Dto", opts.ClassNameSuffix)
	assert.Equal(t, []string{"**/*.json"}, opts.Includes)
	assert.Equal(t, []string{"**/internal/**"}, opts.Excludes)
	assert.Equal(t, "17", opts.TargetVersion)
	assert.Equal(t, "stamping", opts.CustomAnnotator)
	assert.True(t, opts.UseCommonsLang3)

	// The two date-pattern options stay independent.
	assert.Equal(t, "yyyy-MM-dd", opts.CustomDatePattern)
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ss", opts.CustomDateTimePattern)
	assert.Empty(t, opts.CustomTimePattern)

	assert.Equal(t, map[string]string{
		"date-time": "java.time.OffsetDateTime",
		"uri":       "java.net.URI",
	}, opts.FormatTypeMapping)

	assert.Equal(t, "11", opts.Env.Properties["compiler.source"])
	assert.Equal(t, "17", opts.Env.CompilerRelease)
	assert.Empty(t, opts.Env.CompilerSource)
	assert.Equal(t, "go1.24.5", opts.Env.RuntimeVersion)
}

func TestLoadRejectsMissingGenerateBlock(t *testing.T) {
	path := writeConfig(t, `
host {
  runtime_version = "go1.24.5"
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no generate block")
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `
generate {
  source_directory = "schemas"
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadRejectsNonStringFormatTypeMapping(t *testing.T) {
	path := writeConfig(t, `
generate {
  source_directory    = "schemas"
  format_type_mapping = { "date-time" = ["not", "a", "string"] }
}
`)

	_, err := NewLoader().Load(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format_type_mapping")
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	require.Error(t, err)
}
