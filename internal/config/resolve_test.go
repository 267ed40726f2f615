package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/schemabind/internal/ctxlog"
	"github.com/vk/schemabind/internal/extension"
	"github.com/vk/schemabind/internal/filter"
	"github.com/vk/schemabind/internal/strategy"
	"github.com/vk/schemabind/internal/targetver"
)

// newSchemaDir creates a directory with a couple of schema files in it.
func newSchemaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "internal"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "internal", "b.json"), []byte("{}"), 0644))
	return dir
}

func TestResolveSingleDirectoryMode(t *testing.T) {
	dir := newSchemaDir(t)
	opts := DefaultOptions()
	opts.SourceDirectory = dir

	plan, err := Resolve(context.Background(), opts, extension.New())
	require.NoError(t, err)

	require.Equal(t, 1, plan.SourceCount())
	for loc := range plan.Sources() {
		assert.True(t, loc.Dir)
		assert.Equal(t, filepath.Clean(dir), loc.Raw)
	}

	// Single-directory mode gets a real pattern filter even without
	// configured patterns, so default excludes still apply.
	_, isPatterns := plan.Filter.(*filter.Patterns)
	assert.True(t, isPatterns)

	assert.Equal(t, strategy.Jackson2, plan.Config.Style)
	assert.Equal(t, strategy.NonNull, plan.Config.Inclusion)
	assert.Equal(t, strategy.JSONSchema, plan.Config.Kind)
	assert.Equal(t, strategy.OS, plan.Config.SortOrder)
	assert.Equal(t, extension.DefaultAnnotatorName, plan.Config.Annotator.Name())
	assert.Equal(t, extension.DefaultRuleFactoryName, plan.Config.RuleFactory.Name())
	assert.NotEmpty(t, plan.Config.EffectiveTargetVersion)
	assert.Equal(t, []rune("- _"), plan.Config.WordDelimiters)
}

func TestResolveMultiLocationMode(t *testing.T) {
	opts := DefaultOptions()
	opts.SourcePaths = []string{"a.json", "b/", "a.json"}

	plan, err := Resolve(context.Background(), opts, extension.New())
	require.NoError(t, err)

	assert.Equal(t, 3, plan.SourceCount())
	var raws []string
	for loc := range plan.Sources() {
		raws = append(raws, loc.Raw)
	}
	assert.Equal(t, []string{"a.json", "b", "a.json"}, raws)

	// No directory root to anchor patterns against: always-include filter.
	assert.Equal(t, filter.All(), plan.Filter)
}

func TestResolveFailsOnBothOrNeitherSourceMode(t *testing.T) {
	opts := DefaultOptions()
	_, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)

	opts.SourceDirectory = "schemas"
	opts.SourcePaths = []string{"a.json"}
	_, err = Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveFailsOnPatternsWithMultiMode(t *testing.T) {
	opts := DefaultOptions()
	opts.SourcePaths = []string{"a.json", "b/"}
	opts.Excludes = []string{"**/internal/**"}

	_, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source_paths")
}

func TestResolveFailsOnPatternsWithoutDirectory(t *testing.T) {
	// source_directory pointing at a plain file cannot anchor patterns.
	dir := t.TempDir()
	file := filepath.Join(dir, "only.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))

	opts := DefaultOptions()
	opts.SourceDirectory = file
	opts.Includes = []string{"**/*.json"}

	_, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readable directory")
}

func TestResolveFailsOnUnrecognizedStrategy(t *testing.T) {
	dir := newSchemaDir(t)

	testCases := []struct {
		name   string
		mutate func(o *Options)
	}{
		{name: "annotation style", mutate: func(o *Options) { o.AnnotationStyle = "jackson3" }},
		{name: "inclusion level", mutate: func(o *Options) { o.InclusionLevel = "SOMETIMES" }},
		{name: "source type", mutate: func(o *Options) { o.SourceType = "xml" }},
		{name: "sort order", mutate: func(o *Options) { o.SourceSortOrder = "random" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.SourceDirectory = dir
			tc.mutate(&opts)

			_, err := Resolve(context.Background(), opts, extension.New())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "allowed values")
		})
	}
}

func TestResolveFailsOnUnknownExtension(t *testing.T) {
	dir := newSchemaDir(t)
	opts := DefaultOptions()
	opts.SourceDirectory = dir
	opts.CustomAnnotator = "com.example.DoesNotExist"

	_, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "com.example.DoesNotExist")
}

func TestResolveSkipStopsBeforeSourceSelection(t *testing.T) {
	// No sources configured at all; with skip set that must not matter.
	opts := DefaultOptions()
	opts.Skip = true

	plan, err := Resolve(context.Background(), opts, extension.New())
	require.NoError(t, err)
	assert.True(t, plan.Config.Skip)
	assert.Equal(t, 0, plan.SourceCount())
}

func TestResolveSkipStillValidatesStrategies(t *testing.T) {
	opts := DefaultOptions()
	opts.Skip = true
	opts.AnnotationStyle = "bogus"

	_, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
}

func TestResolveTargetVersionPriority(t *testing.T) {
	dir := newSchemaDir(t)
	opts := DefaultOptions()
	opts.SourceDirectory = dir
	opts.Env = targetver.BuildEnv{
		Properties: map[string]string{"compiler.source": "11", "compiler.release": "17"},
	}

	plan, err := Resolve(context.Background(), opts, extension.New())
	require.NoError(t, err)
	assert.Equal(t, "11", plan.Config.EffectiveTargetVersion)
	assert.Equal(t, "compiler.source property", plan.Config.TargetVersionSource)
}

func TestResolveWarnsOnDeprecatedOption(t *testing.T) {
	dir := newSchemaDir(t)
	opts := DefaultOptions()
	opts.SourceDirectory = dir
	opts.UseCommonsLang3 = true

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := Resolve(ctx, opts, extension.New())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "use_commons_lang3 is deprecated")
}

func TestResolveProducesNoPlanOnFailure(t *testing.T) {
	opts := DefaultOptions()
	opts.SourcePaths = []string{"a.json", "ftp://bad/x"}

	plan, err := Resolve(context.Background(), opts, extension.New())
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "ftp://bad/x")
}
