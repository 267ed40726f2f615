package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/schemabind/internal/filter"
	"github.com/vk/schemabind/internal/strategy"
)

// newTree builds:
//
//	root/alpha.json
//	root/zeta.json
//	root/nested/beta.json
func newTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0755))
	for _, f := range []string{"alpha.json", "zeta.json", "nested/beta.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("{}"), 0644))
	}
	return root
}

func names(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var out []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestWalkFilesFirst(t *testing.T) {
	root := newTree(t)

	files, err := walkDir(root, strategy.FilesFirst, filter.All())
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.json", "zeta.json", "nested/beta.json"}, names(t, root, files))
}

func TestWalkSubdirsFirst(t *testing.T) {
	root := newTree(t)

	files, err := walkDir(root, strategy.SubdirsFirst, filter.All())
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/beta.json", "alpha.json", "zeta.json"}, names(t, root, files))
}

func TestWalkOSVisitsEverything(t *testing.T) {
	root := newTree(t)

	files, err := walkDir(root, strategy.OS, filter.All())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alpha.json", "zeta.json", "nested/beta.json"}, names(t, root, files))
}

func TestWalkHonorsFilter(t *testing.T) {
	root := newTree(t)
	f, err := filter.New(root, nil, []string{"nested/**"})
	require.NoError(t, err)

	files, err := walkDir(root, strategy.FilesFirst, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.json", "zeta.json"}, names(t, root, files))
}

func TestWalkMissingRootFails(t *testing.T) {
	_, err := walkDir(filepath.Join(t.TempDir(), "absent"), strategy.FilesFirst, filter.All())
	require.Error(t, err)
}
