package generate

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/vk/schemabind/internal/filter"
	"github.com/vk/schemabind/internal/strategy"
)

// walkDir expands a directory location into the candidate files a generation
// engine would read, in the order dictated by the configured sort order, and
// keeps only paths the filter accepts.
func walkDir(root string, order strategy.SortOrder, f filter.Filter) ([]string, error) {
	switch order {
	case strategy.FilesFirst:
		return walkSorted(root, f, true)
	case strategy.SubdirsFirst:
		return walkSorted(root, f, false)
	default:
		return walkOS(root, f)
	}
}

// walkOS leaves ordering to the operating system's directory listing.
func walkOS(root string, f filter.Filter) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && f.Accept(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// walkSorted recursively lists root with a case-sensitive sort per
// directory. filesFirst selects breadth-first (files before subdirectories)
// versus depth-first (subdirectories before files) traversal.
func walkSorted(root string, f filter.Filter, filesFirst bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var files, dirs []string
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if e.IsDir() {
			dirs = append(dirs, path)
		} else if f.Accept(path) {
			files = append(files, path)
		}
	}

	var out []string
	appendDirs := func() error {
		for _, d := range dirs {
			nested, err := walkSorted(d, f, filesFirst)
			if err != nil {
				return err
			}
			out = append(out, nested...)
		}
		return nil
	}

	if filesFirst {
		out = append(out, files...)
		if err := appendDirs(); err != nil {
			return nil, err
		}
	} else {
		if err := appendDirs(); err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}
