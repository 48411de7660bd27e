package defs

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

const (
	// FileSuffix is the suffix of definition file names that Discover will find.
	FileSuffix = "Strings.txt"
)

var _ strscreen.Provider = (*Files)(nil)

// Files is a strscreen.Provider that reads definitions from each file in order.
// Files are read each time Entries is called.
type Files []string

func (f Files) Entries() ([]strscreen.Entry, error) {
	var all []strscreen.Entry
	for _, path := range f {
		entries, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// File is a convenience for a Files provider with a single path.
func File(path string) Files {
	return Files{path}
}

// Discover walks root looking for definition files, which have names ending in FileSuffix.
// The returned paths are sorted.
func Discover(root string) (Files, error) {
	var found Files
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), FileSuffix) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(found)
	return found, nil
}
