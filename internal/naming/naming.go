// Package naming derives output names and picks conflict-free targets.
package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// trailingIndex matches one trailing page-number suffix such as "_1",
// "-02" or a bare "7".
var trailingIndex = regexp.MustCompile(`[_-]?[0-9]+$`)

// DerivePrefix returns the output name stem for a page set whose first
// base name (in page order) is firstBase. The trailing index is stripped
// once; the result may be empty when the whole name was an index, and the
// caller substitutes its fallback stem.
func DerivePrefix(firstBase string) string {
	return trailingIndex.ReplaceAllString(firstBase, "")
}

// NextFreeFile returns dir/stem+ext, or with _1, _2, ... appended to stem
// until the name is unused. The check is not atomic against concurrent
// writers.
func NextFreeFile(dir, stem, ext string) string {
	target := filepath.Join(dir, stem+ext)
	for n := 1; taken(target); n++ {
		target = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
	}
	return target
}

// NextFreeDir applies the same policy to a directory name under dir.
func NextFreeDir(dir, name string) string {
	target := filepath.Join(dir, name)
	for n := 1; taken(target); n++ {
		target = filepath.Join(dir, fmt.Sprintf("%s_%d", name, n))
	}
	return target
}

// taken reports whether any entry (file, dir, dangling symlink) already
// claims the path.
func taken(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
