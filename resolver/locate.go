package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// extensions are tried in this order, per spec.md §6.
var extensions = []string{"cljr", "clj", "cljc"}

// defaultRoots is used when Locate is called with no roots (spec.md §6).
var defaultRoots = []string{".", "src"}

// Locate maps namespace name "a.b.c" to a candidate relative file path
// "a/b/c.{cljr,clj,cljc}" under each of roots in order, trying extensions
// in the listed order; the first existing file wins. If roots is empty,
// defaultRoots is used.
func Locate(ns string, roots []string) (string, bool) {
	if len(roots) == 0 {
		roots = defaultRoots
	}
	rel := filepath.Join(strings.Split(ns, ".")...)
	for _, root := range roots {
		for _, ext := range extensions {
			candidate := filepath.Join(root, rel+"."+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}
