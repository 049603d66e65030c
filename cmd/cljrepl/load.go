package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/cljr/resolver"
)

// resolveNamespaces locates each name in names (and everything it
// transitively requires) under roots, orders the resulting file set with
// the dependency resolver, and returns it leaves-first. Unresolved require
// targets are returned alongside for advisory logging; a dependency cycle
// is a fatal error (spec.md §4.5's "no partial order is ever returned").
func resolveNamespaces(names []string, roots []string) (*resolver.Result, error) {
	var files []resolver.File
	seen := make(map[string]bool)
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[n] = true
	}
	queue := append([]string{}, names...)

	for len(queue) > 0 {
		ns := queue[0]
		queue = queue[1:]
		if seen[ns] {
			continue
		}
		seen[ns] = true

		path, ok := resolver.Locate(ns, roots)
		if !ok {
			if !requested[ns] {
				continue // left for Resolve to report as unresolved
			}
			return nil, errors.Errorf("namespace %s: no source file found under %v", ns, roots)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		files = append(files, resolver.File{Path: path, Source: string(data)})

		info, err := resolver.ParseNamespace(path, string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing namespace declaration in %s", path)
		}
		if info == nil {
			continue
		}
		for _, req := range info.Requires {
			if !seen[req.NS] {
				queue = append(queue, req.NS)
			}
		}
	}

	return resolver.Resolve(files)
}
