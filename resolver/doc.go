// Package resolver implements the namespace dependency resolver (spec.md
// §4.5): it extracts `(ns ...)` declarations from a set of source files,
// builds a dependency graph keyed by namespace name, computes a
// leaves-first load order with lvlath's dfs.TopologicalSort (no in-degree
// pass of Kahn's kind is run here), and reports every
// dependency cycle (not just the first) when the graph cannot be ordered.
//
// Graph construction and traversal are grounded on
// github.com/katalvlaran/lvlath's core.Graph and dfs.TopologicalSort.
package resolver
