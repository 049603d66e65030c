package main

import "flag"

// rootList implements flag.Value, collecting repeated -root search-path
// flags that feed resolver.Locate, in the order given on the command line.
type rootList []string

func (r *rootList) String() string     { return "" }
func (r *rootList) Set(s string) error { *r = append(*r, s); return nil }
func (r *rootList) Get() interface{}   { return *r }

// nsList implements flag.Value, collecting repeated -ns namespace names to
// resolve and load before the interactive loop starts.
type nsList []string

func (n *nsList) String() string     { return "" }
func (n *nsList) Set(s string) error { *n = append(*n, s); return nil }
func (n *nsList) Get() interface{}   { return *n }

// newFlagSet builds the command-line surface: -with (repeatable) preloads
// a source file directly into the session before the interactive loop
// starts; -root and -ns feed the dependency resolver to locate and load
// whole namespaces (and everything they transitively require) in
// dependency order.
func newFlagSet(withFiles *fileList, roots *rootList, namespaces *nsList) *flag.FlagSet {
	fs := flag.NewFlagSet("cljrepl", flag.ContinueOnError)
	fs.Var(withFiles, "with", "Load `filename` before starting the interactive session (can be specified multiple times)")
	fs.Var(roots, "root", "Search `root` for -ns namespace resolution (can be specified multiple times; default: . and src)")
	fs.Var(namespaces, "ns", "Resolve and load `namespace` and its transitive requires before starting the session (can be specified multiple times)")
	return fs
}
