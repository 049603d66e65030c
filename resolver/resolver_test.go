package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/cljr/internal/xerr"
	"github.com/db47h/cljr/resolver"
)

func TestParseNamespaceBareAndVectorRequires(t *testing.T) {
	info, err := resolver.ParseNamespace("a.cljr", `(ns a.core
  (:require b.core
            [c.core :as c :refer [frob]]))`)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "a.core", info.Name)
	require.Len(t, info.Requires, 2)
	assert.Equal(t, "b.core", info.Requires[0].NS)
	assert.Equal(t, "c.core", info.Requires[1].NS)
	assert.Equal(t, "c", info.Requires[1].Alias)
	assert.Equal(t, []string{"frob"}, info.Requires[1].Refer)
}

func TestParseNamespaceNonNSFormReturnsNil(t *testing.T) {
	info, err := resolver.ParseNamespace("a.cljr", `(+ 1 2)`)
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestResolveOrdersLeavesFirst(t *testing.T) {
	files := []resolver.File{
		{Path: "z.cljr", Source: `(ns z (:require y x))`},
		{Path: "x.cljr", Source: `(ns x)`},
		{Path: "y.cljr", Source: `(ns y (:require x))`},
	}
	res, err := resolver.Resolve(files)
	require.NoError(t, err)
	var order []string
	for _, r := range res.Ordered {
		order = append(order, r.NS.Name)
	}
	assert.Equal(t, []string{"x", "y", "z"}, order)
}

func TestResolveReportsUnresolvedExternalReference(t *testing.T) {
	files := []resolver.File{
		{Path: "a.cljr", Source: `(ns a.core (:require some.external.lib))`},
	}
	res, err := resolver.Resolve(files)
	require.NoError(t, err)
	require.Len(t, res.Unresolved, 1)
	assert.Equal(t, "a.cljr", res.Unresolved[0].Path)
	assert.Equal(t, "some.external.lib", res.Unresolved[0].NS)
}

func TestResolveDetectsCycleAndReportsAllCycles(t *testing.T) {
	files := []resolver.File{
		{Path: "a.cljr", Source: `(ns a (:require b))`},
		{Path: "b.cljr", Source: `(ns b (:require a))`},
	}
	_, err := resolver.Resolve(files)
	require.Error(t, err)
	depErr, ok := err.(*xerr.DependencyErr)
	require.True(t, ok, "expected *xerr.DependencyErr, got %T", err)
	require.NotEmpty(t, depErr.Cycles)
}

func TestResolveCycleReportsRequiresDirection(t *testing.T) {
	// a requires b, b requires c, c requires a: the cycle must read
	// "a -> b -> c -> a", following the requires relation, not its reverse.
	files := []resolver.File{
		{Path: "a.cljr", Source: `(ns a (:require b))`},
		{Path: "b.cljr", Source: `(ns b (:require c))`},
		{Path: "c.cljr", Source: `(ns c (:require a))`},
	}
	_, err := resolver.Resolve(files)
	require.Error(t, err)
	depErr, ok := err.(*xerr.DependencyErr)
	require.True(t, ok, "expected *xerr.DependencyErr, got %T", err)
	require.Len(t, depErr.Cycles, 1)
	assert.Equal(t, "a -> b -> c -> a", depErr.Cycles[0])
}

func TestLocateFindsFirstExistingExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a", "b"), 0o755))
	target := filepath.Join(dir, "a", "b", "c.clj")
	require.NoError(t, os.WriteFile(target, []byte("(ns a.b.c)"), 0o644))

	path, ok := resolver.Locate("a.b.c", []string{dir})
	require.True(t, ok)
	assert.Equal(t, target, path)
}

func TestLocateNoCandidateReturnsFalse(t *testing.T) {
	dir := t.TempDir()
	_, ok := resolver.Locate("nope.nowhere", []string{dir})
	assert.False(t, ok)
}
