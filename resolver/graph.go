package resolver

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"

	"github.com/db47h/cljr/internal/xerr"
)

// File is one input source unit (spec.md §4.5: "a set of source files as
// (path, text) pairs").
type File struct {
	Path   string
	Source string
}

// Resolved is one entry of a successful Resolve: the file, its source, and
// the namespace it declares (nil if it declared none).
type Resolved struct {
	Path   string
	Source string
	NS     *NamespaceInfo
}

// ExternalRef is a (file, namespace) pair whose required namespace is not
// present in the input set — reported as advisory information, never an
// error (spec.md §4.5 item 5).
type ExternalRef struct {
	Path string
	NS   string
}

// Result is the outcome of a successful Resolve.
type Result struct {
	Ordered    []Resolved
	Unresolved []ExternalRef
}

// Resolve parses each file's leading `(ns ...)` form, builds a directed
// graph edge required-namespace -> requiring-namespace for every require
// whose target is declared by another file in the set, and computes a
// leaves-first load order. On a dependency cycle it returns an
// *xerr.DependencyErr carrying every cycle found; per spec.md §4.5's
// invariant, no partial order is ever returned in that case.
func Resolve(files []File) (*Result, error) {
	infos := make([]*NamespaceInfo, len(files))
	nsToFile := make(map[string]int) // namespace name -> index into files/infos
	for idx, f := range files {
		info, err := ParseNamespace(f.Path, f.Source)
		if err != nil {
			return nil, err
		}
		infos[idx] = info
		if info != nil {
			nsToFile[info.Name] = idx
		}
	}

	g := core.NewGraph(core.WithDirected(true))
	nodeOf := func(idx int) string {
		if infos[idx] != nil {
			return infos[idx].Name
		}
		return "#file:" + files[idx].Path
	}
	for idx := range files {
		_ = g.AddVertex(nodeOf(idx)) // idempotent; node IDs here are never empty
	}

	var unresolved []ExternalRef
	for idx, info := range infos {
		if info == nil {
			continue
		}
		for _, req := range info.Requires {
			depIdx, ok := nsToFile[req.NS]
			if !ok {
				unresolved = append(unresolved, ExternalRef{Path: files[idx].Path, NS: req.NS})
				continue
			}
			if depIdx == idx {
				continue
			}
			if _, err := g.AddEdge(nodeOf(depIdx), nodeOf(idx), 0); err != nil {
				// Duplicate or already-present edge: harmless, the
				// dependency is already recorded.
				_ = err
			}
		}
	}

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		cycles := findAllCycles(g)
		if len(cycles) == 0 {
			// TopologicalSort failed for a reason other than a cycle we
			// could reconstruct (e.g. context cancellation never applies
			// here); surface it as a single-cycle-shaped report so callers
			// still get a DependencyErr rather than an opaque graph error.
			cycles = []string{err.Error()}
		}
		return nil, &xerr.DependencyErr{Cycles: cycles}
	}

	fileOfNode := make(map[string]int, len(files))
	for idx := range files {
		fileOfNode[nodeOf(idx)] = idx
	}
	out := &Result{Unresolved: unresolved}
	for _, node := range order {
		idx := fileOfNode[node]
		out.Ordered = append(out.Ordered, Resolved{
			Path:   files[idx].Path,
			Source: files[idx].Source,
			NS:     infos[idx],
		})
	}
	return out, nil
}

// findAllCycles performs a DFS back-edge walk modeled on
// github.com/katalvlaran/lvlath/graph's dfsTraverse (depth/parent
// bookkeeping), adapted to collect every cycle in the graph rather than
// stopping at the first (spec.md §4.5 item 4).
func findAllCycles(g *core.Graph) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	state := make(map[string]int)
	parent := make(map[string]string)
	var stack []string
	var cycles []string
	seen := make(map[string]bool)

	var visit func(id string)
	visit = func(id string) {
		state[id] = gray
		stack = append(stack, id)
		neighbors, err := g.Neighbors(id)
		if err == nil {
			sort.Slice(neighbors, func(i, j int) bool { return neighbors[i].To < neighbors[j].To })
			for _, e := range neighbors {
				if e.From != id {
					continue
				}
				switch state[e.To] {
				case white:
					parent[e.To] = id
					visit(e.To)
				case gray:
					cyc := cycleFromStack(stack, e.To)
					key := fmt.Sprint(cyc)
					if !seen[key] {
						seen[key] = true
						cycles = append(cycles, formatCycle(cyc))
					}
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[id] = black
	}

	ids := g.Vertices()
	sort.Strings(ids)
	for _, id := range ids {
		if state[id] == white {
			visit(id)
		}
	}
	return cycles
}

// cycleFromStack extracts start..top(stack), closing back at start, then
// reverses it. The DFS walks edges dependency -> requirer (the direction
// they were added in), so the raw stack order reads dependency-first; the
// `requires` relation reads requirer-first (spec.md §8 scenario 5: "a
// requires b, b requires c, c requires a" reports as "a -> b -> c -> a"),
// so the walk order must be flipped before reporting.
func cycleFromStack(stack []string, start string) []string {
	for i, id := range stack {
		if id == start {
			cyc := append([]string{}, stack[i:]...)
			cyc = append(cyc, start)
			reverse(cyc)
			return cyc
		}
	}
	return []string{start, start}
}

func reverse(ids []string) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

func formatCycle(ids []string) string {
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += " -> "
		}
		s += id
	}
	return s
}
