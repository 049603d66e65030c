package resolver

import (
	"strings"

	"github.com/db47h/cljr/reader"
	"github.com/db47h/cljr/value"
)

// Require is one dependency declared in a `:require` clause: either a bare
// namespace symbol, or `[ns :as alias :refer [name ...]]`.
type Require struct {
	NS    string
	Alias string
	Refer []string
}

// NamespaceInfo is what a single `(ns ...)` form declares.
type NamespaceInfo struct {
	Name     string
	Requires []Require
}

// ParseNamespace reads the first top-level form of source. If it is not an
// `(ns ...)` form, it returns (nil, nil): per spec.md §4.5 item 1, anything
// else at that position is skipped silently at this stage.
func ParseNamespace(path, source string) (*NamespaceInfo, error) {
	form, err := reader.New(strings.NewReader(source), path).ReadOne()
	if err != nil {
		return nil, err
	}
	list, ok := form.(*value.List)
	if !ok || list.Empty() {
		return nil, nil
	}
	elems := value.ToSlice(list.Seq())
	head, ok := elems[0].(value.Symbol)
	if !ok || head.Namespace != "" || head.Name != "ns" {
		return nil, nil
	}
	if len(elems) < 2 {
		return nil, nil
	}
	name, ok := elems[1].(value.Symbol)
	if !ok {
		return nil, nil
	}
	info := &NamespaceInfo{Name: name.Name}
	for _, clause := range elems[2:] {
		cl, ok := clause.(*value.List)
		if !ok || cl.Empty() {
			continue
		}
		celems := value.ToSlice(cl.Seq())
		kw, ok := celems[0].(*value.Keyword)
		if !ok || kw.Namespace != "" || kw.Name != "require" {
			continue
		}
		for _, r := range celems[1:] {
			req, ok := parseRequire(r)
			if ok {
				info.Requires = append(info.Requires, req)
			}
		}
	}
	return info, nil
}

func parseRequire(form value.Value) (Require, bool) {
	switch f := form.(type) {
	case value.Symbol:
		return Require{NS: f.Name}, true
	case *value.Vector:
		elems := value.ToSlice(f.Seq())
		if len(elems) == 0 {
			return Require{}, false
		}
		nsSym, ok := elems[0].(value.Symbol)
		if !ok {
			return Require{}, false
		}
		req := Require{NS: nsSym.Name}
		for idx := 1; idx < len(elems); idx++ {
			kw, ok := elems[idx].(*value.Keyword)
			if !ok {
				continue
			}
			switch kw.Name {
			case "as":
				if idx+1 < len(elems) {
					if aliasSym, ok := elems[idx+1].(value.Symbol); ok {
						req.Alias = aliasSym.Name
					}
				}
				idx++
			case "refer":
				if idx+1 < len(elems) {
					if referVec, ok := elems[idx+1].(*value.Vector); ok {
						for _, n := range value.ToSlice(referVec.Seq()) {
							if sym, ok := n.(value.Symbol); ok {
								req.Refer = append(req.Refer, sym.Name)
							}
						}
					}
				}
				idx++
			}
		}
		return req, true
	default:
		return Require{}, false
	}
}
