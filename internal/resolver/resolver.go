// Package resolver turns manifest declarations into dependency trees and
// answers build-order and duplicate queries over them.
package resolver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/deptree"
	"github.com/gopak/depsort/internal/logging"
)

type Resolver struct {
	cfg      config.Config
	pkgByIdx map[string]int
}

func New(cfg config.Config) *Resolver {
	r := &Resolver{
		cfg:      cfg,
		pkgByIdx: make(map[string]int, len(cfg.Packages)),
	}
	for i, p := range cfg.Packages {
		r.pkgByIdx[p.Name] = i
	}
	return r
}

// Names returns every declared package name, sorted.
func (r *Resolver) Names() []string {
	out := make([]string, 0, len(r.pkgByIdx))
	for n := range r.pkgByIdx {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Tree expands name's depends_on declarations into an owned tree: each
// dependency becomes a child node whose own declarations are expanded the
// same way. A name declared under two parents is expanded under both, so
// shared dependencies show up as duplicated identifiers rather than shared
// nodes. A name already being expanded higher on the current path is
// emitted as a bare leaf; that keeps declared cycles finite and leaves the
// repeated identifier in place for HasCycle to find.
func (r *Resolver) Tree(name string) (deptree.Node, error) {
	i, ok := r.pkgByIdx[name]
	if !ok {
		return deptree.Node{}, errors.New("unknown package: " + name)
	}
	return r.expand(r.cfg.Packages[i], map[string]bool{})
}

func (r *Resolver) expand(p config.Package, path map[string]bool) (deptree.Node, error) {
	n := deptree.Node{ID: p.Name}
	path[p.Name] = true
	for _, d := range p.DependsOn {
		if path[d] {
			n.Deps = append(n.Deps, deptree.Node{ID: d})
			continue
		}
		j, ok := r.pkgByIdx[d]
		if !ok {
			return deptree.Node{}, fmt.Errorf("unknown package %q required by %q", d, p.Name)
		}
		child, err := r.expand(r.cfg.Packages[j], path)
		if err != nil {
			return deptree.Node{}, err
		}
		n.Deps = append(n.Deps, child)
	}
	delete(path, p.Name)
	return n, nil
}

// BuildOrder returns the identifiers below name in build order; name
// itself is not included.
func (r *Resolver) BuildOrder(name string) ([]string, error) {
	t, err := r.Tree(name)
	if err != nil {
		return nil, err
	}
	order := t.DependencyList()
	logging.Debug(fmt.Sprintf("build order for %s: %s", name, strings.Join(order, " -> ")))
	return order, nil
}

// Check walks name's expanded tree and returns the first identifier that
// appears twice, if any.
func (r *Resolver) Check(name string) (string, bool, error) {
	t, err := r.Tree(name)
	if err != nil {
		return "", false, err
	}
	id, found := t.Repeat()
	return id, found, nil
}
