// Package console renders resolver results for the terminal. Render
// functions return strings so they can be asserted on directly; the Run
// wrappers print them.
package console

import "github.com/gopak/depsort/internal/resolver"

type ConsoleUI struct {
	r *resolver.Resolver
}

func NewConsoleUI(r *resolver.Resolver) *ConsoleUI { return &ConsoleUI{r: r} }
