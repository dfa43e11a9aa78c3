// Package deptree holds the dependency tree that package resolution runs
// on. Nodes are plain values without pointers between them: every child in
// Deps belongs to exactly one parent, so the structure is always a finite
// tree and a cycle can only show up as the same identifier declared at two
// places in it.
package deptree

// Node is one vertex of a dependency tree: an identifier plus the ordered
// dependencies declared for it. Nothing enforces identifier uniqueness at
// construction time; HasCycle exists to report exactly that.
type Node struct {
	ID   string
	Deps []Node
}

// frame is one suspended node during the iterative walk. Children before
// next have been fully visited.
type frame struct {
	node *Node
	next int
}

// DependencyList flattens the tree below n into build order: a post-order
// depth-first walk, so every identifier appears after everything it
// depends on, with siblings kept in declared order. The receiver's own ID
// is not part of its list. A node with no dependencies yields an empty
// list.
//
// An explicit stack is used instead of recursion so that very deep trees
// cannot exhaust the call stack.
func (n *Node) DependencyList() []string {
	out := []string{}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		i := len(stack) - 1
		if stack[i].next < len(stack[i].node.Deps) {
			child := &stack[i].node.Deps[stack[i].next]
			stack[i].next++
			stack = append(stack, frame{node: child})
			continue
		}
		done := stack[i].node
		stack = stack[:i]
		// the root's own ID stays out of its own list
		if len(stack) > 0 {
			out = append(out, done.ID)
		}
	}
	return out
}

// HasCycle reports whether any identifier occurs more than once during a
// depth-first walk of the tree.
//
// The seen set spans the whole traversal and is never reduced when a
// branch completes, so two unrelated branches declaring the same
// identifier (a diamond) report true exactly like a re-declaration on a
// single path. A positive result therefore means "identifier conflict",
// not necessarily an unresolvable cycle.
func (n *Node) HasCycle() bool {
	_, found := n.Repeat()
	return found
}

// Repeat walks the tree like HasCycle and returns the first identifier
// encountered twice, in depth-first order. It stops at the first hit.
func (n *Node) Repeat() (string, bool) {
	seen := map[string]struct{}{}
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[cur.ID]; ok {
			return cur.ID, true
		}
		seen[cur.ID] = struct{}{}
		// push in reverse so declared order pops first
		for i := len(cur.Deps) - 1; i >= 0; i-- {
			stack = append(stack, &cur.Deps[i])
		}
	}
	return "", false
}
