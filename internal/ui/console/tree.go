package console

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/list"

	"github.com/gopak/depsort/internal/deptree"
)

func (c *ConsoleUI) RunTree(name string) error {
	t, err := c.r.Tree(name)
	if err != nil {
		return err
	}
	fmt.Println(renderTree(t))
	return nil
}

func renderTree(n deptree.Node) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedLight)
	var walk func(deptree.Node)
	walk = func(nd deptree.Node) {
		lw.AppendItem(nd.ID)
		lw.Indent()
		for _, c := range nd.Deps {
			walk(c)
		}
		lw.UnIndent()
	}
	walk(n)
	return lw.Render()
}
