package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func (c *ConsoleUI) RunOrder(name string, plain bool) error {
	order, err := c.r.BuildOrder(name)
	if err != nil {
		return err
	}
	if plain {
		for _, id := range order {
			fmt.Println(id)
		}
		return nil
	}
	fmt.Print(renderOrder(name, order))
	return nil
}

func renderOrder(root string, order []string) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint(root) + "\n")
	if len(order) == 0 {
		b.WriteString("no dependencies\n")
		return b.String()
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Package"})
	for i, id := range order {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), id})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
