package console

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gopak/depsort/internal/config"
)

func (c *ConsoleUI) RunList(cfg config.Config) error {
	fmt.Print(renderPackages(cfg.Packages))
	return nil
}

func renderPackages(pkgs []config.Package) string {
	var b strings.Builder
	sorted := append([]config.Package{}, pkgs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Package", "Direct deps", "Depends on"})
	for _, p := range sorted {
		tw.AppendRow(table.Row{p.Name, strconv.Itoa(len(p.DependsOn)), strings.Join(p.DependsOn, ", ")})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
