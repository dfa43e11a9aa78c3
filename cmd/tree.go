package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/resolver"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tree <name>",
		Short: "Render a package's expanded dependency tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			r := resolver.New(cfg)
			ui := console.NewConsoleUI(r)
			return ui.RunTree(args[0])
		},
	}
	rootCmd.AddCommand(cmd)
}
