package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/resolver"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			ui := console.NewConsoleUI(resolver.New(cfg))
			return ui.RunList(cfg)
		},
	}
	rootCmd.AddCommand(cmd)
}
