package cmd

import (
	"errors"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/resolver"
	"github.com/gopak/depsort/internal/ui/console"
)

func init() {
	var plain bool
	cmd := &cobra.Command{
		Use:   "order [name]",
		Short: "Print the build order for a package's dependencies",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			r := resolver.New(cfg)
			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				names := r.Names()
				if len(names) == 0 {
					return errors.New("no packages declared")
				}
				if err := survey.AskOne(&survey.Select{
					Message: "Resolve which package?",
					Options: names,
				}, &name); err != nil {
					return err
				}
			}
			ui := console.NewConsoleUI(r)
			return ui.RunOrder(name, plain)
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one package per line without the table")
	rootCmd.AddCommand(cmd)
}
