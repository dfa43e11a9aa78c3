package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/logging"
	"github.com/gopak/depsort/internal/resolver"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [name]",
		Short: "Report repeated identifiers in a package's dependency tree, or in all of them",
		Args:  cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			r := resolver.New(cfg)
			names := r.Names()
			if len(args) == 1 {
				names = args[:1]
			}
			bad := 0
			for _, n := range names {
				id, found, err := r.Check(n)
				if err != nil {
					return err
				}
				if found {
					bad++
					logging.Error(fmt.Sprintf("%s: dependency %q appears more than once", n, id))
					continue
				}
				logging.Success("resolvable: " + n)
			}
			if bad > 0 {
				return fmt.Errorf("%d package(s) with repeated dependencies", bad)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
