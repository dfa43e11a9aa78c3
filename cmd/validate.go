package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate merged manifests against the JSON Schema",
	Run: func(cmd *cobra.Command, args []string) {
		// loading and schema validation already ran in initConfig
		fmt.Println("Manifests are valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
