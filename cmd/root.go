package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gopak/depsort/internal/assets"
	"github.com/gopak/depsort/internal/config"
	"github.com/gopak/depsort/internal/logging"
)

var cfgFile string
var verbose bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "depsort",
	Short: "Dependency build-order resolver",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the manifest directory (default dir: ~/.config/depsort); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show detailed steps")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var cfgDir string
	if cfgFile != "" {
		cfgDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		cfgDir = filepath.Join(dir, "depsort")
	}
	// Ensure the manifest directory exists and holds at least the example
	_ = os.MkdirAll(cfgDir, 0o755)
	_ = assets.WriteExampleIfMissing(cfgDir)
	entries, _ := os.ReadDir(cfgDir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, e.Name()))
		}
	}
	if len(files) == 0 {
		logging.Error("no YAML manifest files found in " + cfgDir)
		os.Exit(1)
	}
	cfg, err := config.LoadFromFiles(files)
	if err != nil {
		logging.Error("manifest error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init()
	logging.SetVerbose(verbose)
}
