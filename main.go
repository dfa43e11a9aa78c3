package main

import (
	"os"

	"github.com/gopak/depsort/cmd"
	"github.com/gopak/depsort/internal/logging"
)

func main() {
	defer logging.Close()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
