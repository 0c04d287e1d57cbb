package main

import (
	"os"

	"github.com/emap-tools/aucap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
