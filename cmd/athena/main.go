package main

import (
	"os"

	"github.com/bnema/athena-partnership/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
