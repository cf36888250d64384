package main

import (
	"os"

	"github.com/mrpowers-io/falsa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
