package main

import (
	"os"

	"github.com/repify/repify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
