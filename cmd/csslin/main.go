package main

import (
	"os"

	"github.com/cssverse/csslin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(2)
	}
}
