package main

import (
	"os"

	"github.com/zjrosen/numsign/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
