package main

import (
	"os"

	"github.com/yuwei/qdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
