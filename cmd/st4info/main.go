package main

import (
	"os"

	"github.com/msto63/st4info/cmd/st4info/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
