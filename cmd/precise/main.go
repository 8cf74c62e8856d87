package main

import (
	"fmt"
	"os"

	"github.com/solarlune/precise/cmd/precise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "precise: %v\n", err)
		os.Exit(1)
	}
}
