package main

import (
	"fmt"
	"os"

	"github.com/vegasq/csvutil/cmd/csvutil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s error: %v\n", os.Args[0], err)
		os.Exit(1)
	}
}
