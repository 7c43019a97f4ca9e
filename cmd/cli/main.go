package main

import (
	"fmt"
	"os"

	"page-search-go/pkg/cli"
)

func main() {
	if err := cli.NewCommandLine().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
