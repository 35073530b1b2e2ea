package main

import (
	"fmt"
	"os"

	"github.com/bran/ddsolve/internal/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
