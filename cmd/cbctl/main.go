// main.go - Analytics report CLI for clarityboard
package main

import (
	"fmt"
	"os"

	"clarityboard/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "cbctl: %v\n", err)
		os.Exit(1)
	}
}
