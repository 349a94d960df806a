// Command carboncalc runs the emissions calculation engine from the command
// line: it computes scope 1/2/3 emissions for a batch of activity records and
// prints an assessment summary, and it enumerates the embedded emission
// factor dataset.
package main

import (
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
