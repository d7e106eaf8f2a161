// Package main provides the CLI entrypoint for neo-explorer.
//
// neo-explorer is a batch tool that:
//   - Loads NASA's near-Earth object dataset (CSV) and close-approach
//     dataset (JSON)
//   - Links every close approach to its owning object by primary designation
//   - Reports data-quality findings such as unlinked approaches
//   - Exports the linked approaches back out as CSV or JSON
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
