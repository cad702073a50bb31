// Package main provides the CLI entrypoint for remapper.
//
// remapper reconstructs stable identities for the classes, methods, fields
// and parameters of the newest generation in a chain of bytecode snapshots:
//   - Reads the chain from a YAML fixture, oldest generation first
//   - Maps every adjacent pair and recovers symbols lost for a generation
//   - Prints the inherited or freshly minted identity of every symbol
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
