// Command heesch computes Heesch numbers of polyiamonds on the triangular
// lattice. It exposes three subcommands: compute (one shape), search (all
// shapes of a size), and count (census sizes).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "heesch:", err)
		os.Exit(1)
	}
}
