// Command eulerwalk enumerates every Euler trail or circuit of a small
// undirected multigraph by exhaustive backtracking.
//
//	eulerwalk paths --sample two-odd
//	eulerwalk circuits --graph bridges.yaml --trace
//	eulerwalk inspect --sample koenigsberg -o yaml
//	eulerwalk samples square
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "eulerwalk:", err)
		os.Exit(1)
	}
}
