// SPDX-License-Identifier: MIT

// Command socnet builds a social network from a YAML profile (or flags)
// and prints distance, centrality, prestige, triad and walk reports.
//
// Usage:
//
//	socnet analyze --config socnet.yml
//	socnet census --kind random --vertices 200 --probability 0.05 --seed 7
//	socnet index BC PRP --kind star --vertices 5 --json
//	socnet walks --length 3 --kind path --vertices 4
//	socnet path 1 3 --kind cycle --vertices 6
package main

import (
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "socnet:", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
