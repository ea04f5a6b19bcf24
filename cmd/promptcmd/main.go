// Command promptcmd is a thin driver over the resolver, load balancer,
// storage, stats, and installer packages: resolve a name to a provider
// configuration, inspect and run stored prompts, and manage shortcuts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
