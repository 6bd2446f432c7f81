// Command cgraph parses, optimises, evaluates, differentiates and draws
// arithmetic expressions as deduplicated computation graphs.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
