// Command cprintf formats its operands with C printf semantics and runs
// YAML suites of formatting vectors.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cprintf:", err)
		os.Exit(1)
	}
}
