// SPDX-License-Identifier: MIT

// Command cellauto evaluates weighted cellular automata described by YAML
// graph files and generates such files.
//
// Usage:
//
//	cellauto run graph.yaml [--recursive] [--multipass] [--min-length N] [--max-passes K]
//	cellauto generate --kind chain|ring|layered|complete|dag|graph --items N [--layers L] [--p P] [--seed S]
//
// Logging goes to stderr; --log-level and --log-format select the slog handler.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
