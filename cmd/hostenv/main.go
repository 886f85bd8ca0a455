// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/bureau-foundation/hostenv/lib/process"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own answer (family --is) return an
		// ExitError with the desired exit code. Don't print a redundant
		// "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		process.Fatal(err)
	}
}

func run() error {
	return rootCommand(os.Stdout, os.Stderr).Execute(os.Args[1:])
}
