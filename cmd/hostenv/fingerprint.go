// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/cmd/hostenv/cli"
	"github.com/bureau-foundation/hostenv/lib/fingerprint"
)

type fingerprintResult struct {
	Digest string            `json:"digest"`
	Facts  fingerprint.Facts `json:"facts"`
}

func fingerprintCommand(stdout, stderr io.Writer) *cli.Command {
	var (
		host   hostOptions
		output cli.Output
		short  bool
	)

	return &cli.Command{
		Name:    "fingerprint",
		Summary: "Print a stable digest of the host's distribution facts",
		Description: `Print a BLAKE3 digest of the host's family, distribution ID and
version, kernel release, and machine. Two hosts with the same digest
are interchangeable for test result caching.`,
		Usage: "hostenv fingerprint [--short] [--json|--cbor] [--root DIR] [--config FILE]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("fingerprint", pflag.ContinueOnError)
			host.addFlags(flagSet)
			output.AddFlags(flagSet)
			flagSet.BoolVar(&short, "short", false, "print the abbreviated digest")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			info, _, err := host.probe(stderr)
			if err != nil {
				return err
			}
			facts := fingerprint.FromHost(info)
			digest, err := fingerprint.Compute(facts)
			if err != nil {
				return err
			}

			if done, err := output.Emit(stdout, fingerprintResult{Digest: digest.String(), Facts: facts}); done {
				return err
			}
			if short {
				fmt.Fprintln(stdout, digest.Short())
			} else {
				fmt.Fprintln(stdout, digest.String())
			}
			return nil
		},
	}
}
