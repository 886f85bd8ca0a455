// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/cmd/hostenv/cli"
	"github.com/bureau-foundation/hostenv/lib/distro"
)

func familyCommand(stdout, stderr io.Writer) *cli.Command {
	var (
		host hostOptions
		is   string
	)

	return &cli.Command{
		Name:    "family",
		Summary: "Print the packaging family (redhat, debian, unknown)",
		Description: `Print the host's packaging family.

With --is, print nothing and exit 0 when the host is in the named
family, 1 when it is not. Suitable for shell conditionals.`,
		Usage: "hostenv family [--is redhat|debian] [--root DIR] [--config FILE]",
		Examples: []cli.Example{
			{
				Description: "Install build tools with the right package manager",
				Command:     "if hostenv family --is debian; then apt-get install -y build-essential; fi",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("family", pflag.ContinueOnError)
			host.addFlags(flagSet)
			flagSet.StringVar(&is, "is", "", "exit 0 if the host is in this family (redhat, debian), 1 otherwise")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			var want distro.Family
			if is != "" {
				family, ok := distro.ParseFamily(is)
				if !ok {
					return fmt.Errorf("--is: unknown family %q (expected redhat or debian)", is)
				}
				want = family
			}

			info, logger, err := host.probe(stderr)
			if err != nil {
				return err
			}
			family := info.Distro.Family

			if is == "" {
				fmt.Fprintln(stdout, cli.NewStyler(stdout).FamilyBadge(family))
				return nil
			}

			logger.Debug("family check", "want", want.String(), "have", family.String())
			if family != want {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
