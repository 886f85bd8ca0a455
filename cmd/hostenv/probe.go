// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/cmd/hostenv/cli"
	"github.com/bureau-foundation/hostenv/lib/hwinfo"
)

// probeResult is the machine-readable form of "hostenv probe": the host
// facts plus the two family indicators test code branches on.
type probeResult struct {
	hwinfo.HostInfo
	RedHat bool `json:"redhat"`
	Debian bool `json:"debian"`
}

func probeCommand(stdout, stderr io.Writer) *cli.Command {
	var (
		host   hostOptions
		output cli.Output
	)

	return &cli.Command{
		Name:    "probe",
		Summary: "Print host identity and family flags",
		Description: `Print the host's kernel, architecture, distribution, and the
Red Hat and Debian family flags exactly as lib/testenv computes them.`,
		Usage: "hostenv probe [--json|--cbor] [--root DIR] [--config FILE]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("probe", pflag.ContinueOnError)
			host.addFlags(flagSet)
			output.AddFlags(flagSet)
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
			result := probeResult{
				HostInfo: info,
				RedHat:   info.Distro.IsRedHatFamily(),
				Debian:   info.Distro.IsDebianFamily(),
			}

			if done, err := output.Emit(stdout, result); done {
				return err
			}
			return writeProbeText(stdout, result, cli.NewStyler(stdout))
		},
	}
}

func writeProbeText(w io.Writer, result probeResult, styler *cli.Styler) error {
	release := result.Distro

	distroName := release.PrettyName
	if distroName == "" {
		distroName = strings.TrimSpace(release.ID + " " + release.VersionID)
	}
	if distroName == "" {
		distroName = "-"
	}
	source := release.Source
	if source == "" {
		source = "-"
	}

	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "hostname\t%s\n", orDash(result.Hostname))
	fmt.Fprintf(tw, "os\t%s\n", result.OS)
	fmt.Fprintf(tw, "machine\t%s\n", result.Machine)
	fmt.Fprintf(tw, "kernel\t%s\n", orDash(result.KernelRelease))
	fmt.Fprintf(tw, "distro\t%s\n", distroName)
	if release.Codename != "" {
		fmt.Fprintf(tw, "codename\t%s\n", release.Codename)
	}
	fmt.Fprintf(tw, "source\t%s\n", source)
	fmt.Fprintf(tw, "family\t%s\n", styler.FamilyBadge(release.Family))
	fmt.Fprintf(tw, "redhat\t%s\n", styler.Flag(result.RedHat))
	fmt.Fprintf(tw, "debian\t%s\n", styler.Flag(result.Debian))
	return tw.Flush()
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
