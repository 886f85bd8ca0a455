// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/cmd/hostenv/cli"
	"github.com/bureau-foundation/hostenv/lib/debughook"
)

// debugStatus reports what debughook.Install would do in a test process
// started from this environment.
type debugStatus struct {
	Variable  string `json:"variable"`
	Value     string `json:"value"`
	Enabled   bool   `json:"enabled"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Attached  bool   `json:"attached"`
	Wait      string `json:"wait"`
}

func debugCommand(stdout, stderr io.Writer) *cli.Command {
	var (
		host   hostOptions
		output cli.Output
	)

	return &cli.Command{
		Name:    "debug",
		Summary: "Report whether the test debugger hook would activate",
		Description: `Report the debug variable's value and whether the debugger
facility (tracer detection) is usable, i.e. whether a test process
started from this shell would install its debugger hook.`,
		Usage: "hostenv debug [--json] [--config FILE]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("debug", pflag.ContinueOnError)
			flagSet.StringVar(&host.configPath, "config", "", "configuration file")
			output.AddFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}

			cfg, err := host.loadConfig()
			if err != nil {
				return err
			}

			status := debugStatus{
				Variable: cfg.Debug.Variable,
				Value:    os.Getenv(cfg.Debug.Variable),
				Wait:     cfg.DebugWait().String(),
			}
			status.Enabled = debughook.Enabled(status.Value)

			tracer, err := debughook.Locate()
			if err != nil {
				status.Reason = err.Error()
			} else {
				status.Available = true
				status.Attached, _ = tracer.Attached()
			}

			if done, err := output.Emit(stdout, status); done {
				return err
			}

			tw := tabwriter.NewWriter(stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(tw, "variable\t%s\n", status.Variable)
			fmt.Fprintf(tw, "value\t%s\n", orDash(status.Value))
			fmt.Fprintf(tw, "enabled\t%t\n", status.Enabled)
			if status.Available {
				fmt.Fprintf(tw, "facility\tavailable\n")
				fmt.Fprintf(tw, "attached\t%t\n", status.Attached)
			} else {
				fmt.Fprintf(tw, "facility\tunavailable (%s)\n", status.Reason)
			}
			fmt.Fprintf(tw, "wait\t%s\n", status.Wait)
			return tw.Flush()
		},
	}
}
