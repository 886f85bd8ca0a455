// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/hostenv/cmd/hostenv/cli"
	"github.com/bureau-foundation/hostenv/lib/config"
	"github.com/bureau-foundation/hostenv/lib/hwinfo"
	"github.com/bureau-foundation/hostenv/lib/version"
)

// rootCommand builds the hostenv command tree writing results to stdout
// and diagnostics to stderr.
func rootCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:   "hostenv",
		Stderr: stderr,
		Description: `Hostenv: host environment probe.

Reports the distribution and packaging family of this host (or of a
filesystem image via --root), using the same detection and
configuration as the lib/testenv test bootstrap.`,
		Subcommands: []*cli.Command{
			probeCommand(stdout, stderr),
			familyCommand(stdout, stderr),
			fingerprintCommand(stdout, stderr),
			debugCommand(stdout, stderr),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Fprintf(stdout, "hostenv %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show this host's distribution",
				Command:     "hostenv probe",
			},
			{
				Description: "Branch a shell script on the packaging family",
				Command:     "hostenv family --is redhat && dnf install -y gcc",
			},
			{
				Description: "Inspect an unpacked container image",
				Command:     "hostenv probe --root /var/lib/images/rocky9 --json",
			},
		},
	}
}

// hostOptions are the flags shared by every command that inspects a
// host: where the configuration comes from, which root to read, and
// how diagnostics on stderr are formatted.
type hostOptions struct {
	configPath string
	root       string
	logFormat  string
}

func (o *hostOptions) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.configPath, "config", "", "configuration file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&o.root, "root", "", "filesystem root to detect the distribution from (default: distro.root)")
	flagSet.StringVar(&o.logFormat, "log-format", cli.LogFormatAuto,
		"diagnostic log format: classic, text, or json (default: text on a terminal, json otherwise)")
}

// loadConfig reads --config, or HOSTENV_CONFIG, or the defaults, and
// validates the result.
func (o *hostOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.LoadOrDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// probe loads configuration and inspects the selected root. The
// returned logger takes its level from logging.level (or DEBUG under
// HOSTENV_DEBUG) and its format from --log-format.
func (o *hostOptions) probe(stderr io.Writer) (hwinfo.HostInfo, *slog.Logger, error) {
	if err := cli.CheckLogFormat(o.logFormat); err != nil {
		return hwinfo.HostInfo{}, nil, err
	}
	cfg, err := o.loadConfig()
	if err != nil {
		return hwinfo.HostInfo{}, nil, err
	}
	logger := cli.NewCommandLogger(stderr, o.logFormat, cli.CommandLogLevel(cfg.LogLevel()))

	root := o.root
	if root == "" {
		root = cfg.Distro.Root
	}
	logger.Debug("probing host", "root", root)

	info := hwinfo.ProbeRoot(root)
	if !info.Distro.Known() {
		logger.Debug("no release file found", "root", root)
	}
	return info, logger, nil
}
