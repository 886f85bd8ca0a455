// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bureau-foundation/hostenv/lib/config"
	"github.com/bureau-foundation/hostenv/lib/debughook"
	"github.com/bureau-foundation/hostenv/lib/distro"
	"github.com/bureau-foundation/hostenv/lib/process"
)

// Options configures Setup. Zero fields take defaults.
type Options struct {
	// Config supplies the debug, logging, and distro settings.
	// Default: config.Default().
	Config *config.Config

	// Root overrides Config.Distro.Root for distribution detection.
	Root string

	// Output receives log lines. Default: os.Stderr.
	Output io.Writer

	// Getenv reads the debug variable. Default: os.Getenv.
	Getenv func(string) string

	// LocateDebugger overrides the debugger facility probe.
	LocateDebugger func() (debughook.Tracer, error)
}

// Environment is the result of bootstrapping.
type Environment struct {
	// Release is the detected distribution.
	Release distro.Release

	// RedHat and Debian are the family indicators. At most one is
	// true; both are false on an unrecognized distribution.
	RedHat bool
	Debian bool

	// DebugHook reports whether debughook.Break is live.
	DebugHook bool

	// Logger is the process-wide logger installed as slog's default.
	Logger *slog.Logger
}

var (
	setupOnce sync.Once
	current   atomic.Pointer[Environment]
)

// Setup bootstraps the process on its first call and returns the
// resulting Environment. Later calls ignore options and return the
// first Environment.
func Setup(options Options) *Environment {
	setupOnce.Do(func() {
		environment := setup(options)
		slog.SetDefault(environment.Logger)
		current.Store(environment)
	})
	return current.Load()
}

// setup is the side-effect-light implementation of Setup: it installs
// the debugger hook (a process-wide switch by nature) but leaves the
// slog default and the published flags to the caller.
func setup(options Options) *Environment {
	cfg := options.Config
	if cfg == nil {
		cfg = config.Default()
	}
	output := options.Output
	if output == nil {
		output = os.Stderr
	}

	environment := &Environment{
		Logger: NewLogger(cfg.Logging, output),
	}

	wait := cfg.DebugWait()
	if wait == 0 {
		wait = -1
	}
	environment.DebugHook = debughook.Install(debughook.Options{
		Variable: cfg.Debug.Variable,
		Getenv:   options.Getenv,
		Locate:   options.LocateDebugger,
		Logger:   environment.Logger,
		Wait:     wait,
	})

	root := options.Root
	if root == "" {
		root = cfg.Distro.Root
	}
	if root == "" || root == "/" {
		environment.Release = distro.Detect()
	} else {
		environment.Release = distro.DetectFrom(root)
	}
	environment.RedHat = environment.Release.IsRedHatFamily()
	environment.Debian = environment.Release.IsDebianFamily()

	return environment
}

// PlatRedHat reports whether Setup identified a Red Hat family host.
// False before Setup has run.
func PlatRedHat() bool {
	if environment := Current(); environment != nil {
		return environment.RedHat
	}
	return false
}

// PlatDebian reports whether Setup identified a Debian family host.
// False before Setup has run.
func PlatDebian() bool {
	if environment := Current(); environment != nil {
		return environment.Debian
	}
	return false
}

// Current returns the Environment produced by Setup, or nil if Setup
// has not run.
func Current() *Environment {
	return current.Load()
}

// SkipUnlessRedHat skips t unless the host is Red Hat family.
func SkipUnlessRedHat(t testing.TB) {
	t.Helper()
	if !PlatRedHat() {
		t.Skip("requires a Red Hat family host")
	}
}

// SkipUnlessDebian skips t unless the host is Debian family.
func SkipUnlessDebian(t testing.TB) {
	t.Helper()
	if !PlatDebian() {
		t.Skip("requires a Debian family host")
	}
}

// Main bootstraps the process from HOSTENV_CONFIG (or defaults), runs
// the tests, and exits with their status. Call it from TestMain.
func Main(m *testing.M) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		process.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		process.Fatal(err)
	}

	environment := Setup(Options{Config: cfg})
	environment.Logger.Info("test environment ready",
		"family", environment.Release.Family.String(),
		"distro", environment.Release.ID,
		"debug_hook", environment.DebugHook)

	os.Exit(m.Run())
}
