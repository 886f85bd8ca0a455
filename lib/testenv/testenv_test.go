// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testenv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/hostenv/lib/config"
	"github.com/bureau-foundation/hostenv/lib/debughook"
	"github.com/bureau-foundation/hostenv/lib/testutil"
)

func TestMain(m *testing.M) {
	Main(m)
}

type attachedTracer struct{}

func (attachedTracer) Attached() (bool, error) { return true, nil }

func getenv(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func imageRoot(t *testing.T, osRelease string) string {
	t.Helper()
	root := t.TempDir()
	testutil.WriteFile(t, root, "etc/os-release", osRelease)
	return root
}

func TestSetupRedHatFamily(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	environment := setup(Options{
		Root:   imageRoot(t, "ID=rocky\nID_LIKE=\"rhel centos fedora\"\nVERSION_ID=\"9.4\"\n"),
		Output: &bytes.Buffer{},
		Getenv: getenv(nil),
	})

	if !environment.RedHat {
		t.Error("RedHat = false for a Rocky Linux image")
	}
	if environment.Debian {
		t.Error("Debian = true for a Rocky Linux image")
	}
	if environment.Release.ID != "rocky" {
		t.Errorf("Release.ID = %q, want rocky", environment.Release.ID)
	}
}

func TestSetupDebianFamily(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	environment := setup(Options{
		Root:   imageRoot(t, "ID=ubuntu\nID_LIKE=debian\nVERSION_CODENAME=noble\n"),
		Output: &bytes.Buffer{},
		Getenv: getenv(nil),
	})

	if environment.RedHat || !environment.Debian {
		t.Errorf("RedHat=%v Debian=%v, want false true", environment.RedHat, environment.Debian)
	}
}

func TestSetupUnknownDistribution(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	for name, root := range map[string]string{
		"arch":  imageRoot(t, "ID=arch\n"),
		"empty": t.TempDir(),
	} {
		environment := setup(Options{Root: root, Output: &bytes.Buffer{}, Getenv: getenv(nil)})
		if environment.RedHat || environment.Debian {
			t.Errorf("%s: RedHat=%v Debian=%v, want both false", name, environment.RedHat, environment.Debian)
		}
	}
}

func TestSetupRootFromConfig(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	cfg := config.Default()
	cfg.Distro.Root = imageRoot(t, "ID=fedora\nVERSION_ID=41\n")

	environment := setup(Options{Config: cfg, Output: &bytes.Buffer{}, Getenv: getenv(nil)})
	if !environment.RedHat {
		t.Error("RedHat = false with distro.root pointing at a Fedora image")
	}
}

func TestSetupDebugHookInstalled(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	environment := setup(Options{
		Root:           t.TempDir(),
		Output:         &bytes.Buffer{},
		Getenv:         getenv(map[string]string{"DEBUG": "1"}),
		LocateDebugger: func() (debughook.Tracer, error) { return attachedTracer{}, nil },
	})

	if !environment.DebugHook {
		t.Error("DebugHook = false with DEBUG=1 and a reachable debugger")
	}
	if !debughook.Installed() {
		t.Error("debughook.Installed() = false after setup with DEBUG=1")
	}
}

func TestSetupDebugFacilityUnavailable(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	var logs bytes.Buffer
	environment := setup(Options{
		Root:   imageRoot(t, "ID=debian\n"),
		Output: &logs,
		Getenv: getenv(map[string]string{"DEBUG": "1"}),
		LocateDebugger: func() (debughook.Tracer, error) {
			return nil, errors.New("no procfs")
		},
	})

	if environment.DebugHook {
		t.Error("DebugHook = true with an unavailable facility")
	}
	if !environment.Debian {
		t.Error("distribution detection did not run after the debug hook failed")
	}
	if logs.Len() != 0 {
		t.Errorf("unavailable facility produced output at INFO: %q", logs.String())
	}
}

func TestSetupDebugUnset(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	environment := setup(Options{
		Root:           t.TempDir(),
		Output:         &bytes.Buffer{},
		Getenv:         getenv(nil),
		LocateDebugger: func() (debughook.Tracer, error) { return attachedTracer{}, nil },
	})
	if environment.DebugHook {
		t.Error("DebugHook = true with DEBUG unset")
	}
}

func TestSetupLoggerUsesClassicFormat(t *testing.T) {
	t.Cleanup(debughook.Uninstall)

	var logs bytes.Buffer
	environment := setup(Options{Root: t.TempDir(), Output: &logs, Getenv: getenv(nil)})

	environment.Logger.Info("fixture loaded")
	environment.Logger.Debug("suppressed below INFO")

	want := "INFO:TestSetupLoggerUsesClassicFormat:fixture loaded\n"
	if logs.String() != want {
		t.Errorf("log output = %q, want %q", logs.String(), want)
	}
}

func TestNewLoggerFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{config.FormatClassic, "WARN:TestNewLoggerFormats:disk low\n"},
		{config.FormatText, "level=WARN msg=\"disk low\""},
		{config.FormatJSON, `"msg":"disk low"`},
		{"bogus", "WARN:TestNewLoggerFormats:disk low\n"},
	}
	for _, test := range tests {
		var logs bytes.Buffer
		logger := NewLogger(config.LoggingConfig{Level: "warn", Format: test.format}, &logs)
		logger.Info("hidden")
		logger.Warn("disk low")

		if !strings.Contains(logs.String(), test.want) {
			t.Errorf("format %q: output %q does not contain %q", test.format, logs.String(), test.want)
		}
		if strings.Contains(logs.String(), "hidden") {
			t.Errorf("format %q: INFO record emitted at WARN level", test.format)
		}
	}
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(config.LoggingConfig{Level: "chatty"}, &logs)
	logger.Debug("hidden")
	logger.Info("shown")

	if logs.String() != "INFO:TestNewLoggerInvalidLevelDefaultsToInfo:shown\n" {
		t.Errorf("log output = %q", logs.String())
	}
}

func TestMainPublishedEnvironment(t *testing.T) {
	environment := Current()
	if environment == nil {
		t.Fatal("Current() = nil after Main")
	}
	if environment.RedHat && environment.Debian {
		t.Error("both family flags set")
	}
	if PlatRedHat() != environment.RedHat || PlatDebian() != environment.Debian {
		t.Error("Plat* accessors disagree with Current()")
	}
	if again := Setup(Options{Root: t.TempDir()}); again != environment {
		t.Error("second Setup call returned a different Environment")
	}
}

func TestSkipHelpers(t *testing.T) {
	t.Run("redhat", func(t *testing.T) {
		SkipUnlessRedHat(t)
		if !PlatRedHat() {
			t.Error("SkipUnlessRedHat did not skip on a non Red Hat host")
		}
	})
	t.Run("debian", func(t *testing.T) {
		SkipUnlessDebian(t)
		if !PlatDebian() {
			t.Error("SkipUnlessDebian did not skip on a non Debian host")
		}
	})
}
