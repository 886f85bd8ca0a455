// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package logfmt

import (
	"bytes"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestHandlerInfoFormat(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil))

	logger.Info("package cache warmed")

	want := "INFO:TestHandlerInfoFormat:package cache warmed\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestHandlerMatchesLevelFunctionMessagePattern(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil))

	logger.Warn("disk nearly full")
	logger.Error("install failed")

	pattern := regexp.MustCompile(`^(INFO|WARN|ERROR|DEBUG):[A-Za-z_][A-Za-z0-9_]*:.*$`)
	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buffer.String())
	}
	for _, line := range lines {
		if !pattern.MatchString(line) {
			t.Errorf("line %q does not match LEVEL:FUNCTION:MESSAGE", line)
		}
	}
	if lines[0] != "WARN:TestHandlerMatchesLevelFunctionMessagePattern:disk nearly full" {
		t.Errorf("lines[0] = %q", lines[0])
	}
	if lines[1] != "ERROR:TestHandlerMatchesLevelFunctionMessagePattern:install failed" {
		t.Errorf("lines[1] = %q", lines[1])
	}
}

func TestHandlerDefaultLevelSuppressesDebug(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil))

	logger.Debug("noise")
	if buffer.Len() != 0 {
		t.Errorf("debug message written at default level: %q", buffer.String())
	}
}

func TestHandlerLevelVar(t *testing.T) {
	var buffer bytes.Buffer
	level := new(slog.LevelVar)
	level.Set(slog.LevelError)
	logger := slog.New(New(&buffer, &Options{Level: level}))

	logger.Warn("dropped")
	if buffer.Len() != 0 {
		t.Fatalf("warn written at ERROR level: %q", buffer.String())
	}

	level.Set(slog.LevelDebug)
	logger.Debug("kept")
	if buffer.String() != "DEBUG:TestHandlerLevelVar:kept\n" {
		t.Errorf("output = %q", buffer.String())
	}
}

func TestHandlerClosureReportsEnclosingFunction(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil))

	emit := func() {
		logger.Info("from closure")
	}
	emit()

	want := "INFO:TestHandlerClosureReportsEnclosingFunction:from closure\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

type installer struct {
	logger *slog.Logger
}

func (i *installer) install() {
	i.logger.Info("installing")
}

func TestHandlerMethodReportsMethodName(t *testing.T) {
	var buffer bytes.Buffer
	target := &installer{logger: slog.New(New(&buffer, nil))}

	target.install()

	if buffer.String() != "INFO:install:installing\n" {
		t.Errorf("output = %q", buffer.String())
	}
}

func emitFromGeneric[T any](logger *slog.Logger, value T) {
	logger.Info("generic", "value", value)
}

func emitFromGenericClosure[T any](logger *slog.Logger, value T) {
	func() {
		logger.Info("closure")
	}()
}

func TestHandlerGenericFunctionName(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil))

	emitFromGeneric(logger, 7)
	emitFromGenericClosure(logger, "x")

	want := "INFO:emitFromGeneric:generic value=7\nINFO:emitFromGenericClosure:closure\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestHandlerAttributes(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil)).With("family", "debian")

	logger.Info("detected", "version", "12", "pretty", "Debian GNU/Linux 12",
		"error", errors.New("none"), "count", 3,
		slog.Group("kernel", "release", "6.8.0"))

	want := `INFO:TestHandlerAttributes:detected family=debian version=12 pretty="Debian GNU/Linux 12" error=none count=3 kernel.release=6.8.0` + "\n"
	if buffer.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", buffer.String(), want)
	}
}

func TestHandlerWithGroup(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(New(&buffer, nil)).WithGroup("host").With("id", "fedora")

	logger.Info("probe", "empty", "")

	want := `INFO:TestHandlerWithGroup:probe host.id=fedora host.empty=""` + "\n"
	if buffer.String() != want {
		t.Errorf("output = %q, want %q", buffer.String(), want)
	}
}

func TestHandlerConcurrentWritesDoNotInterleave(t *testing.T) {
	var buffer bytes.Buffer
	base := New(&buffer, nil)
	first := slog.New(base).With("worker", 1)
	second := slog.New(base).With("worker", 2)

	var group sync.WaitGroup
	for _, logger := range []*slog.Logger{first, second} {
		logger := logger
		group.Add(1)
		go func() {
			defer group.Done()
			for i := 0; i < 100; i++ {
				logger.Info("tick")
			}
		}()
	}
	group.Wait()

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != 200 {
		t.Fatalf("got %d lines, want 200", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "INFO:") || !strings.Contains(line, ":tick worker=") {
			t.Fatalf("malformed line %q", line)
		}
	}
}

func TestShortFunctionName(t *testing.T) {
	tests := []struct {
		qualified string
		want      string
	}{
		{"main.main", "main"},
		{"github.com/bureau-foundation/hostenv/lib/testenv.Setup", "Setup"},
		{"github.com/bureau-foundation/hostenv/lib/testenv.Setup.func1", "Setup"},
		{"github.com/bureau-foundation/hostenv/lib/testenv.Setup.func1.2", "Setup"},
		{"example.com/pkg.(*Server).handle", "handle"},
		{"example.com/pkg.(*Server).handle.func3", "handle"},
		{"example.com/pkg.Server.String", "String"},
		{"example.com/pkg.(*List[...]).Push", "Push"},
		{"example.com/pkg.Map[...]", "Map"},
		{"example.com/pkg.Map[...].func1", "Map"},
		{"example.com/pkg.(*Cache[...]).Get.func2", "Get"},
		{"example.com/pkg.Pair[go.shape.string,go.shape.int]", "Pair"},
		{"example.com/pkg.(*Server).run-fm", "run"},
		{"example.com/pkg.worker.gowrap1", "worker"},
		{"gopkg.in/yaml.v3.Marshal", "Marshal"},
	}
	for _, test := range tests {
		if got := shortFunctionName(test.qualified); got != test.want {
			t.Errorf("shortFunctionName(%q) = %q, want %q", test.qualified, got, test.want)
		}
	}
}

func TestFunctionNameZeroPC(t *testing.T) {
	if got := FunctionName(0); got != "?" {
		t.Errorf("FunctionName(0) = %q, want ?", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"info", slog.LevelInfo, false},
		{"DEBUG", slog.LevelDebug, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"chatty", 0, true},
	}
	for _, test := range tests {
		got, err := ParseLevel(test.name)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", test.name, err, test.wantErr)
			continue
		}
		if !test.wantErr && got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}
