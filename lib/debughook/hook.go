// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package debughook

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/bureau-foundation/hostenv/lib/clock"
)

// DefaultVariable is the environment variable that enables the hook.
const DefaultVariable = "DEBUG"

const (
	// DefaultWait is how long Break waits for a debugger to attach.
	DefaultWait = 2 * time.Minute

	// DefaultPollInterval is how often Break re-checks for a tracer
	// while waiting.
	DefaultPollInterval = 250 * time.Millisecond
)

// Tracer reports whether a debugger is attached to this process.
type Tracer interface {
	Attached() (bool, error)
}

// Options configures Install. Zero fields take the defaults noted on
// each field.
type Options struct {
	// Variable is the environment variable to consult. Default:
	// DefaultVariable.
	Variable string

	// Getenv reads the variable. Default: os.Getenv.
	Getenv func(string) string

	// Locate finds the tracer facility. Default: the platform probe
	// (procfs on Linux, unavailable elsewhere).
	Locate func() (Tracer, error)

	// Logger receives the attach hint. Default: a discarding logger.
	Logger *slog.Logger

	// Clock drives the wait loop. Default: clock.Real().
	Clock clock.Clock

	// Wait bounds how long Break waits for a tracer. Zero means
	// DefaultWait; a negative value disables waiting.
	Wait time.Duration

	// PollInterval is the tracer re-check interval. Default:
	// DefaultPollInterval.
	PollInterval time.Duration

	// Trap stops the process under the tracer. Default:
	// runtime.Breakpoint.
	Trap func()
}

func (o *Options) applyDefaults() {
	if o.Variable == "" {
		o.Variable = DefaultVariable
	}
	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}
	if o.Locate == nil {
		o.Locate = locateTracer
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.Clock == nil {
		o.Clock = clock.Real()
	}
	if o.Wait == 0 {
		o.Wait = DefaultWait
	}
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Trap == nil {
		o.Trap = runtime.Breakpoint
	}
}

// hook is the installed trigger state.
type hook struct {
	tracer   Tracer
	logger   *slog.Logger
	clock    clock.Clock
	wait     time.Duration
	poll     time.Duration
	trap     func()
	variable string
}

var current atomic.Pointer[hook]

// Enabled reports whether an environment value turns the hook on: any
// non-empty value does, "0" and "false" included.
func Enabled(value string) bool {
	return value != ""
}

// Install enables Break when the configured variable is set and the
// tracer facility can be located. It returns whether the hook is now
// installed. A missing variable or an unavailable facility leaves any
// previous state untouched and is not an error.
func Install(options Options) bool {
	options.applyDefaults()

	if !Enabled(options.Getenv(options.Variable)) {
		return false
	}

	tracer, err := options.Locate()
	if err != nil {
		options.Logger.Debug("debugger facility unavailable, hook not installed",
			"variable", options.Variable, "error", err)
		return false
	}

	current.Store(&hook{
		tracer:   tracer,
		logger:   options.Logger,
		clock:    options.Clock,
		wait:     options.Wait,
		poll:     options.PollInterval,
		trap:     options.Trap,
		variable: options.Variable,
	})
	options.Logger.Debug("debugger hook installed", "variable", options.Variable)
	return true
}

// Installed reports whether Break is live.
func Installed() bool {
	return current.Load() != nil
}

// Uninstall turns Break back into a no-op.
func Uninstall() {
	current.Store(nil)
}

// Break stops the process under a debugger if the hook is installed.
// See BreakContext.
func Break() {
	BreakContext(context.Background())
}

// BreakContext traps into an attached debugger, first waiting for one
// to attach if necessary. Returns true if the process trapped. It is a
// no-op returning false when the hook is not installed, when no tracer
// attaches within the configured wait, or when ctx is cancelled.
func BreakContext(ctx context.Context) bool {
	h := current.Load()
	if h == nil {
		return false
	}
	return h.breakpoint(ctx)
}

func (h *hook) breakpoint(ctx context.Context) bool {
	if h.attached() {
		h.trap()
		return true
	}
	if h.wait < 0 {
		return false
	}

	pid := os.Getpid()
	h.logger.Warn("waiting for debugger to attach",
		"pid", pid,
		"command", fmt.Sprintf("dlv attach %d", pid),
		"timeout", h.wait)

	deadline := h.clock.Now().Add(h.wait)
	for h.clock.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return false
		case <-h.clock.After(h.poll):
		}
		if h.attached() {
			h.trap()
			return true
		}
	}

	h.logger.Warn("no debugger attached, continuing", "pid", pid, "variable", h.variable)
	return false
}

func (h *hook) attached() bool {
	attached, err := h.tracer.Attached()
	if err != nil {
		h.logger.Debug("checking for tracer", "error", err)
		return false
	}
	return attached
}
