// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// Code that waits (the debugger attach loop in lib/debughook) accepts a
// [Clock] instead of calling time.After or time.Sleep directly. In
// production [Real] wraps the time package; tests use [Fake], which
// only moves when Advance is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go waiter(c)
//	c.WaitForTimers(1)         // the goroutine has registered its wait
//	c.Advance(5 * time.Second) // fire it
//
// WaitForTimers removes the race between a goroutine registering a
// timer and the test advancing past it.
package clock
