// Copyright 2021 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import (
	"expvar"
	"testing"
	"time"

	"github.com/golang/glog"
)

// TestGetExpvar fetches the expvar metric `name`, and returns the expvar.
// Callers are responsible for type assertions on the returned value.
func TestGetExpvar(tb testing.TB, name string) expvar.Var {
	tb.Helper()
	v := expvar.Get(name)
	glog.Infof("Var %q is %v", name, v)
	return v
}

const defaultDoOrTimeoutDeadline = 10 * time.Second

// ExpectExpvarDeltaWithDeadline returns a deferrable function which tests if the expvar metric with name has changed by delta within the given deadline, once the function begins.  Before returning, it fetches the original value for comparison.
func ExpectExpvarDeltaWithDeadline(tb testing.TB, name string, want int64) func() {
	tb.Helper()
	deadline := defaultDoOrTimeoutDeadline
	start := TestGetExpvar(tb, name).(*expvar.Int).Value()
	check := func() (bool, error) {
		tb.Helper()
		now := TestGetExpvar(tb, name).(*expvar.Int).Value()
		return now-start == want, nil
	}
	return func() {
		tb.Helper()
		ok, err := DoOrTimeout(check, deadline, 10*time.Millisecond)
		FatalIfErr(tb, err)
		if !ok {
			now := TestGetExpvar(tb, name).(*expvar.Int).Value()
			tb.Errorf("Did not see %s have delta by deadline: got %v - %v = %d, want %d", name, now, start, now-start, want)
		}
	}
}
