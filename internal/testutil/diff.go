// Copyright 2018 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package testutil holds helpers shared by the tests of the stack packages.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func Diff(a, b interface{}, opts ...cmp.Option) string {
	return cmp.Diff(a, b, opts...)
}

// ExpectNoDiff fails the test with the diff if a and b differ, and reports whether they were equal.
func ExpectNoDiff(tb testing.TB, a, b interface{}, opts ...cmp.Option) bool {
	tb.Helper()
	if diff := Diff(a, b, opts...); diff != "" {
		tb.Errorf("Unexpected diff, -want +got:\n%s", diff)
		return false
	}
	return true
}

func EquateEmpty() cmp.Option {
	return cmpopts.EquateEmpty()
}

func AllowUnexported(types ...interface{}) cmp.Option {
	return cmp.AllowUnexported(types...)
}
