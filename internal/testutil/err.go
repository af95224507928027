// Copyright 2019 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package testutil

import "testing"

// FatalIfErr fails the test with a fatal error if err is not nil.
func FatalIfErr(tb testing.TB, err error) {
	tb.Helper()
	if err != nil {
		tb.Fatal(err)
	}
}

// ExpectErr fails the test if err is nil.
func ExpectErr(tb testing.TB, err error) {
	tb.Helper()
	if err == nil {
		tb.Fatal("expected an error, got nil")
	}
}
