// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := Info{Branch: "main", Version: "v1.2.3", Revision: "abcdef"}.String()
	for _, want := range []string{"stackrun version v1.2.3", "git revision abcdef", runtime.Version()} {
		if !strings.Contains(s, want) {
			t.Errorf("%q does not contain %q", s, want)
		}
	}
}
