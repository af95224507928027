// Copyright 2020 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package buildinfo records where a binary was built from.
package buildinfo

import (
	"fmt"
	"runtime"
)

// Info records the compile-time information for use when reporting the stackrun version.
type Info struct {
	Branch   string
	Version  string
	Revision string
}

func (b Info) String() string {
	return fmt.Sprintf(
		"stackrun version %s git revision %s go version %s go arch %s go os %s",
		b.Version,
		b.Revision,
		runtime.Version(),
		runtime.GOARCH,
		runtime.GOOS,
	)
}
