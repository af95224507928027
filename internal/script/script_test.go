// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

package script

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/berquist/too-many-rust-lists/internal/stack"
	"github.com/berquist/too-many-rust-lists/internal/testutil"
	"github.com/pkg/errors"
)

var parseTests = []struct {
	name string
	src  string
	want []Op
}{
	{"empty", "", nil},
	{"comments and blanks",
		"# a comment\n\n   \npop # trailing\n",
		[]Op{{Kind: Pop, Line: 4}},
	},
	{"all kinds",
		"push 1\npush -2147483648\npop\nlen\ndrop\n",
		[]Op{
			{Kind: Push, Arg: 1, Line: 1},
			{Kind: Push, Arg: -2147483648, Line: 2},
			{Kind: Pop, Line: 3},
			{Kind: Len, Line: 4},
			{Kind: Drop, Line: 5},
		},
	},
	{"whitespace", "\tpush   7  \n", []Op{{Kind: Push, Arg: 7, Line: 1}}},
}

func TestParse(t *testing.T) {
	for _, tc := range parseTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.src))
			testutil.FatalIfErr(t, err)
			testutil.ExpectNoDiff(t, tc.want, got, testutil.EquateEmpty())
		})
	}
}

var parseErrorTests = []struct {
	name    string
	src     string
	cause   error
	wantMsg string
}{
	{"unknown", "pop\npeek\n", ErrUnknownOp, "line 2"},
	{"push without operand", "push\n", ErrArity, "line 1"},
	{"pop with operand", "pop 3\n", ErrArity, "line 1"},
	{"push overflow", "\n\npush 2147483648\n", nil, "line 3"},
	{"push not a number", "push x\n", nil, "bad push operand"},
	{"keywords are case sensitive", "PUSH 1\n", ErrUnknownOp, "\"PUSH\""},
}

func TestParseErrors(t *testing.T) {
	for _, tc := range parseErrorTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src))
			testutil.ExpectErr(t, err)
			if tc.cause != nil && errors.Cause(err) != tc.cause {
				t.Errorf("cause = %v, want %v", errors.Cause(err), tc.cause)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tc.wantMsg)
			}
		})
	}
}

var runTests = []struct {
	name string
	src  string
	want string
}{
	{"empty pop", "pop\n", "none\n"},
	{"scenario",
		`pop
push 1
push 2
push 3
pop
pop
push 4
push 5
pop
pop
pop
pop
`,
		"none\n3\n2\n5\n4\n1\nnone\n",
	},
	{"len and drop",
		"push 1\npush 2\nlen\ndrop\nlen\npop\npush 3\npop\n",
		"2\n0\nnone\n3\n",
	},
}

func TestRun(t *testing.T) {
	for _, tc := range runTests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ops, err := Parse(strings.NewReader(tc.src))
			testutil.FatalIfErr(t, err)
			l := stack.New()
			defer l.Drop()
			var out bytes.Buffer
			testutil.FatalIfErr(t, Run(context.Background(), l, ops, &out))
			testutil.ExpectNoDiff(t, tc.want, out.String())
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := stack.New()
	err := Run(ctx, l, []Op{{Kind: Push, Arg: 1, Line: 1}}, &bytes.Buffer{})
	if err != context.Canceled {
		t.Errorf("Run() = %v, want %v", err, context.Canceled)
	}
	if l.Len() != 0 {
		t.Errorf("ops ran after cancellation: Len() = %d", l.Len())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRunWriteError(t *testing.T) {
	l := stack.New()
	err := Run(context.Background(), l, []Op{{Kind: Pop, Line: 1}}, failWriter{})
	testutil.ExpectErr(t, err)
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("error %q does not mention the write failure", err)
	}
}

func TestOpString(t *testing.T) {
	testutil.ExpectNoDiff(t, "push -3", Op{Kind: Push, Arg: -3}.String())
	testutil.ExpectNoDiff(t, "len", Op{Kind: Len}.String())
	testutil.ExpectNoDiff(t, "Kind(9)", Kind(9).String())
}
