// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package script parses and runs line-oriented scripts of stack operations.
//
// Each non-blank line holds one operation:
//
//	push <n>   push the int32 n
//	pop        pop, printing the value or "none"
//	len        print the number of elements
//	drop       release every element
//
// Text after a '#' is a comment.
package script

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/berquist/too-many-rust-lists/internal/stack"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

var (
	ErrUnknownOp = errors.New("unknown operation")
	ErrArity     = errors.New("wrong number of operands")
)

// Kind names a stack operation.
type Kind int

const (
	Push Kind = iota
	Pop
	Len
	Drop
)

var kindNames = map[string]Kind{
	"push": Push,
	"pop":  Pop,
	"len":  Len,
	"drop": Drop,
}

func (k Kind) String() string {
	switch k {
	case Push:
		return "push"
	case Pop:
		return "pop"
	case Len:
		return "len"
	case Drop:
		return "drop"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op is one parsed operation.  Arg is only meaningful for Push.
type Op struct {
	Kind Kind
	Arg  int32
	Line int
}

func (o Op) String() string {
	if o.Kind == Push {
		return fmt.Sprintf("push %d", o.Arg)
	}
	return o.Kind.String()
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		op, err := parseOp(fields)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read script")
	}
	return ops, nil
}

func parseOp(fields []string) (Op, error) {
	k, ok := kindNames[fields[0]]
	if !ok {
		return Op{}, errors.Wrapf(ErrUnknownOp, "%q", fields[0])
	}
	want := 1
	if k == Push {
		want = 2
	}
	if len(fields) != want {
		return Op{}, errors.Wrapf(ErrArity, "%s takes %d, got %d", k, want-1, len(fields)-1)
	}
	op := Op{Kind: k}
	if k == Push {
		n, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return Op{}, errors.Wrap(err, "bad push operand")
		}
		op.Arg = int32(n)
	}
	return op, nil
}

// Run applies ops to l in order, writing the output of pop and len to w.
func Run(ctx context.Context, l *stack.List, ops []Op, w io.Writer) error {
	ctx, span := trace.StartSpan(ctx, "script.Run")
	defer span.End()
	span.AddAttributes(trace.Int64Attribute("ops", int64(len(ops))))

	bw := bufio.NewWriter(w)
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		glog.V(2).Infof("line %d: %s", op.Line, op)
		var out string
		switch op.Kind {
		case Push:
			l.Push(op.Arg)
			continue
		case Pop:
			if v, ok := l.Pop(); ok {
				out = strconv.FormatInt(int64(v), 10)
			} else {
				out = "none"
			}
		case Len:
			out = strconv.Itoa(l.Len())
		case Drop:
			l.Drop()
			continue
		default:
			return errors.Errorf("line %d: unexpected op kind %v", op.Line, op.Kind)
		}
		if _, err := fmt.Fprintln(bw, out); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return errors.Wrap(bw.Flush(), "failed to write output")
}
