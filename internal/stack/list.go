// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package stack implements a singly-linked LIFO of int32 values.
//
// The List owns its head link, and each node owns the link to its
// successor; no node is ever reachable from two links. Every mutation first
// takes the owned value out of its slot, leaving the slot empty, and only
// then stores the result back, so no intermediate state aliases a node.
//
// A List is not safe for concurrent use.
package stack

import (
	"expvar"

	"github.com/golang/glog"
)

var (
	// pushes counts elements pushed onto any List.
	pushes = expvar.NewInt("stack_pushes_total")
	// pops counts successful pops.
	pops = expvar.NewInt("stack_pops_total")
	// emptyPops counts pops that found the List empty.
	emptyPops = expvar.NewInt("stack_empty_pops_total")
	// released counts nodes released by Drop.
	released = expvar.NewInt("stack_nodes_released_total")
)

// link is either empty (n == nil) or exclusively owns one node.
type link struct {
	n *node
}

// take moves the owned node out of the link, leaving the link empty.
func (l *link) take() link {
	t := *l
	l.n = nil
	return t
}

func (l link) empty() bool {
	return l.n == nil
}

type node struct {
	elem int32
	next link
}

// List is a LIFO stack of int32. The zero value is an empty List.
type List struct {
	head link
	size int
}

// New returns an empty List.
func New() *List {
	return &List{}
}

// Len returns the number of elements on the List.
func (l *List) Len() int {
	return l.size
}

// Push puts elem on top of the List.
func (l *List) Push(elem int32) {
	n := &node{elem: elem, next: l.head.take()}
	l.head = link{n}
	l.size++
	pushes.Add(1)
}

// Pop removes the top element and returns it.  ok is false, and v is zero,
// if the List was empty.
func (l *List) Pop() (v int32, ok bool) {
	n := l.popNode()
	if n == nil {
		emptyPops.Add(1)
		return 0, false
	}
	pops.Add(1)
	return n.elem, true
}

// popNode detaches the head node and promotes its successor to head.  The
// returned node has already been severed from the chain.
func (l *List) popNode() *node {
	h := l.head.take()
	if h.empty() {
		return nil
	}
	l.head = h.n.next.take()
	l.size--
	return h.n
}

// Drop releases every node on the List, head first, leaving it empty and
// ready for reuse.  Each node's next link is cut before the node is let go,
// so no node keeps its successor alive and the walk needs constant stack.
// Elements are not copied out.
func (l *List) Drop() {
	var n int64
	for l.popNode() != nil {
		n++
	}
	released.Add(n)
	glog.V(2).Infof("released %d nodes", n)
}
