// Copyright 2011 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Package exporter makes the stack counters available to Prometheus.
package exporter

import (
	"io"

	"github.com/berquist/too-many-rust-lists/internal/buildinfo"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/prometheus/common/version"
)

// Exporter owns the registry that stack metrics are gathered from.
type Exporter struct {
	reg *prometheus.Registry
}

// New creates an Exporter with the Go runtime, process, build and stack
// collectors registered.
func New(info buildinfo.Info) *Exporter {
	e := &Exporter{
		// Using a non-pedantic registry means we can be looser with metrics that
		// are not fully specified at startup.
		reg: prometheus.NewRegistry(),
	}
	expvarDescs := map[string]*prometheus.Desc{
		// internal/stack/list.go
		"stack_pushes_total":         prometheus.NewDesc("stack_pushes_total", "number of elements pushed", nil, nil),
		"stack_pops_total":           prometheus.NewDesc("stack_pops_total", "number of elements popped", nil, nil),
		"stack_empty_pops_total":     prometheus.NewDesc("stack_empty_pops_total", "number of pops from an empty stack", nil, nil),
		"stack_nodes_released_total": prometheus.NewDesc("stack_nodes_released_total", "number of nodes released by drop", nil, nil),
	}
	e.reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	// Prefix all expvar metrics with 'stackrun_'
	prometheus.WrapRegistererWithPrefix("stackrun_", e.reg).MustRegister(
		prometheus.NewExpvarCollector(expvarDescs))

	version.Branch = info.Branch
	version.Version = info.Version
	version.Revision = info.Revision
	e.reg.MustRegister(version.NewCollector("stackrun"))
	return e
}

// Registry returns the underlying registry, for callers that want to add
// their own collectors or serve it.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.reg
}

// Write gathers all registered metrics and writes them to w in the
// Prometheus text exposition format.
func (e *Exporter) Write(w io.Writer) error {
	mfs, err := e.reg.Gather()
	if err != nil {
		// Gather returns whatever it could collect alongside the error.
		glog.Warning(err)
	}
	enc := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return errors.Wrapf(err, "failed to encode metric family %q", mf.GetName())
		}
	}
	return nil
}
