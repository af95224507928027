// Copyright 2026 Google Inc. All Rights Reserved.
// This file is available under the Apache license.

// Command stackrun runs a script of push and pop operations against a fresh
// stack and prints what each pop and len observes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"contrib.go.opencensus.io/exporter/jaeger"
	"github.com/berquist/too-many-rust-lists/internal/buildinfo"
	"github.com/berquist/too-many-rust-lists/internal/exporter"
	"github.com/berquist/too-many-rust-lists/internal/script"
	"github.com/berquist/too-many-rust-lists/internal/stack"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

var (
	scriptPath = flag.String("script", "-", "Path of the script to run, or - for standard input.")
	metrics    = flag.Bool("metrics", false, "After running, write the stack metrics to standard output in Prometheus text format.")
	version    = flag.Bool("version", false, "Print stackrun version information.")

	// Tracing.
	jaegerEndpoint    = flag.String("jaeger_endpoint", "", "If set, collector endpoint URL of jaeger thrift service")
	traceSamplePeriod = flag.Int("trace_sample_period", 0, "Sample period for traces.  If non-zero, every nth trace will be sampled.")
)

var (
	// Branch as well as Version and Revision identifies where in the git
	// history the build came from, as supplied by the linker.
	Branch   = "unknown"
	Version  = "unknown"
	Revision = "unknown"
)

// run parses the script in r and runs it on a new List, writing the script
// output and, if e is not nil, the metrics to w.
func run(ctx context.Context, r io.Reader, w io.Writer, e *exporter.Exporter) error {
	ops, err := script.Parse(r)
	if err != nil {
		return err
	}
	l := stack.New()
	defer l.Drop()
	if err := script.Run(ctx, l, ops, w); err != nil {
		return err
	}
	if e != nil {
		return e.Write(w)
	}
	return nil
}

func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open script %q", path)
	}
	return f, nil
}

func main() {
	info := buildinfo.Info{
		Branch:   Branch,
		Version:  Version,
		Revision: Revision,
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", info.String())
		fmt.Fprintf(os.Stderr, "\nUsage:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Println(info.String())
		os.Exit(0)
	}
	glog.Info(info.String())
	glog.Infof("Commandline: %q", os.Args)
	if len(flag.Args()) > 0 {
		glog.Exitf("Too many extra arguments specified: %q\n(use -script to name the script file.)", flag.Args())
	}

	if *traceSamplePeriod > 0 {
		trace.ApplyConfig(trace.Config{DefaultSampler: trace.ProbabilitySampler(1 / float64(*traceSamplePeriod))})
	}
	if *jaegerEndpoint != "" {
		je, err := jaeger.NewExporter(jaeger.Options{
			CollectorEndpoint: *jaegerEndpoint,
			Process: jaeger.Process{
				ServiceName: "stackrun",
			},
		})
		if err != nil {
			glog.Exitf("Couldn't create jaeger exporter: %s", err)
		}
		trace.RegisterExporter(je)
		defer je.Flush()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigint
		glog.Infof("Received %+v, exiting...", sig)
		cancel()
	}()

	f, err := openScript(*scriptPath)
	if err != nil {
		glog.Exit(err)
	}
	defer f.Close()

	var e *exporter.Exporter
	if *metrics {
		e = exporter.New(info)
	}
	if err := run(ctx, f, os.Stdout, e); err != nil {
		glog.Error(err)
		cancel()
		os.Exit(1) //nolint:gocritic // false positive
	}
}
