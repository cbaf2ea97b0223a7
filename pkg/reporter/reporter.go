// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package reporter classifies integers against a fixed threshold and
// reports one line per item.
package reporter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/observability"
)

// Verdict is the outcome of comparing one item with the threshold.
type Verdict int

const (
	// NotGreater means item <= threshold.
	NotGreater Verdict = iota
	// Greater means item > threshold.
	Greater
)

func (v Verdict) String() string {
	if v == Greater {
		return "greater"
	}
	return "not greater"
}

// Result is the classification of a single item.
type Result struct {
	Item    int
	Verdict Verdict
}

// Reporter holds a threshold. It is read-only after New.
type Reporter struct {
	threshold int
	out       io.Writer
	color     bool
	logger    observability.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithOutput sets the sink for Process. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Reporter) {
		if w != nil {
			r.out = w
		}
	}
}

// WithColor highlights "greater" lines in green.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		r.color = enabled
	}
}

// WithLogger sets the logger used for run-level debug output.
func WithLogger(l observability.Logger) Option {
	return func(r *Reporter) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Reporter. Any threshold is accepted.
func New(threshold int, opts ...Option) *Reporter {
	r := &Reporter{
		threshold: threshold,
		out:       os.Stdout,
		logger:    observability.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Threshold returns the configured threshold.
func (r *Reporter) Threshold() int {
	return r.threshold
}

// Classify compares item with the threshold. Equality is NotGreater.
func (r *Reporter) Classify(item int) Verdict {
	if item > r.threshold {
		return Greater
	}
	return NotGreater
}

// Line returns the report line for item, without a trailing newline.
func (r *Reporter) Line(item int) string {
	if r.Classify(item) == Greater {
		return fmt.Sprintf("Item %d is greater than %d", item, r.threshold)
	}
	return fmt.Sprintf("Item %d is not greater", item)
}

// Report classifies items in order without writing anything.
func (r *Reporter) Report(items []int) []Result {
	results := make([]Result, 0, len(items))
	for _, item := range items {
		results = append(results, Result{Item: item, Verdict: r.Classify(item)})
	}
	return results
}

// Process writes one line per item to the output, in input order.
// Write errors are ignored.
func (r *Reporter) Process(items []int) {
	greater := 0
	for _, item := range items {
		line := r.Line(item)
		if r.Classify(item) == Greater {
			greater++
			if r.color {
				line = greenLine(line)
			}
		}
		_, _ = fmt.Fprintln(r.out, line)
	}

	r.logger.Debug("processed items",
		observability.Int("threshold", r.threshold),
		observability.Int("items", len(items)),
		observability.Int("greater", greater),
	)
}

func greenLine(s string) string {
	c := color.New(color.FgGreen)
	c.EnableColor()
	return c.Sprint(s)
}
