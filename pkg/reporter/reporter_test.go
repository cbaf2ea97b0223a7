// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package reporter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/observability"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func process(t *testing.T, threshold int, items []int) []string {
	t.Helper()
	var buf bytes.Buffer
	New(threshold, WithOutput(&buf)).Process(items)
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestProcess_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		items     []int
		want      []string
	}{
		{
			name:      "default run",
			threshold: 10,
			items:     []int{5, 15, 8, 20, 3},
			want: []string{
				"Item 5 is not greater",
				"Item 15 is greater than 10",
				"Item 8 is not greater",
				"Item 20 is greater than 10",
				"Item 3 is not greater",
			},
		},
		{
			name:      "equal to threshold",
			threshold: 5,
			items:     []int{5},
			want:      []string{"Item 5 is not greater"},
		},
		{
			name:      "negative threshold",
			threshold: -3,
			items:     []int{-10, 0, -3},
			want: []string{
				"Item -10 is not greater",
				"Item 0 is greater than -3",
				"Item -3 is not greater",
			},
		},
		{
			name:      "extreme values",
			threshold: math.MinInt,
			items:     []int{math.MinInt, math.MaxInt},
			want: []string{
				"Item -9223372036854775808 is not greater",
				"Item 9223372036854775807 is greater than -9223372036854775808",
			},
		},
		{
			name:      "duplicates kept",
			threshold: 0,
			items:     []int{1, 1, 0},
			want: []string{
				"Item 1 is greater than 0",
				"Item 1 is greater than 0",
				"Item 0 is not greater",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, process(t, tt.threshold, tt.items))
		})
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	r := New(10, WithOutput(&buf))

	r.Process(nil)
	r.Process([]int{})

	assert.Empty(t, buf.String())
}

func TestProcess_LineCountAndOrder(t *testing.T) {
	for threshold := -4; threshold <= 4; threshold++ {
		items := []int{3, -4, 0, 4, -1, 2, 2, -3}
		lines := process(t, threshold, items)
		require.Len(t, lines, len(items))

		r := New(threshold)
		for i, item := range items {
			assert.Equal(t, r.Line(item), lines[i])
			if item > threshold {
				assert.Equal(t, Greater, r.Classify(item))
			} else {
				assert.Equal(t, NotGreater, r.Classify(item))
			}
		}
	}
}

func TestProcess_Reusable(t *testing.T) {
	var buf bytes.Buffer
	r := New(1, WithOutput(&buf))

	r.Process([]int{2})
	r.Process([]int{0})

	assert.Equal(t, "Item 2 is greater than 1\nItem 0 is not greater\n", buf.String())
	assert.Equal(t, 1, r.Threshold())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestProcess_IgnoresWriteErrors(t *testing.T) {
	r := New(0, WithOutput(failingWriter{}))
	assert.NotPanics(t, func() { r.Process([]int{-1, 1}) })
}

func TestProcess_Color(t *testing.T) {
	var buf bytes.Buffer
	New(10, WithOutput(&buf), WithColor(true)).Process([]int{15, 5})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "\x1b["))
	assert.Contains(t, lines[0], "Item 15 is greater than 10")
	assert.Equal(t, "Item 5 is not greater", lines[1])
}

func TestReport(t *testing.T) {
	got := New(10).Report([]int{5, 15, 10})

	assert.Equal(t, []Result{
		{Item: 5, Verdict: NotGreater},
		{Item: 15, Verdict: Greater},
		{Item: 10, Verdict: NotGreater},
	}, got)
	assert.Empty(t, New(10).Report(nil))
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "not greater", NotGreater.String())
}

func TestProcess_LogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := New(10,
		WithOutput(&bytes.Buffer{}),
		WithLogger(observability.NewFromZap(zap.New(core))),
	)

	r.Process([]int{5, 15, 20})

	entries := logs.FilterMessage("processed items").AllUntimed()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 3, ctx["items"])
	assert.EqualValues(t, 2, ctx["greater"])
}
