// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package render formats reporter results for terminal output.
package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/errors"
	"github.com/cicd-ai-toolkit/threshold-reporter/pkg/reporter"
)

// Table renders results as an Item | Threshold | Greater table, in input order.
func Table(w io.Writer, threshold int, results []reporter.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("Item", "Threshold", "Greater")

	t := strconv.Itoa(threshold)
	for _, res := range results {
		greater := "no"
		if res.Verdict == reporter.Greater {
			greater = "yes"
		}
		if err := table.Append(strconv.Itoa(res.Item), t, greater); err != nil {
			return errors.OutputError("failed to append table row", err).WithContext("item", res.Item)
		}
	}

	if err := table.Render(); err != nil {
		return errors.OutputError("failed to render table", err)
	}
	return nil
}
