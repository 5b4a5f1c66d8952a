// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aspectctl/aspectctl/internal/report"
)

func newTestReport() *report.Report {
	return &report.Report{
		Module:    "mymod",
		Decorator: "Tracer",
		Candidates: []report.Candidate{
			report.NewCandidate("mymod.foo", "foo", "function", true, ""),
			report.NewCandidate("mymod.Bar", "Bar", "type", false, "not callable"),
			report.NewCandidate("mymod.baz", "baz", "function", true, ""),
		},
	}
}

func TestComputeHidesNonDecoratable(t *testing.T) {
	r := newTestReport()

	v := Compute(r, true)
	require.Len(t, v.Rows, 3)
	assert.Equal(t, Visible, v.Rows[0])
	assert.Equal(t, Hidden, v.Rows[1])
	assert.Equal(t, Visible, v.Rows[2])
	assert.Equal(t, Hidden, v.Columns)
	assert.Equal(t, 2, v.VisibleCount())
}

func TestComputeShowsEverything(t *testing.T) {
	r := newTestReport()

	v := Compute(r, false)
	for i := range v.Rows {
		assert.Equal(t, Visible, v.Rows[i])
	}
	assert.Equal(t, Visible, v.Columns)
	assert.Equal(t, 3, v.VisibleCount())
}

func TestComputeTogglesRoundTrip(t *testing.T) {
	r := newTestReport()

	before := Compute(r, true)
	after := Compute(r, false)
	again := Compute(r, true)

	// Toggling reveals exactly the hidden rows and both columns, and
	// toggling back re-hides exactly them.
	assert.Equal(t, before, again)
	for i := range before.Rows {
		if before.Rows[i] == Visible {
			assert.Equal(t, Visible, after.Rows[i])
		}
	}
}

func TestComputeDoesNotMutateSelection(t *testing.T) {
	r := newTestReport()
	r.Candidates[0].Selected = true

	_ = Compute(r, true)
	_ = Compute(r, false)

	assert.True(t, r.Candidates[0].Selected)
	assert.False(t, r.Candidates[1].Selected)
}

func TestRowHiddenOutOfRange(t *testing.T) {
	v := Compute(newTestReport(), true)
	assert.False(t, v.RowHidden(-1))
	assert.False(t, v.RowHidden(99))
}
