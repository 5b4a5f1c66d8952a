// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package visibility

import "github.com/aspectctl/aspectctl/internal/report"

// RowVisibility says whether a single candidate row is shown.
type RowVisibility int

const (
	Visible RowVisibility = iota
	Hidden
)

// View is the computed visibility of the whole table. Rows is indexed in
// candidate order. Columns covers the applicable and reason columns (and
// their headers) uniformly; the identifying columns are always shown.
type View struct {
	Rows    []RowVisibility
	Columns RowVisibility
}

// RowHidden reports whether candidate i is hidden. Out-of-range indexes are
// visible.
func (v View) RowHidden(i int) bool {
	return i >= 0 && i < len(v.Rows) && v.Rows[i] == Hidden
}

// VisibleCount returns the number of visible rows.
func (v View) VisibleCount() int {
	n := 0
	for _, r := range v.Rows {
		if r == Visible {
			n++
		}
	}
	return n
}

// Compute derives the view from the hide-non-decoratable toggle. A row is
// hidden only when the toggle is on and the candidate is not applicable, so
// flipping the toggle twice restores exactly the original view. Compute is
// pure: it never mutates the report or its selection.
func Compute(r *report.Report, hideNonDecoratable bool) View {
	v := View{
		Rows:    make([]RowVisibility, len(r.Candidates)),
		Columns: Visible,
	}

	if !hideNonDecoratable {
		return v
	}

	v.Columns = Hidden
	for i := range r.Candidates {
		if !r.Candidates[i].Applicable {
			v.Rows[i] = Hidden
		}
	}

	return v
}
