// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report loads aspect dry-run reports. A report is a JSON or YAML
// document emitted by the weaving runtime that lists every candidate object
// found in a target module along with whether the chosen decorator could be
// applied to it and, if not, why.
//
// aspectctl never imports or inspects the target module itself; the report is
// the only input. The candidate list is fixed once loaded. The only mutable
// field is Candidate.Selected, which belongs to the filter package.
package report
