// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filter is the selection engine over a dry-run report.
//
// A filter is a regular expression plus a dunder policy. The expression is
// matched against candidate short names as an anchored prefix ("foo" selects
// "foobar") with DOTALL semantics, mirroring the weaving runtime's own
// matching. Names bracketed by double underscores are suppressed from the
// selection unless explicitly included.
//
// Selection is sound: a selected candidate always prefix-matches the pattern,
// and is never a dunder unless dunders were included. A malformed pattern
// never clears the previous selection; Apply fails with *PatternError and
// leaves every Selected flag as it was.
package filter
