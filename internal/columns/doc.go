// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package columns shapes candidate output fields. A --attrs spec selects,
// retitles and transforms the columns rendered by cq, e.g.
// "qualname:path:-40,!reason" keeps qualname (middle-ellipsized to 40) under
// the title "path" and drops the reason column.
package columns
