// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package tui renders the interactive dry-run preview: one screen with the
// candidate table, the pattern input, the dunder and hide toggles, and the
// continuously regenerated apply_aspect invocation with copy-to-clipboard.
package tui
