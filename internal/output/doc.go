// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits the candidate dataset in text, json, yaml, or raw
// form, applying column projection, visibility, and sorting on the way out.
package output
