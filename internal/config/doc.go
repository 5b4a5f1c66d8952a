// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config loads the aspectctl YAML configuration file and exposes
// typed getters over its dotted key paths. Lookups prefer a per-subcommand
// namespace (e.g. "cq.output" before "output") so each subcommand can carry
// its own defaults.
package config
