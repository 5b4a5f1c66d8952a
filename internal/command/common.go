// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/columns"
	"github.com/aspectctl/aspectctl/internal/filter"
	"github.com/aspectctl/aspectctl/internal/meta"
	"github.com/aspectctl/aspectctl/internal/report"
)

// BuildColumns constructs a columns.List with defaults and optional extras
// from --attrs.
func BuildColumns(cmd *cli.Command, defaults ...string) (cl columns.List) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			cl.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			cl.Set(extras)
		}
	}
	return
}

// BuildFilterOptions extracts the filter options from the command's flags.
func BuildFilterOptions(cmd *cli.Command) filter.Options {
	return filter.Options{
		Pattern:        cmd.String("pattern"),
		IncludeDunders: cmd.Bool("dunders"),
	}
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadReport resolves the report positional argument and loads it, applying
// any --module/--decorator overrides. The positional defaults to the path
// resolved by InitApp, or "-" (stdin) when nothing was given.
func LoadReport(cmd *cli.Command) (*report.Report, error) {
	path := cmd.Args().First()
	if path == "" {
		path = GetMeta(cmd).ReportPath
	}
	if path == "" {
		path = "-"
	}

	r, err := report.Load(path)
	if err != nil {
		return nil, err
	}

	if m := cmd.String("module"); m != "" {
		r.Module = m
	}
	if d := cmd.String("decorator"); d != "" {
		r.Decorator = d
	}

	if r.Module == "" && r.Decorator == "" && len(r.Candidates) == 0 {
		return nil, fmt.Errorf("report %s has no content", path)
	}

	return r, nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr aspectctl <subcmd>` and returns true so the caller can exit
// early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "aspectctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
