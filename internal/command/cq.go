// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/config"
	"github.com/aspectctl/aspectctl/internal/filter"
	"github.com/aspectctl/aspectctl/internal/invocation"
	"github.com/aspectctl/aspectctl/internal/meta"
	"github.com/aspectctl/aspectctl/internal/output"
	"github.com/aspectctl/aspectctl/internal/visibility"
)

var cqDefaultAttrs = []string{"qualname", "name", "type", "applicable", "reason", "selected"}

// cqCommandAction is the action handler for the "cq" subcommand. It applies
// the pattern/dunder selection once and emits the visible candidate rows per
// common flags, with the generated invocation as the footer.
func cqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "cq") {
		return nil
	}

	config.Config.Namespace = "cq"

	r, err := LoadReport(cmd)
	if err != nil {
		return err
	}

	// Non-interactively there is no previous selection to keep, so a bad
	// pattern is fatal here.
	opts := BuildFilterOptions(cmd)
	if err := filter.Apply(r, opts); err != nil {
		return err
	}

	view := visibility.Compute(r, !cmd.Bool("all"))

	cols := BuildColumns(cmd, cqDefaultAttrs...)
	log.Debugf("columns: %v", cols)

	if cmd.Bool("titles") {
		header := fmt.Sprintf("%s @ %s", r.Decorator, r.Module)
		if !r.Generated.IsZero() {
			header += fmt.Sprintf(" (generated %s)", humanize.Time(r.Generated))
		}
		cmd.Metadata["header"] = header
	}
	if cmd.String("output") == "text" {
		cmd.Metadata["footer"] = fmt.Sprintf("%d of %d selected\n%s",
			r.SelectedCount(), len(r.Candidates),
			invocation.Generate(r.Module, r.Decorator, opts))
	}

	output.Spit(r, view, cols, cmd, os.Stdout)

	return nil
}

// cqCommandBuilder constructs the cli.Command for "cq", wiring metadata,
// flags, and action/validator handlers.
func cqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "cq",
		Usage:     "candidate query",
		UsageText: "aspectctl cq <report> [options]",
		Flags: []cli.Flag{
			NewPatternFlag("cq", meta.Config.Source),
			NewDundersFlag("cq", meta.Config.Source),
			NewModuleFlag(),
			NewDecoratorFlag(),
			NewAllFlag(),
		},
		Action: cqCommandAction,
		Meta:   meta,
	}).Build()
}
