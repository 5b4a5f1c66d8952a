// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/aspectctl/aspectctl/internal/config"
	"github.com/aspectctl/aspectctl/internal/filter"
	"github.com/aspectctl/aspectctl/internal/meta"
	"github.com/aspectctl/aspectctl/internal/tui"
)

// pvCommandAction is the action handler for the "pv" subcommand. It loads the
// dry-run report and starts the interactive preview screen.
func pvCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "pv") {
		return nil
	}

	config.Config.Namespace = "pv"

	// The preview and the report both need a terminal; a piped report would
	// fight the TUI for stdin.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pv needs a terminal; use cq for non-interactive output")
	}
	if cmd.Args().First() == "-" || m.ReportPath == "-" {
		return fmt.Errorf("pv cannot read the report from stdin")
	}

	r, err := LoadReport(cmd)
	if err != nil {
		return err
	}

	// The starting pattern must compile; inside the TUI a bad pattern only
	// warns, but there is no last-known-good selection to fall back to yet.
	opts := BuildFilterOptions(cmd)
	if err := filter.Validate(opts); err != nil {
		return err
	}

	log.Debugf("starting preview: report=%s, candidates=%d", r.Source, len(r.Candidates))
	return tui.Run(r, opts)
}

// pvCommandBuilder constructs the cli.Command for "pv", wiring metadata,
// flags, and action handlers.
func pvCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "pv",
		Usage:     "interactive preview",
		UsageText: "aspectctl pv <report> [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewPatternFlag("pv", meta.Config.Source),
			NewDundersFlag("pv", meta.Config.Source),
			NewModuleFlag(),
			NewDecoratorFlag(),
		},
		Action: pvCommandAction,
	}
}
