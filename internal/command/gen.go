// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/clipboard"
	"github.com/aspectctl/aspectctl/internal/config"
	"github.com/aspectctl/aspectctl/internal/filter"
	"github.com/aspectctl/aspectctl/internal/invocation"
	"github.com/aspectctl/aspectctl/internal/meta"
)

// genCommandAction is the action handler for the "gen" subcommand. It prints
// the apply_aspect invocation for the report and filter flags, optionally
// copying it to the clipboard.
func genCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	// Bail out early if we're just dumping tldr.
	if ShortCircuitTLDR(ctx, cmd, "gen") {
		return nil
	}

	config.Config.Namespace = "gen"

	r, err := LoadReport(cmd)
	if err != nil {
		return err
	}

	// The invocation embeds the pattern verbatim, so refuse one that would
	// not compile on the applying side either.
	opts := BuildFilterOptions(cmd)
	if err := filter.Validate(opts); err != nil {
		return err
	}

	line := invocation.Generate(r.Module, r.Decorator, opts)
	fmt.Println(line)

	if cmd.Bool("copy") {
		// A failed clipboard write only warns; the line was already printed.
		if err := clipboard.Write(line); err != nil {
			log.Warnf("clipboard write failed: %v", err)
		}
	}

	return nil
}

// genCommandBuilder constructs the cli.Command for "gen", wiring metadata,
// flags, and action/validator handlers.
func genCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "gen",
		Usage:     "generate the apply_aspect invocation",
		UsageText: "aspectctl gen <report> [options]",
		Flags: []cli.Flag{
			NewPatternFlag("gen", meta.Config.Source),
			NewDundersFlag("gen", meta.Config.Source),
			NewModuleFlag(),
			NewDecoratorFlag(),
			&cli.BoolFlag{
				Name:        "copy",
				Usage:       "also copy the invocation to the clipboard",
				HideDefault: true,
			},
		},
		Action: genCommandAction,
		Meta:   meta,
	}).Build()
}
