// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/config"
	"github.com/aspectctl/aspectctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the aspectctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// allow short if-style local cfg; no actual outer cfg
	cfg2, _ := config.Load(ns) //nolint
	meta := meta.Meta{
		Args:        args,
		Config:      cfg2,
		Context:     ctx,
		StartingDir: sd,
	}

	// See if the arg immediately following the command is the report path.
	// Special-case 'completion' which takes a plain positional argument
	// (e.g., 'bash' or 'zsh').
	if ns != "completion" && len(args) > 2 && !strings.HasPrefix(args[2], "-") {
		meta.ReportPath = args[2]
	}

	app := &cli.Command{
		Name:  "aspectctl",
		Usage: "Aspect dry-run preview",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "aspectctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		pvCommandBuilder(meta),
		cqCommandBuilder(meta),
		genCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
