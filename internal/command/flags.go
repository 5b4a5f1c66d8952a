// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

// NewGlobalFlags returns the flags shared by the non-interactive query
// commands (cq, gen).
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of columns to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "left padding between text output columns",
			Value: 2,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewPatternFlag constructs the --pattern flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewPatternFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "pattern",
		Aliases: []string{"p"},
		Usage:   "regular expression matched against candidate names as a prefix",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ASPECTCTL_PATTERN"),
		),
		Value: "",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewDundersFlag constructs the --dunders flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewDundersFlag(params ...string) (flag *cli.BoolFlag) {
	flag = &cli.BoolFlag{
		Name:    "dunders",
		Aliases: []string{"d"},
		Usage:   "allow dunder names (__x__) to be selected",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("ASPECTCTL_DUNDERS"),
		),
		Value: false,
	}

	if len(params) == 2 {
		flag.Sources.Chain = append(flag.Sources.Chain,
			yaml.YAML(params[0]+"."+flag.Name, altsrc.StringSourcer(params[1])),
			yaml.YAML(flag.Name, altsrc.StringSourcer(params[1])))
	}

	return
}

// NewModuleFlag constructs the --module override flag. The module name
// normally comes from the report itself.
func NewModuleFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "module",
		Aliases: []string{"m"},
		Usage:   "target module name. Overrides the report",
	}
}

// NewDecoratorFlag constructs the --decorator override flag. The decorator
// name normally comes from the report itself.
func NewDecoratorFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "decorator",
		Usage: "decorator name. Overrides the report",
	}
}

// NewAllFlag constructs the --all flag controlling the hide-non-decoratable
// toggle for non-interactive output.
func NewAllFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"A"},
		Usage:   "show non-decoratable candidates and the applicable/reason columns",
		Value:   false,
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given binary exists on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
