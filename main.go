// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aspectctl/aspectctl/internal/command"
	"github.com/aspectctl/aspectctl/internal/log"
	"github.com/aspectctl/aspectctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	case len(args) > 1 && (args[1] == "cq" || args[1] == "gen"):
		// cq and gen may take their report from stdin.
		return processReportArgs(args)
	default:
		return args
	}
}

// processReportArgs ensures the argument immediately following the
// subcommand is "-" or an existing report file, inserting "-" (stdin)
// otherwise.
func processReportArgs(args []string) []string {
	if len(args) == 2 || (args[2] != "-" && !isExistingFile(args[2])) {
		args = append(args[:2], append([]string{"-"}, args[2:]...)...)
	}
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI
	// handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = deduplicateFlags(args)
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// isExistingFile checks if the given path exists and is a file.
func isExistingFile(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	return false
}

// deduplicateFlags removes repeated flags from args, keeping the last
// occurrence of each (so a user can override earlier flags, including ones
// expanded from config sets). Positional arguments are preserved in place. A
// flag token followed by a non-flag token is treated as a flag with a value;
// a trailing or flag-followed flag is treated as boolean.
func deduplicateFlags(args []string) []string {
	type token struct {
		flag  string // flag name without dashes, "" for positionals
		parts []string
	}

	result := make([]string, 0, len(args))
	if len(args) <= 2 {
		return append(result, args...)
	}

	// Program name and subcommand always pass through untouched.
	result = append(result, args[0], args[1])

	var tokens []token
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") {
			tokens = append(tokens, token{parts: []string{a}})
			continue
		}

		name := strings.TrimLeft(a, "-")
		if eq := strings.Index(name, "="); eq != -1 {
			name = name[:eq]
			tokens = append(tokens, token{flag: name, parts: []string{a}})
			continue
		}

		// Consume a following non-flag token as this flag's value.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, token{flag: name, parts: []string{a, args[i+1]}})
			i++
			continue
		}

		tokens = append(tokens, token{flag: name, parts: []string{a}})
	}

	// Keep only the last occurrence of each flag name.
	keep := make([]bool, len(tokens))
	seen := make(map[string]bool)
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].flag == "" {
			keep[i] = true
			continue
		}
		if !seen[tokens[i].flag] {
			seen[tokens[i].flag] = true
			keep[i] = true
		}
	}

	for i, t := range tokens {
		if keep[i] {
			result = append(result, t.parts...)
		}
	}

	return result
}
