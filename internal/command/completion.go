// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/meta"
)

const bashCompletionScript = `# bash completion for aspectctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_aspectctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "pv cq gen completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
  local filters="--pattern -p --dunders -d --module -m --decorator"
  local common="--attrs -a --color -c --output -o --padding --sort -s --titles -t --tldr"

    # Determine if the report positional (first non-flag after subcommand)
    # has already been provided
    local have_report=0
    local idx=2
    while [[ $idx -lt ${#COMP_WORDS[@]} ]]; do
        local w=${COMP_WORDS[$idx]}
        if [[ $w != -* ]]; then
            have_report=1
            break
        fi
        ((idx++))
    done

    case "$cmd" in
    pv)
      local opts="$filters --tldr"
            ;;
        cq)
      local opts="$filters $common --all -A"
            ;;
        gen)
      local opts="$filters $common --copy"
            ;;
        completion)
            local opts="bash zsh"
            COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

  # If current token starts with '-', or we've already consumed the report,
  # offer flags
  if [[ "$cur" == -* || $have_report -eq 1 ]]; then
    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
  fi

  # Otherwise, we're on the report positional — complete files
  COMPREPLY=( $(compgen -o default -- "$cur") )
  return 0
}

complete -F _aspectctl aspectctl
`

const zshCompletionScript = `#compdef aspectctl

_aspectctl() {
  local -a cmds
  cmds=(
    'pv:interactive preview'
    'cq:candidate query'
    'gen:generate the apply_aspect invocation'
    'completion:generate shell completion script'
  )

  local -a filters
  filters=(
  '(-p --pattern)'{-p,--pattern}'[candidate name pattern]:pattern'
  '(-d --dunders)'{-d,--dunders}'[allow dunder names]'
  '(-m --module)'{-m,--module}'[module name override]:module'
  '--decorator[decorator name override]:decorator'
  )

  local -a common
  common=(
  '(-a --attrs)'{-a,--attrs}'[columns to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[column padding]:padding'
  '(-s --sort)'{-s,--sort}'[sort columns]:attrs'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'aspectctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    pv)
      _arguments -C \
        $filters \
        '::report:_files'
      ;;
    cq)
      _arguments -C \
        $filters \
        $common \
        '(-A --all)'{-A,--all}'[show non-decoratable candidates]' \
        '::report:_files'
      ;;
    gen)
      _arguments -C \
        $filters \
        $common \
        '--copy[copy the invocation to the clipboard]' \
        '::report:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:report:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _aspectctl aspectctl aspectctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	switch shell {
	case "bash":
		fmt.Fprint(os.Stdout, bashCompletionScript)
	case "zsh":
		fmt.Fprint(os.Stdout, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(os.Stdout, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(os.Stdout, bashCompletionScript)
		default:
			fmt.Fprintln(os.Stderr, "usage: aspectctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "aspectctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
