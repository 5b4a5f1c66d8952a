// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"regexp"

	"github.com/aspectctl/aspectctl/internal/log"
	"github.com/aspectctl/aspectctl/internal/report"
)

// Options is the current filter state. Pattern is a regular expression
// matched against each candidate's short name as an anchored prefix, with
// "." also matching newlines. IncludeDunders controls whether dunder names
// may be selected at all.
type Options struct {
	Pattern        string `yaml:"pattern" json:"pattern"`
	IncludeDunders bool   `yaml:"includeDunders" json:"includeDunders"`
}

// PatternError reports a filter pattern that failed to compile. It is
// recovered locally by callers: the previous selection is kept and the
// condition is surfaced to the user instead of propagating.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Apply recomputes the Selected flag of every candidate in r from opts.
//
// The pattern is compiled before anything is touched. On compile failure a
// *PatternError is returned and no candidate's Selected changes, preserving
// the last-known-good selection. On success, for every candidate:
// Selected = pattern matches Name as a prefix, then forced false for dunder
// names unless opts.IncludeDunders is set. The suppression is applied after
// the match on purpose; keep that order if the predicate ever grows.
//
// Apply is idempotent and never reads Applicable or Reason.
func Apply(r *report.Report, opts Options) error {
	re, err := compile(opts.Pattern)
	if err != nil {
		log.Debugf("pattern rejected: pattern=%q, err=%v", opts.Pattern, err)
		return &PatternError{Pattern: opts.Pattern, Err: err}
	}

	for i := range r.Candidates {
		c := &r.Candidates[i]
		selected := re.MatchString(c.Name)
		if selected && c.IsDunder && !opts.IncludeDunders {
			selected = false
		}
		c.Selected = selected
	}

	log.Debugf("filter applied: pattern=%q, dunders=%v, selected=%d",
		opts.Pattern, opts.IncludeDunders, r.SelectedCount())
	return nil
}

// Validate compiles opts.Pattern and returns a *PatternError if it is not a
// valid regular expression. It does not touch any selection state.
func Validate(opts Options) error {
	if _, err := compile(opts.Pattern); err != nil {
		return &PatternError{Pattern: opts.Pattern, Err: err}
	}
	return nil
}

// compile builds the anchored, dot-matches-newline form of pattern. The user
// pattern is wrapped in a non-capturing group so anchoring survives
// alternation ("a|b" must not become "\Aa|b").
func compile(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?s)\A(?:` + pattern + `)`)
}
