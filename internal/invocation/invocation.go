// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package invocation

import (
	"fmt"
	"strings"

	"github.com/aspectctl/aspectctl/internal/filter"
)

// Generate serializes the current decorator, module and filter options into
// the single apply_aspect line the user will paste into the weaving runtime:
//
//	use.apply_aspect(mymod, Tracer, pattern="bar", aspectize_dunders=True)
//
// Keyword order is fixed (pattern before aspectize_dunders) so output is
// byte-identical for identical inputs. It does not depend on which rows are
// currently hidden. Empty module or decorator names still yield a
// syntactically valid line.
func Generate(module, decorator string, opts filter.Options) string {
	return fmt.Sprintf("use.apply_aspect(%s, %s, pattern=%s, aspectize_dunders=%s)",
		module, decorator, quote(opts.Pattern), boolean(opts.IncludeDunders))
}

// quote renders s as a double-quoted Python string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// boolean renders b as a Python boolean literal.
func boolean(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
