// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package invocation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aspectctl/aspectctl/internal/filter"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		decorator string
		opts      filter.Options
		want      string
	}{
		{
			name:      "basic",
			module:    "mymod",
			decorator: "Foo",
			opts:      filter.Options{Pattern: "bar", IncludeDunders: true},
			want:      `use.apply_aspect(mymod, Foo, pattern="bar", aspectize_dunders=True)`,
		},
		{
			name:      "dunders off",
			module:    "mymod",
			decorator: "Tracer",
			opts:      filter.Options{Pattern: ".*"},
			want:      `use.apply_aspect(mymod, Tracer, pattern=".*", aspectize_dunders=False)`,
		},
		{
			name:      "empty pattern",
			module:    "pkg.sub",
			decorator: "timed",
			opts:      filter.Options{},
			want:      `use.apply_aspect(pkg.sub, timed, pattern="", aspectize_dunders=False)`,
		},
		{
			name:      "quotes and backslashes escaped",
			module:    "m",
			decorator: "d",
			opts:      filter.Options{Pattern: `say "hi" \w+`},
			want:      `use.apply_aspect(m, d, pattern="say \"hi\" \\w+", aspectize_dunders=False)`,
		},
		{
			name:      "control characters escaped",
			module:    "m",
			decorator: "d",
			opts:      filter.Options{Pattern: "a\nb\tc\r"},
			want:      `use.apply_aspect(m, d, pattern="a\nb\tc\r", aspectize_dunders=False)`,
		},
		{
			name:      "empty names still well formed",
			module:    "",
			decorator: "",
			opts:      filter.Options{Pattern: "x"},
			want:      `use.apply_aspect(, , pattern="x", aspectize_dunders=False)`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Generate(tc.module, tc.decorator, tc.opts)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGenerateKeywordOrder(t *testing.T) {
	got := Generate("mymod", "Foo", filter.Options{Pattern: "bar", IncludeDunders: true})

	pat := strings.Index(got, "pattern=")
	dun := strings.Index(got, "aspectize_dunders=")
	assert.Greater(t, pat, 0)
	assert.Greater(t, dun, pat)
}

func TestGenerateDeterministic(t *testing.T) {
	opts := filter.Options{Pattern: `__\w+__`, IncludeDunders: true}
	first := Generate("mymod", "Foo", opts)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Generate("mymod", "Foo", opts))
	}
}
