// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/aspectctl/aspectctl/internal/columns"
	"github.com/aspectctl/aspectctl/internal/meta"
)

func TestOutputValidator(t *testing.T) {
	for _, v := range []string{"text", "json", "raw", "yaml"} {
		assert.NoError(t, OutputValidator(v), v)
	}

	err := OutputValidator("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestFlagValidators_StopsAtFirstError(t *testing.T) {
	calls := 0
	pass := func(any) error { calls++; return nil }
	fail := func(any) error { calls++; return assert.AnError }

	err := FlagValidators("x", pass, fail, pass)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestBuildColumns(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "attrs", Value: "!reason,selected"},
		},
	}

	cl := BuildColumns(cmd, "qualname", "name", "reason")
	require.Len(t, cl, 4)
	assert.Equal(t, columns.KeyQualname, cl[0].Key)
	assert.False(t, cl[2].Include, "reason excluded by --attrs")
	assert.Equal(t, columns.KeySelected, cl[3].Key)
}

func TestBuildFilterOptions(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pattern", Value: "handle_.*"},
			&cli.BoolFlag{Name: "dunders", Value: true},
		},
	}

	opts := BuildFilterOptions(cmd)
	assert.Equal(t, "handle_.*", opts.Pattern)
	assert.True(t, opts.IncludeDunders)
}

func TestGetMeta(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))

	m := meta.Meta{ReportPath: "report.json"}
	cmd := &cli.Command{Metadata: map[string]any{"meta": m}}
	assert.Equal(t, "report.json", GetMeta(cmd).ReportPath)

	cmd = &cli.Command{Metadata: map[string]any{"meta": "wrong type"}}
	assert.Equal(t, meta.Meta{}, GetMeta(cmd))
}

func TestQueryCommandBuilder_Build(t *testing.T) {
	qcb := &QueryCommandBuilder{
		Name:  "cq",
		Usage: "candidate query",
		Flags: []cli.Flag{NewAllFlag()},
		Meta:  meta.Meta{ReportPath: "report.json"},
	}

	cmd := qcb.Build()
	assert.Equal(t, "cq", cmd.Name)
	assert.Equal(t, "report.json", GetMeta(cmd).ReportPath)

	// The builder folds in the tldr flag and the shared query flags.
	names := map[string]bool{}
	for _, f := range cmd.Flags {
		names[f.Names()[0]] = true
	}
	for _, want := range []string{"all", "tldr", "attrs", "color", "output", "padding", "sort", "titles"} {
		assert.True(t, names[want], want)
	}
}
