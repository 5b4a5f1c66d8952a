// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package columns

import (
	"embed"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aspectctl/aspectctl/internal/report"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testSetCase represents a single test case for TestList_Set.
type testSetCase struct {
	Name     string   `yaml:"name"`
	Default  bool     `yaml:"default"`
	Value    string   `yaml:"value"`
	WantLen  int      `yaml:"wantLen"`
	WantCols []Column `yaml:"wantCols"`
}

// testTransformCase represents a single test case for TestColumn_Transform.
type testTransformCase struct {
	Name          string `yaml:"name"`
	TransformSpec string `yaml:"transformSpec"`
	Input         string `yaml:"input"`
	Want          string `yaml:"want"`
}

// testStringCase represents a test case for TestList_String.
type testStringCase struct {
	Name string   `yaml:"name"`
	Cols []Column `yaml:"cols"`
	Want string   `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestList_Set(t *testing.T) {
	var tests []testSetCase
	err := loadTestData("set_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			var l List
			if tt.Default {
				l = Default()
			}

			require.NoError(t, l.Set(tt.Value))
			assert.Len(t, l, tt.WantLen)

			for i, want := range tt.WantCols {
				assert.Equal(t, want.Key, l[i].Key, "col[%d].Key", i)
				assert.Equal(t, want.Include, l[i].Include, "col[%d].Include", i)
				assert.Equal(t, want.Title, l[i].Title, "col[%d].Title", i)
				assert.Equal(t, want.TransformSpec, l[i].TransformSpec, "col[%d].TransformSpec", i)
			}
		})
	}
}

func TestColumn_Transform(t *testing.T) {
	var tests []testTransformCase
	err := loadTestData("transform_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			col := Column{TransformSpec: tt.TransformSpec}
			got := col.Transform(tt.Input)

			if tt.Want == "DYNAMIC_RELATIVE_TIME" {
				parsed, err := time.Parse(time.RFC3339, tt.Input)
				require.NoError(t, err)
				assert.Equal(t, humanize.Time(parsed), got)
				return
			}

			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestList_String(t *testing.T) {
	var tests []testStringCase
	err := loadTestData("string_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			l := List(tt.Cols)
			assert.Equal(t, tt.Want, l.String())
		})
	}
}

func TestList_Type(t *testing.T) {
	l := List{}
	assert.Equal(t, "list", l.Type())
}

func TestColumn_Value(t *testing.T) {
	cand := report.NewCandidate("mymod.Bar", "Bar", "type", false, "not callable")
	cand.Selected = true

	tests := map[string]string{
		KeyQualname:   "mymod.Bar",
		KeyName:       "Bar",
		KeyType:       "type",
		KeyApplicable: "false",
		KeyReason:     "not callable",
		KeySelected:   "true",
	}

	for key, want := range tests {
		col := Column{Key: key}
		assert.Equal(t, want, col.Value(cand), key)
	}
}

func TestColumn_ValueAppliesTransform(t *testing.T) {
	cand := report.NewCandidate("mymod.foo", "foo", "function", true, "")
	col := Column{Key: KeyName, TransformSpec: "u"}
	assert.Equal(t, "FOO", col.Value(cand))
}
