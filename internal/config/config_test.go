// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets ASPECTCTL_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("ASPECTCTL_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "handle_.*", cfg.Data["pattern"])
				assert.Equal(t, "/tmp/report.json", cfg.Data["report"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				colors, ok := cfg.Data["colors"].(map[string]interface{})
				assert.True(t, ok, "colors should be a map")
				assert.Equal(t, "#f6be00", colors["title"])
				cq, ok := cfg.Data["cq"].(map[string]interface{})
				assert.True(t, ok, "cq should be a map")
				assert.Equal(t, 4, cq["padding"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, "aspectctl", cfg.Data["name"])
				assert.Equal(t, 2, cfg.Data["padding"])
				assert.Equal(t, true, cfg.Data["color"])
				assert.Equal(t, 30.5, cfg.Data["threshold"])
				attrs, ok := cfg.Data["attrs"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, attrs, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("ASPECTCTL_CFG_FILE", "/nonexistent/path/aspectctl.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgFileIsDirectory(t *testing.T) {
	t.Setenv("ASPECTCTL_CFG_FILE", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "pattern",
			want:     "handle_.*",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "colors.title",
			want:     "#f6be00",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "padding",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "padding",
			want:     2,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "threshold",
			want:     30,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "cq.padding",
			want:     4,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "pattern",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	cleanup := setupTestConfig(t, "mixed-types.yaml")
	defer cleanup()
	_, _ = Load()

	got, err := GetBool("color")
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("missing", false)
	assert.NoError(t, err)
	assert.False(t, got)

	_, err = GetBool("name")
	assert.Error(t, err)
}

func TestNamespacePreference(t *testing.T) {
	cleanup := setupTestConfig(t, "namespaced.yaml")
	defer cleanup()
	_, _ = Load()

	// Unnamespaced lookup sees the top-level key.
	Config.Namespace = ""
	got, err := GetString("pattern")
	assert.NoError(t, err)
	assert.Equal(t, ".*", got)

	// A namespaced lookup prefers the pv.* key.
	Config.Namespace = "pv"
	got, err = GetString("pattern")
	assert.NoError(t, err)
	assert.Equal(t, "handle_.*", got)

	// Keys only present under the namespace resolve too.
	b, err := GetBool("dunders")
	assert.NoError(t, err)
	assert.True(t, b)
}
