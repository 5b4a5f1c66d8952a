// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/aspectctl/aspectctl/internal/log"
)

// Candidate is one object discovered inside the target module, with its
// applicability precomputed by the weaving runtime that produced the report.
// Everything except Selected is immutable once loaded. Selected is owned by
// the filter engine and must not be written anywhere else.
type Candidate struct {
	Qualname   string `yaml:"qualname" json:"qualname"`
	Name       string `yaml:"name" json:"name"`
	TypeName   string `yaml:"type" json:"type"`
	Applicable bool   `yaml:"applicable" json:"applicable"`
	Reason     string `yaml:"reason" json:"reason"`

	// Derived at load time from Name.
	IsDunder bool `yaml:"-" json:"-"`

	// Mutable selection flag, recomputed by filter.Apply.
	Selected bool `yaml:"-" json:"-"`
}

// Report is the dry-run report for one module/decorator pair. The candidate
// list is ordered as produced and is never added to or removed from after
// Load returns.
type Report struct {
	Module     string
	Decorator  string
	Generated  time.Time
	Source     string
	Candidates []Candidate

	// Raw is the original report document, kept for --output raw.
	Raw []byte
}

// SelectedCount returns how many candidates are currently selected.
func (r *Report) SelectedCount() int {
	n := 0
	for i := range r.Candidates {
		if r.Candidates[i].Selected {
			n++
		}
	}
	return n
}

// Load reads a report from path, or from stdin when path is "-". Format is
// chosen by extension (.yaml/.yml for YAML) with JSON as the default.
func Load(path string) (*Report, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var r *Report
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		r, err = parseYAML(data)
	default:
		r, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	r.Source = path
	r.Raw = data
	log.Debugf("report loaded: source=%s, candidates=%d", path, len(r.Candidates))
	return r, nil
}

// parseJSON decodes a JSON report document.
func parseJSON(data []byte) (*Report, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("report is not valid JSON")
	}

	doc := gjson.ParseBytes(data)
	r := &Report{
		Module:    doc.Get("module").String(),
		Decorator: doc.Get("decorator").String(),
	}

	// The generated timestamp is optional; ignore anything unparseable.
	if g := doc.Get("generated"); g.Exists() {
		if t, err := time.Parse(time.RFC3339, g.String()); err == nil {
			r.Generated = t
		}
	}

	for _, c := range doc.Get("candidates").Array() {
		r.Candidates = append(r.Candidates, NewCandidate(
			c.Get("qualname").String(),
			c.Get("name").String(),
			c.Get("type").String(),
			c.Get("applicable").Bool(),
			c.Get("reason").String(),
		))
	}

	return r, nil
}

// parseYAML decodes a YAML report document.
func parseYAML(data []byte) (*Report, error) {
	var doc struct {
		Module     string      `yaml:"module"`
		Decorator  string      `yaml:"decorator"`
		Generated  string      `yaml:"generated"`
		Candidates []Candidate `yaml:"candidates"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	r := &Report{
		Module:    doc.Module,
		Decorator: doc.Decorator,
	}

	if doc.Generated != "" {
		if t, err := time.Parse(time.RFC3339, doc.Generated); err == nil {
			r.Generated = t
		}
	}

	for _, c := range doc.Candidates {
		r.Candidates = append(r.Candidates,
			NewCandidate(c.Qualname, c.Name, c.TypeName, c.Applicable, c.Reason))
	}

	return r, nil
}

// NewCandidate builds a Candidate and derives its dunder flag. A dunder name
// is bracketed by double underscores on both ends ("__init__").
func NewCandidate(qualname, name, typeName string, applicable bool, reason string) Candidate {
	return Candidate{
		Qualname:   qualname,
		Name:       name,
		TypeName:   typeName,
		Applicable: applicable,
		Reason:     reason,
		IsDunder:   strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__"),
	}
}
