// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package columns

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/aspectctl/aspectctl/internal/log"
	"github.com/aspectctl/aspectctl/internal/report"
)

// Keys of the candidate fields a column may project, in default order.
const (
	KeyQualname   = "qualname"
	KeyName       = "name"
	KeyType       = "type"
	KeyApplicable = "applicable"
	KeyReason     = "reason"
	KeySelected   = "selected"
)

// Column is one output column over the candidate table. Key names the
// candidate field, Title is the heading (and JSON/YAML key) used on output,
// and TransformSpec optionally reshapes the rendered value.
type Column struct {
	Key           string `yaml:"key" json:"Key"`
	Include       bool   `yaml:"include" json:"Include"`
	Title         string `yaml:"title" json:"Title"`
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// List is the ordered set of columns used to shape output.
type List []Column

// Default returns the standard column set for candidate output.
func Default() List {
	var l List
	for _, k := range []string{KeyQualname, KeyName, KeyType, KeyApplicable, KeyReason} {
		l = append(l, Column{Key: k, Include: true, Title: k})
	}
	return l
}

// Set parses each spec from --attrs and folds it into the List. Each comma
// separated spec is key[:title[:transform]]. A leading ! excludes the column
// from output while keeping it available for sorting. Unknown keys are
// skipped with a log entry rather than rejecting the whole spec.
func (l *List) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	const (
		keyIdx = iota
		titleIdx
		transformIdx
	)

specloop:
	for _, spec := range strings.Split(value, ",") {
		col := Column{Include: true}

		fields := strings.Split(spec, ":")

		col.Key = strings.TrimSpace(fields[keyIdx])
		if strings.HasPrefix(col.Key, "!") {
			col.Include = false
			col.Key = col.Key[1:]
		}

		if !validKey(col.Key) {
			log.Errorf("unknown column key: %s", col.Key)
			continue
		}

		col.Title = col.Key
		if len(fields) > titleIdx && strings.TrimSpace(fields[titleIdx]) != "" {
			col.Title = strings.TrimSpace(fields[titleIdx])
		}

		if len(fields) > transformIdx {
			col.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// A respecified key updates the existing column in place so command
		// defaults can be overridden without reordering.
		for i := range *l {
			if (*l)[i].Key == col.Key {
				(*l)[i].Include = col.Include
				(*l)[i].Title = col.Title
				(*l)[i].TransformSpec = col.TransformSpec
				continue specloop
			}
		}

		*l = append(*l, col)
	}

	return nil
}

// String renders the List back into --attrs spec form.
func (l *List) String() string {
	result := make([]string, 0, len(*l))
	for _, col := range *l {
		s := col.Key
		if !col.Include {
			s = "!" + s
		}
		result = append(result, s+":"+col.Title+":"+col.TransformSpec)
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (l *List) Type() string { return "list" }

// Value extracts the rendered value of this column from a candidate.
func (c *Column) Value(cand report.Candidate) string {
	var raw string
	switch c.Key {
	case KeyQualname:
		raw = cand.Qualname
	case KeyName:
		raw = cand.Name
	case KeyType:
		raw = cand.TypeName
	case KeyApplicable:
		raw = strconv.FormatBool(cand.Applicable)
	case KeyReason:
		raw = cand.Reason
	case KeySelected:
		raw = strconv.FormatBool(cand.Selected)
	}
	return c.Transform(raw)
}

// Transform applies the column's transform spec to a rendered value. Specs
// combine single-letter codes: l/u force case, T rewrites an RFC3339 value
// as a humanized age, and a trailing integer truncates (negative keeps both
// ends around a middle ellipsis).
func (c *Column) Transform(value string) string {
	if c.TransformSpec == "" {
		return value
	}

	result := value

	if strings.Contains(c.TransformSpec, "T") {
		if t, err := time.Parse(time.RFC3339, result); err == nil {
			result = humanize.Time(t)
			log.Tracef("time ago: result=%s", result)
		}
	}

	// The later of l/u wins so a global case transform can be overridden by a
	// per-column one appended after it.
	lastL := strings.LastIndexAny(c.TransformSpec, "l")
	lastU := strings.LastIndexAny(c.TransformSpec, "u")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Length transforms take the last (overriding) integer in the spec.
	match := lengthRe.FindAllString(c.TransformSpec, -1)
	if len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		if len(result) > abs && abs > 2 {
			if l < 0 {
				lr := abs/2 - 1
				result = result[0:lr] + ".." + result[len(result)-lr:]
				log.Tracef("length middle: result=%s", result)
			} else {
				result = result[:l]
				log.Tracef("length trunc: result=%s", result)
			}
		}
	}

	return result
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// validKey reports whether key names a candidate field.
func validKey(key string) bool {
	switch key {
	case KeyQualname, KeyName, KeyType, KeyApplicable, KeyReason, KeySelected:
		return true
	}
	return false
}
