// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/aspectctl/aspectctl/internal/columns"
	"github.com/aspectctl/aspectctl/internal/config"
	"github.com/aspectctl/aspectctl/internal/log"
	"github.com/aspectctl/aspectctl/internal/report"
	"github.com/aspectctl/aspectctl/internal/visibility"
)

// Spit renders the visible candidate rows of r according to the output
// flags. The view decides which rows appear and whether the applicable and
// reason columns (and their headers) are shown at all; the column list
// shapes and transforms the remaining fields.
func Spit(r *report.Report,
	view visibility.View,
	cols columns.List,
	cmd *cli.Command,
	w io.Writer) {

	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump the original report document and go home.
	output := cmd.String("output")
	if output == "raw" {
		_, _ = w.Write(r.Raw)
		return
	}

	effective := effectiveColumns(cols, view)

	// Project the visible rows through the effective columns.
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var dataset []map[string]interface{}
	for i := range r.Candidates {
		if view.RowHidden(i) {
			continue
		}
		row := make(map[string]interface{})
		for j := range effective {
			col := effective[j]
			row[col.Title] = col.Value(r.Candidates[i])
		}
		dataset = append(dataset, row)
	}

	SortDataset(dataset, cmd.String("sort"))

	switch output {
	case "json":
		// TODO Figure out how to maintain key order in the JSON document.
		jsonOutput, err := json.Marshal(dataset)
		if err != nil {
			log.Errorf("Spit json marshal: %v", err)
		}
		_, _ = w.Write(jsonOutput)
	case "yaml":
		yamlOutput, err := yaml.Marshal(dataset)
		if err != nil {
			log.Errorf("Spit yaml marshal: %v", err)
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(dataset, effective, cmd, w)
	}
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options. Output is written to w. If w is nil, os.Stdout
// is used.
func TableWriter(
	resultSet []map[string]interface{},
	cols columns.List,
	cmd *cli.Command,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(resultSet) == 0 {
		return
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	if cmd.Bool("color") {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We build the table rows from the result set.
	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(result))
		for _, col := range cols {
			if !col.Include {
				continue
			}
			cell := "-"
			if v, ok := result[col.Title]; ok {
				if s := fmt.Sprintf("%v", v); s != "" {
					cell = s
				}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	// We render the header if present.
	if cmd.Metadata["header"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["header"].(string)))
	}

	// We configure the table with padding and styles.
	pad := cmd.Int("padding")
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		var headers []string
		for _, col := range cols {
			if col.Include {
				headers = append(headers, col.Title)
			}
		}

		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	// We render the footer if present.
	if cmd.Metadata["footer"] != nil {
		fmt.Fprintln(w, headerStyle.Render(cmd.Metadata["footer"].(string)))
	}
}

// SortDataset sorts the dataset in place by the comma separated column
// titles in spec, comparing rendered values as strings. A leading - on a key
// sorts that key descending. An empty spec leaves report order untouched.
func SortDataset(dataset []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		title string
		desc  bool
	}

	var keys []sortKey
	for _, key := range strings.Split(spec, ",") {
		if key = strings.TrimSpace(key); key != "" {
			k := sortKey{title: key}
			if strings.HasPrefix(key, "-") {
				k.title = key[1:]
				k.desc = true
			}
			keys = append(keys, k)
		}
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		for _, key := range keys {
			a := fmt.Sprintf("%v", dataset[i][key.title])
			b := fmt.Sprintf("%v", dataset[j][key.title])
			if a != b {
				if key.desc {
					return a > b
				}
				return a < b
			}
		}
		return false
	})
}

// effectiveColumns applies the view's column visibility on top of the
// configured column list. When the applicable/reason columns are hidden they
// are removed entirely, headers included.
func effectiveColumns(cols columns.List, view visibility.View) columns.List {
	if view.Columns == visibility.Visible {
		return cols
	}

	effective := make(columns.List, 0, len(cols))
	for _, col := range cols {
		if col.Key == columns.KeyApplicable || col.Key == columns.KeyReason {
			continue
		}
		effective = append(effective, col)
	}
	return effective
}

// getColors returns configured color values for table rendering. Each color is
// selected based on terminal background color and brightness so that we can
// make sure output is reasonably visible for all(?) terminal themes.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme. If not found, pick a
	// reasonable default based on terminal background.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
