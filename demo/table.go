/*
table.go

MIT License

Copyright (c) Foxglove Technologies Inc

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

/*
 Adapted from https://github.com/foxglove/foxglove-cli/blob/main/foxglove/util/tablewriter/tablewriter.go
*/

package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

/*
Table rendering for the "table" output format, one row per queue:

	|  queue  |  size  |  values  |
	|---------|--------|----------|
	| fixed   | 3      | 1 2 3    |

Widths are measured in runes so multibyte values line up.
*/

////////////////////////////////////////////////////////////////////////////////

// FormatTable renders sections as a table with one row per queue.
const FormatTable = "table"

var tableHeaders = []string{"queue", "size", "values"} // nolint:gochecknoglobals

func tableRows(sections []Section) [][]string {
	rows := make([][]string, 0, len(sections))
	for _, section := range sections {
		rows = append(rows, []string{
			section.Name,
			strconv.Itoa(len(section.Values)),
			strings.Join(section.Values, " "),
		})
	}
	return rows
}

// cellWidths pads headers by two spaces a side and values by one, then rounds
// each column up so its header centers evenly.
func cellWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = utf8.RuneCountInString(header) + 4
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell) + 2; w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, header := range headers {
		if (widths[i]-utf8.RuneCountInString(header))%2 == 1 {
			widths[i]++
		}
	}
	return widths
}

func writeTable(w io.Writer, sections []Section) error {
	rows := tableRows(sections)
	widths := cellWidths(tableHeaders, rows)
	sb := &strings.Builder{}

	sb.WriteString("|")
	for i, header := range tableHeaders {
		padding := strings.Repeat(" ", (widths[i]-utf8.RuneCountInString(header))/2)
		sb.WriteString(padding + header + padding + "|")
	}
	sb.WriteString("\n|")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width) + "|")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString("|")
		for i, cell := range row {
			sb.WriteString(" " + cell + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)-1) + "|")
		}
		sb.WriteString("\n")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
