package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bjaus/cfmt/internal/cases"
)

func writeMarkdown(w io.Writer, results []cases.Result) error {
	if len(results) == 0 {
		return nil
	}
	rows := make([][]string, len(results))
	for i, r := range results {
		cells := row(r)
		for j, c := range cells {
			cells[j] = escapeMarkdown(c)
		}
		rows[i] = cells
	}

	// Minimum 3 for alignment markers.
	widths := computeWidths(header, rows)
	for i := range widths {
		widths[i] = max(widths[i], 3)
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		if aligns[i] == AlignCenter {
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		} else {
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, cells := range rows {
		if err := writeMarkdownRow(w, cells, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
