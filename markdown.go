package mdtable

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
)

// eastAsian classifies runes independent of the process locale, so output is
// identical in every environment. Ambiguous characters count as narrow.
var eastAsian = &runewidth.Condition{StrictEmojiNeutral: true}

// displayWidth counts terminal columns per rune: wide and fullwidth runes
// take 2, every other rune takes 1, including combining marks, zero-width
// and control characters.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		if eastAsian.RuneWidth(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// renderMarkdown lays out the complete row set and returns the table text.
// Nothing is returned for an empty row set.
func renderMarkdown(columns []Column, rows [][]any) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	numCols := len(columns)

	header := make([]string, numCols)
	widths := make([]int, numCols)
	aligns := make([]Alignment, numCols)
	for i, col := range columns {
		header[i] = col.Name
		widths[i] = max(displayWidth(col.Name), 1)
		aligns[i] = col.Alignment()
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, numCols)
		for i, col := range columns {
			c, err := renderCell(row[i], col)
			if err != nil {
				return nil, err
			}
			text := c.text()
			if n := displayWidth(text); n > widths[i] {
				widths[i] = n
			}
			cells[r][i] = text
		}
	}

	var buf bytes.Buffer
	writeMarkdownRow(&buf, header, widths, aligns)

	buf.WriteByte('|')
	for i, w := range widths {
		buf.WriteByte(' ')
		buf.WriteString(strings.Repeat("-", w))
		if aligns[i] == AlignRight {
			buf.WriteByte(':')
		} else {
			buf.WriteByte(' ')
		}
		buf.WriteByte('|')
	}
	buf.WriteByte('\n')

	for _, row := range cells {
		writeMarkdownRow(&buf, row, widths, aligns)
	}
	return buf.Bytes(), nil
}

func writeMarkdownRow(buf *bytes.Buffer, cells []string, widths []int, aligns []Alignment) {
	padded := make([]string, len(widths))
	for i, w := range widths {
		padded[i] = alignCell(cells[i], w, aligns[i])
	}
	buf.WriteString("| ")
	buf.WriteString(strings.Join(padded, " | "))
	buf.WriteString(" |\n")
}

func alignCell(s string, w int, align Alignment) string {
	pad := w - displayWidth(s)
	if pad <= 0 {
		return s
	}
	if align == AlignRight {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}
