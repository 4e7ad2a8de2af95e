package mdtable

import (
	"fmt"
	"strings"
)

// cellKind is how a value is rendered, resolved from the column type and a
// nil check.
type cellKind int

const (
	kindText cellKind = iota
	kindNull
	kindBinary
)

const (
	nullText     = "NULL"
	lineBreak    = "<br>"
	bytesPerLine = 16
)

type cell struct {
	kind  cellKind
	lines []string
}

// text returns the cell as it appears inside a single Markdown table cell.
func (c cell) text() string {
	return strings.Join(c.lines, lineBreak)
}

func renderCell(v any, col Column) (cell, error) {
	if v == nil {
		return cell{kind: kindNull, lines: []string{nullText}}, nil
	}
	if col.IsBinary() {
		var b []byte
		switch vv := v.(type) {
		case []byte:
			b = vv
		case string:
			b = []byte(vv)
		default:
			return cell{}, fmt.Errorf("%w: column %q has type %s but value is %T", ErrUsage, col.Name, col.Type, v)
		}
		return cell{kind: kindBinary, lines: hexLines(b)}, nil
	}
	lines := strings.Split(displayString(v), "\n")
	for i, line := range lines {
		lines[i] = escape(line)
	}
	return cell{kind: kindText, lines: lines}, nil
}

func displayString(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case []byte:
		return string(vv)
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprint(v)
	}
}

const hexDigits = "0123456789abcdef"

// hexLines dumps b as space separated lowercase hex pairs, 16 bytes per line.
// An empty slice yields a single empty line.
func hexLines(b []byte) []string {
	if len(b) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, (len(b)+bytesPerLine-1)/bytesPerLine)
	for len(b) > 0 {
		n := min(len(b), bytesPerLine)
		var sb strings.Builder
		sb.Grow(n*3 - 1)
		for i, c := range b[:n] {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
		lines = append(lines, sb.String())
		b = b[n:]
	}
	return lines
}

var markdownEscaper = strings.NewReplacer(
	`|`, `\|`,
	`*`, `\*`,
	`<`, `\<`,
	`>`, `\>`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
