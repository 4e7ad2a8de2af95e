package mdtable

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// ErrUsage is returned when a printer is called out of protocol: after it has
// finished, or with a row whose length disagrees with the column count.
var ErrUsage = errors.New("invalid printer usage")

// Column describes one column of a result set. Columns are positional: the
// Nth column governs the Nth value of every row.
type Column struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// Type names the engine reports for columns that get special treatment.
const (
	TypeVarbinary = "varbinary"
	TypeTinyint   = "tinyint"
	TypeSmallint  = "smallint"
	TypeInteger   = "integer"
	TypeBigint    = "bigint"
	TypeReal      = "real"
	TypeDouble    = "double"
	TypeDecimal   = "decimal"
)

var numericTypes = map[string]bool{
	TypeTinyint:  true,
	TypeSmallint: true,
	TypeInteger:  true,
	TypeBigint:   true,
	TypeReal:     true,
	TypeDouble:   true,
	TypeDecimal:  true,
}

// baseType strips type parameters and normalizes case, so "DECIMAL(10,2)"
// becomes "decimal".
func baseType(t string) string {
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}

// IsBinary reports whether values of the column are rendered as a hex dump.
func (c Column) IsBinary() bool { return baseType(c.Type) == TypeVarbinary }

// IsNumeric reports whether the column holds an integer, floating point or
// decimal type.
func (c Column) IsNumeric() bool { return numericTypes[baseType(c.Type)] }

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	if a == AlignRight {
		return "right"
	}
	return "left"
}

// Alignment returns the column's alignment: numeric columns are right
// aligned, everything else left aligned.
func (c Column) Alignment() Alignment {
	if c.IsNumeric() {
		return AlignRight
	}
	return AlignLeft
}

// Printer accepts rows in batches and renders them once input is exhausted.
type Printer interface {
	PrintRows(rows [][]any, complete bool) error
	Finish() error
}

// Write renders rows as a single complete batch and writes the table to w.
func Write(w io.Writer, columns []Column, rows [][]any) error {
	p := NewMarkdownPrinter(columns, w)
	if err := p.PrintRows(rows, true); err != nil {
		return err
	}
	return p.Finish()
}

// Marshal renders rows and returns the table bytes.
func Marshal(columns []Column, rows [][]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, columns, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
