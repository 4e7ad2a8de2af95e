package mdtable

import (
	"fmt"
	"io"
)

type printerState int

const (
	stateAccumulating printerState = iota
	stateComplete                  // complete batch received, Finish still allowed
	stateFinished
)

// MarkdownPrinter buffers every row of a result set and renders it as a
// GitHub-flavored Markdown table once input is exhausted. Column widths
// depend on every cell, so nothing is written before that point.
//
// A MarkdownPrinter is not safe for concurrent use.
type MarkdownPrinter struct {
	columns []Column
	w       io.Writer
	rows    [][]any
	state   printerState
}

var _ Printer = (*MarkdownPrinter)(nil)

// NewMarkdownPrinter returns a printer for the given columns that writes the
// rendered table to w.
func NewMarkdownPrinter(columns []Column, w io.Writer) *MarkdownPrinter {
	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &MarkdownPrinter{columns: cols, w: w}
}

// PrintRows buffers a batch of rows. When complete is true the table is
// rendered and no further rows are accepted. A batch containing a row whose
// length differs from the column count is rejected as a whole.
func (p *MarkdownPrinter) PrintRows(rows [][]any, complete bool) error {
	if p.state != stateAccumulating {
		return fmt.Errorf("%w: printer already finished", ErrUsage)
	}
	for i, row := range rows {
		if len(row) != len(p.columns) {
			return fmt.Errorf("%w: row %d has %d values, expected %d", ErrUsage, len(p.rows)+i, len(row), len(p.columns))
		}
	}
	p.rows = append(p.rows, rows...)
	if !complete {
		return nil
	}
	p.state = stateComplete
	return p.flush()
}

// Finish signals that no more rows will be printed. It renders the buffered
// rows unless a complete batch already did. An empty result set writes
// nothing.
func (p *MarkdownPrinter) Finish() error {
	switch p.state {
	case stateFinished:
		return fmt.Errorf("%w: printer already finished", ErrUsage)
	case stateComplete:
		p.state = stateFinished
		return nil
	}
	p.state = stateFinished
	return p.flush()
}

func (p *MarkdownPrinter) flush() error {
	rows := p.rows
	p.rows = nil
	out, err := renderMarkdown(p.columns, rows)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}
	_, err = p.w.Write(out)
	return err
}
