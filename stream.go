package mdtable

import (
	"io"
	"iter"
)

// WriteIter collects rows from an iterator and writes the table to w once
// the iterator is exhausted. Layout needs every row, so nothing is written
// while rows are still arriving.
func WriteIter(w io.Writer, columns []Column, seq iter.Seq[[]any]) error {
	var rows [][]any
	seq(func(row []any) bool {
		rows = append(rows, row)
		return true
	})
	return Write(w, columns, rows)
}

// WriteChan collects rows from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, columns []Column, ch <-chan []any) error {
	return WriteIter(w, columns, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
