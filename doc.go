// Package mdtable renders query results as GitHub-flavored Markdown tables.
//
// A result set is described by a slice of [Column] values and rows of
// nullable values, one per column. [MarkdownPrinter] buffers rows in batches
// and renders the whole table in a single write once input is exhausted:
//
//	p := mdtable.NewMarkdownPrinter(columns, os.Stdout)
//	if err := p.PrintRows(rows, true); err != nil { ... }
//	if err := p.Finish(); err != nil { ... }
//
// [Write], [Marshal], [WriteIter] and [WriteChan] wrap that sequence for
// callers that already hold all rows.
//
// # Rendering
//
// Each line has the form "| a | b |" with every cell padded to its column
// width. Widths are measured in terminal display columns, so wide East Asian
// characters count twice and the Markdown source stays aligned as plain text.
//
// Numeric columns (tinyint, smallint, integer, bigint, real, double, decimal)
// are right aligned and marked with a trailing ":" in the separator line.
//
// Values render as follows:
//
//   - nil renders as NULL
//   - varbinary values render as lowercase hex, 16 bytes per line
//   - everything else renders as text, one line per newline-separated part,
//     with |, *, < and > escaped by a backslash
//
// Lines within a cell are joined with <br>.
//
// # Errors
//
// Calling a printer after it has finished, or passing a row whose length
// differs from the column count, returns an error wrapping [ErrUsage].
// Errors from the underlying writer are returned unchanged.
package mdtable
