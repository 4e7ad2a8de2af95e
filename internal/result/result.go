// Package result decodes query result documents into columns and rows.
//
// A document mirrors the query engine's REST payload:
//
//	{"columns": [{"name": "id", "type": "bigint"}], "data": [[1], [2]]}
//
// Values in varbinary columns are base64 encoded, as they are on the wire.
package result

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/mdtable"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidDocument   = errors.New("invalid result document")
)

// Format is the encoding of a result document.
type Format string

const (
	Auto Format = "auto"
	JSON Format = "json"
	YAML Format = "yaml"
)

var formats = []Format{Auto, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Resolve returns f, or when f is Auto the format implied by the extension
// of path. Anything other than .yaml or .yml is treated as JSON.
func (f Format) Resolve(path string) Format {
	if f != Auto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Document is a decoded result set.
type Document struct {
	Columns []mdtable.Column `json:"columns" yaml:"columns"`
	Data    [][]any          `json:"data" yaml:"data"`
}

// Decode reads a document in format f from r. JSON numbers are kept as
// [json.Number] so they print exactly as sent. Binary values are decoded
// from base64 into byte slices.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err := doc.decodeBinary(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) decodeBinary() error {
	for i, col := range d.Columns {
		if !col.IsBinary() {
			continue
		}
		for r, row := range d.Data {
			if i >= len(row) || row[i] == nil {
				continue
			}
			s, ok := row[i].(string)
			if !ok {
				return fmt.Errorf("%w: row %d column %q: binary value must be a base64 string, got %T", ErrInvalidDocument, r, col.Name, row[i])
			}
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return fmt.Errorf("%w: row %d column %q: %s", ErrInvalidDocument, r, col.Name, err)
			}
			row[i] = b
		}
	}
	return nil
}

// Batches splits the document's rows into consecutive batches of at most n
// rows. A non-positive n yields a single batch holding every row.
func (d *Document) Batches(n int) [][][]any {
	if len(d.Data) == 0 {
		return nil
	}
	if n <= 0 || n >= len(d.Data) {
		return [][][]any{d.Data}
	}
	batches := make([][][]any, 0, (len(d.Data)+n-1)/n)
	for rows := d.Data; len(rows) > 0; {
		k := min(n, len(rows))
		batches = append(batches, rows[:k])
		rows = rows[k:]
	}
	return batches
}
