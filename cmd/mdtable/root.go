package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/mdtable"
	"github.com/bjaus/mdtable/internal/result"
)

type rootParams struct {
	input     string
	format    string
	batchSize int
	logLevel  string
}

func addFlags(fs *pflag.FlagSet, p *rootParams) {
	fs.StringVarP(&p.input, "input", "i", "-", "result document to read, - for stdin")
	fs.StringVar(&p.format, "format", string(result.Auto), "input format: auto, json or yaml")
	fs.IntVar(&p.batchSize, "batch-size", 0, "rows per batch handed to the printer, 0 for a single batch")
	fs.StringVar(&p.logLevel, "log-level", "warning", "log level: debug, info, warning or error")
}

func newRootCommand() *cobra.Command {
	params := rootParams{}

	cmd := &cobra.Command{
		Use:   "mdtable",
		Short: "Render a query result as a Markdown table",
		Long: `Render a query result document as a GitHub-flavored Markdown table.

The document holds the result columns and rows:

    {"columns": [{"name": "id", "type": "bigint"}], "data": [[1], [2]]}

Varbinary values are base64 encoded and are printed as hex.

    $ mdtable -i result.json
    | id |
    | --:|
    |  1 |
    |  2 |
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			level, err := logrus.ParseLevel(params.logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), params, logger)
		},
	}
	addFlags(cmd.Flags(), &params)
	return cmd
}

func run(stdin io.Reader, stdout io.Writer, params rootParams, logger logrus.FieldLogger) error {
	f, err := result.ParseFormat(params.format)
	if err != nil {
		return err
	}
	f = f.Resolve(params.input)

	in := stdin
	if params.input != "-" {
		file, err := os.Open(params.input)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	doc, err := result.Decode(in, f)
	if err != nil {
		return fmt.Errorf("%s: %w", params.input, err)
	}
	logger.WithFields(logrus.Fields{
		"input":   params.input,
		"format":  f,
		"columns": len(doc.Columns),
		"rows":    len(doc.Data),
	}).Debug("Decoded result document.")

	p := mdtable.NewMarkdownPrinter(doc.Columns, stdout)
	batches := doc.Batches(params.batchSize)
	for i, batch := range batches {
		complete := i == len(batches)-1
		logger.WithFields(logrus.Fields{
			"batch":    i,
			"rows":     len(batch),
			"complete": complete,
		}).Debug("Printing batch.")
		if err := p.PrintRows(batch, complete); err != nil {
			return err
		}
	}
	return p.Finish()
}
