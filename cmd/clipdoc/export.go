package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/clipdoc"
	"github.com/fwojciec/clipdoc/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := clipdoc.RecordFilter{}
	if c.File != "" {
		filter.File = &c.File
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	out := io.Writer(deps.Stdout)
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch c.Format {
	case "csv":
		err = clipdoc.WriteCSV(out, recs)
	default:
		err = etree.NewWriter().WriteRecords(out, recs)
	}
	if err != nil {
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "Exported %d record(s) to %s\n", len(recs), c.Output)
	}
	return nil
}
