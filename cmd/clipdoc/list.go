package main

import (
	"fmt"

	"github.com/fwojciec/clipdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := clipdoc.RecordFilter{}
	if c.File != "" {
		filter.File = &c.File
	}
	if c.Pub != "" {
		filter.Pub = &c.Pub
	}
	if c.From != "" {
		filter.DateFrom = &c.From
	}
	if c.To != "" {
		filter.DateTo = &c.To
	}

	recs, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'clipdoc load' to extract some.")
		return nil
	}

	for _, rec := range recs {
		fmt.Fprintln(deps.Stdout, clipdoc.FormatRecord(rec, c.Full))
		fmt.Fprintln(deps.Stdout)
	}
	fmt.Fprintf(deps.Stdout, "%d record(s)\n", len(recs))

	return nil
}
