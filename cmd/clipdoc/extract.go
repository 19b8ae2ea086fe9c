package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/clipdoc"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	proc, err := newProcessor(deps, c.extractFlags, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	res, err := proc.Run(deps.Ctx, c.Path, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Extractions); err != nil {
			return err
		}
	} else {
		for _, ex := range res.Extractions {
			if ex.Duplicate {
				continue
			}
			fmt.Fprintln(deps.Stdout, clipdoc.FormatRecord(&ex.Record, false))
			fmt.Fprintln(deps.Stdout)
		}
	}

	fmt.Fprintf(deps.Stderr, "%d article(s) from %d file(s)", len(res.Extractions), res.Files)
	if res.Duplicates > 0 {
		fmt.Fprintf(deps.Stderr, ", %d duplicate(s)", res.Duplicates)
	}
	if res.Failed > 0 {
		fmt.Fprintf(deps.Stderr, ", %d file(s) failed", res.Failed)
	}
	fmt.Fprintln(deps.Stderr)

	return nil
}
