package main

import (
	"fmt"

	"github.com/fwojciec/clipdoc"
	"github.com/fwojciec/clipdoc/batch"
)

// Run executes the load command.
func (c *LoadCmd) Run(deps *Dependencies) error {
	proc, err := newProcessor(deps, c.extractFlags, deps.Records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	progress := func(event batch.ProgressEvent) {
		if event.Err != nil {
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n",
				event.Completed, event.Total, event.File, clipdoc.ErrorMessage(event.Err))
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %d article(s)\n",
			event.Completed, event.Total, event.File, event.Articles)
	}

	res, err := proc.Run(deps.Ctx, c.Path, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipdoc.ErrorMessage(err))
		return err
	}

	stored := len(res.Extractions) - res.Duplicates
	fmt.Fprintf(deps.Stdout, "Stored %d record(s) from %d file(s)", stored, res.Files)
	if res.Duplicates > 0 {
		fmt.Fprintf(deps.Stdout, " (%d duplicate(s) skipped)", res.Duplicates)
	}
	if res.Failed > 0 {
		fmt.Fprintf(deps.Stdout, " (%d file(s) failed)", res.Failed)
	}
	fmt.Fprintln(deps.Stdout)

	return nil
}
