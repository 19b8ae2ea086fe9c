// Package batch orchestrates extraction across many export files.
// It coordinates file discovery, markup normalization, article extraction,
// duplicate detection and storage.
package batch

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fwojciec/clipdoc"
	"golang.org/x/sync/errgroup"
)

// Processor runs the extraction pipeline over every export file its Source
// discovers. Files are processed concurrently up to Concurrency, but results
// keep file order and article order within a file is never disturbed. A
// failure local to one file never aborts its siblings.
type Processor struct {
	Source    clipdoc.Source
	Extractor clipdoc.Extractor

	// Records, when set, receives the non-duplicate records of a run.
	Records clipdoc.RecordWriter

	// Duplicates, when set, flags records whose content repeats earlier
	// output. Flagged records are kept in the result but not stored.
	Duplicates clipdoc.DuplicateFilter

	Concurrency int
}

// Result holds the outcome of one batch run.
type Result struct {
	// Extractions in file-then-in-file-article order, duplicates included.
	Extractions []*clipdoc.Extraction

	Files      int
	Failed     int
	Duplicates int
}

// ProgressEvent reports per-file progress during a run.
type ProgressEvent struct {
	File      string
	Completed int
	Total     int
	Articles  int
	Err       error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single file.
type fileResult struct {
	file        string
	extractions []*clipdoc.Extraction
	err         error
}

// Run processes every export file under path. The progress callback, if
// provided, receives one event per completed file as processing proceeds.
func (p *Processor) Run(ctx context.Context, path string, progress ProgressFunc) (*Result, error) {
	files, err := p.Source.Discover(path)
	if err != nil {
		return nil, err
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	results := make([]fileResult, len(files))
	var completed atomic.Int64

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			results[i] = p.processFile(file)
			if progress != nil {
				progress(ProgressEvent{
					File:      file,
					Completed: int(completed.Add(1)),
					Total:     len(files),
					Articles:  len(results[i].extractions),
					Err:       results[i].err,
				})
			}
			return nil
		})
	}
	_ = g.Wait()

	res := &Result{Files: len(files)}
	for _, fr := range results {
		if fr.err != nil {
			res.Failed++
			continue
		}
		for _, ex := range fr.extractions {
			// Dedup runs sequentially here, after the concurrent phase, so
			// the filter sees records in deterministic batch order.
			if p.Duplicates != nil && p.Duplicates.Seen(&ex.Record) {
				ex.Duplicate = true
				res.Duplicates++
			}
			res.Extractions = append(res.Extractions, ex)
		}
	}

	if p.Records != nil {
		var recs []*clipdoc.Record
		for _, ex := range res.Extractions {
			if ex.Duplicate {
				continue
			}
			recs = append(recs, &ex.Record)
		}
		if len(recs) > 0 {
			if err := p.Records.CreateRecords(ctx, recs); err != nil {
				return nil, err
			}
		}
	}

	return res, nil
}

// processFile runs one file through normalization and extraction. Each file
// gets a fresh Normalizer so synthetic identifiers start at 0 per file.
func (p *Processor) processFile(file string) fileResult {
	lines, err := p.Source.ReadLines(file)
	if err != nil {
		return fileResult{file: file, err: err}
	}

	markup := clipdoc.NewNormalizer().Normalize(lines)

	extractions, err := p.Extractor.Extract(markup, filepath.Base(file))
	if err != nil {
		return fileResult{file: file, err: err}
	}
	return fileResult{file: file, extractions: extractions}
}
