package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/clipdoc"
	"github.com/fwojciec/clipdoc/batch"
	"github.com/fwojciec/clipdoc/bloom"
	"github.com/fwojciec/clipdoc/fs"
	"github.com/fwojciec/clipdoc/goquery"
	clipslog "github.com/fwojciec/clipdoc/slog"
	"github.com/fwojciec/clipdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Records clipdoc.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract records from export files and print them"`
	Load    LoadCmd    `cmd:"" help:"Extract records and store them in the database"`
	List    ListCmd    `cmd:"" help:"List stored records"`
	Export  ExportCmd  `cmd:"" help:"Export stored records as XML or CSV"`
}

// extractFlags are the extraction options shared by extract and load.
type extractFlags struct {
	Separator   string `short:"s" default:"|" help:"Paragraph separator token"`
	Language    string `short:"l" default:"english" enum:"english,german" help:"Date grammar language"`
	RawDate     bool   `help:"Store the date block verbatim without parsing"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent file limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path string `arg:"" help:"Export file or directory"`
	JSON bool   `help:"Print records as JSON"`
	extractFlags
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	Path string `arg:"" help:"Export file or directory"`
	extractFlags
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	File string `help:"Filter by source file name"`
	Pub  string `help:"Filter by publication"`
	From string `help:"Earliest ISO date (inclusive)"`
	To   string `help:"Latest ISO date (inclusive)"`
	Full bool   `help:"Show full body text"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Format string `short:"f" default:"xml" enum:"xml,csv" help:"Output format"`
	File   string `help:"Filter by source file name"`
	Output string `short:"o" help:"Write to a file instead of stdout"`
}

// expectedDuplicates sizes the batch Bloom filter.
const expectedDuplicates = 100000

// newProcessor builds the extraction pipeline for one run. The store is nil
// for commands that only print records.
func newProcessor(deps *Dependencies, flags extractFlags, store clipdoc.RecordWriter) (*batch.Processor, error) {
	grammar, err := clipdoc.GrammarForLanguage(flags.Language)
	if err != nil {
		return nil, err
	}

	extractor := goquery.NewExtractor(goquery.Options{
		Separator: flags.Separator,
		Grammar:   grammar,
		RawDate:   flags.RawDate,
	})

	return &batch.Processor{
		Source:      fs.NewSource(),
		Extractor:   clipslog.NewLoggingExtractor(extractor, deps.Logger),
		Records:     store,
		Duplicates:  bloom.NewFilter(expectedDuplicates, 0.001),
		Concurrency: flags.Concurrency,
	}, nil
}
