// Package slog provides logging decorators for clipdoc interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipdoc"
)

// Ensure LoggingExtractor implements clipdoc.Extractor.
var _ clipdoc.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs per-file outcomes plus one
// warning per field-extraction diagnostic. The wrapped extractor stays free
// of I/O; where the warnings go is the logger's concern.
type LoggingExtractor struct {
	next   clipdoc.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next clipdoc.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(markup, file string) ([]*clipdoc.Extraction, error) {
	begin := time.Now()
	extractions, err := e.next.Extract(markup, file)
	if err != nil {
		e.logger.Error("extraction failed",
			"file", file,
			"error", err,
		)
		return nil, err
	}

	e.logger.Info("extracted articles",
		"file", file,
		"articles", len(extractions),
		"duration", time.Since(begin),
	)

	for _, ex := range extractions {
		for _, d := range ex.Diagnostics {
			e.logger.Warn("field extraction miss",
				"file", file,
				"article", ex.Record.Position,
				"field", d.Field,
			)
		}
	}
	return extractions, nil
}
