package mock

import "github.com/fwojciec/clipdoc"

var _ clipdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clipdoc.Extractor.
type Extractor struct {
	ExtractFn func(markup, file string) ([]*clipdoc.Extraction, error)
}

func (e *Extractor) Extract(markup, file string) ([]*clipdoc.Extraction, error) {
	return e.ExtractFn(markup, file)
}
