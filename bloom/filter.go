// Package bloom provides duplicate-record detection using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/clipdoc"
)

// Ensure Filter implements clipdoc.DuplicateFilter at compile time.
var _ clipdoc.DuplicateFilter = (*Filter)(nil)

// Filter wraps a Bloom filter keyed on record content hashes. News exports
// routinely contain the same article more than once, both within a file and
// across files in a batch.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected records with the
// given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether a record with the same content hash was added before,
// and adds the record. False positives are possible; false negatives are not.
func (f *Filter) Seen(rec *clipdoc.Record) bool {
	return f.f.TestAndAddString(rec.Hash())
}

// EstimatedCount returns the approximate number of records in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
