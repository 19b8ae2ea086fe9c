package mock

import (
	"context"

	"github.com/fwojciec/clipdoc"
)

var (
	_ clipdoc.RecordService   = (*RecordService)(nil)
	_ clipdoc.RecordWriter    = (*RecordService)(nil)
	_ clipdoc.DuplicateFilter = (*DuplicateFilter)(nil)
)

// RecordService is a mock implementation of clipdoc.RecordService.
type RecordService struct {
	CreateRecordFn        func(ctx context.Context, rec *clipdoc.Record) error
	CreateRecordsFn       func(ctx context.Context, recs []*clipdoc.Record) error
	FindRecordByIDFn      func(ctx context.Context, id string) (*clipdoc.Record, error)
	FindRecordsFn         func(ctx context.Context, filter clipdoc.RecordFilter) ([]*clipdoc.Record, error)
	DeleteRecordFn        func(ctx context.Context, id string) error
	DeleteRecordsByFileFn func(ctx context.Context, file string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *clipdoc.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) CreateRecords(ctx context.Context, recs []*clipdoc.Record) error {
	return s.CreateRecordsFn(ctx, recs)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*clipdoc.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter clipdoc.RecordFilter) ([]*clipdoc.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}

func (s *RecordService) DeleteRecordsByFile(ctx context.Context, file string) error {
	return s.DeleteRecordsByFileFn(ctx, file)
}

// DuplicateFilter is a mock implementation of clipdoc.DuplicateFilter.
type DuplicateFilter struct {
	SeenFn func(rec *clipdoc.Record) bool
}

func (f *DuplicateFilter) Seen(rec *clipdoc.Record) bool {
	return f.SeenFn(rec)
}
