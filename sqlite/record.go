package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/clipdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ clipdoc.RecordService = (*RecordService)(nil)
	_ clipdoc.RecordWriter  = (*RecordService)(nil)
)

const recordColumns = "id, file, pub, edition, date, byline, length, section, head, body, content_hash, position, created_at"

// RecordService implements clipdoc.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecord creates a new record, assigning an ID, content hash and
// creation timestamp.
func (s *RecordService) CreateRecord(ctx context.Context, rec *clipdoc.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ID = uuid.New().String()
	rec.ContentHash = rec.Hash()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.File, rec.Pub, rec.Edition, rec.Date, rec.Byline, rec.Length,
		rec.Section, rec.Head, rec.Body, rec.ContentHash, rec.Position,
		rec.CreatedAt.Format(time.RFC3339))

	return err
}

// CreateRecords creates multiple records in one transaction.
func (s *RecordService) CreateRecords(ctx context.Context, recs []*clipdoc.Record) error {
	for _, rec := range recs {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, rec := range recs {
		rec.ID = uuid.New().String()
		rec.ContentHash = rec.Hash()
		rec.CreatedAt = now

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO records (`+recordColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.File, rec.Pub, rec.Edition, rec.Date, rec.Byline, rec.Length,
			rec.Section, rec.Head, rec.Body, rec.ContentHash, rec.Position,
			rec.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*clipdoc.Record, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+` FROM records WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, clipdoc.Errorf(clipdoc.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter.
func (s *RecordService) FindRecords(ctx context.Context, filter clipdoc.RecordFilter) ([]*clipdoc.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.File != nil {
		query.WriteString(" AND file = ?")
		args = append(args, *filter.File)
	}
	if filter.Pub != nil {
		query.WriteString(" AND pub = ?")
		args = append(args, *filter.Pub)
	}
	if filter.DateFrom != nil {
		query.WriteString(" AND date != '' AND date >= ?")
		args = append(args, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query.WriteString(" AND date != '' AND date <= ?")
		args = append(args, *filter.DateTo)
	}

	switch filter.SortBy {
	case clipdoc.SortByDate:
		query.WriteString(" ORDER BY date ASC, file ASC, position ASC")
	default:
		query.WriteString(" ORDER BY file ASC, position ASC")
	}

	if filter.Limit > 0 || filter.Offset > 0 {
		// OFFSET requires a LIMIT clause in sqlite; -1 means unbounded.
		limit := filter.Limit
		if limit == 0 {
			limit = -1
		}
		query.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*clipdoc.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return clipdoc.Errorf(clipdoc.ENOTFOUND, "record not found")
	}
	return nil
}

// DeleteRecordsByFile removes all records extracted from a source file.
func (s *RecordService) DeleteRecordsByFile(ctx context.Context, file string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE file = ?", file)
	return err
}

// scanner abstracts sql.Row and sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*clipdoc.Record, error) {
	var rec clipdoc.Record
	var createdAt string

	if err := sc.Scan(&rec.ID, &rec.File, &rec.Pub, &rec.Edition, &rec.Date,
		&rec.Byline, &rec.Length, &rec.Section, &rec.Head, &rec.Body,
		&rec.ContentHash, &rec.Position, &createdAt); err != nil {
		return nil, err
	}

	var err error
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &rec, nil
}
