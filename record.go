package clipdoc

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Field names recognized by the field classifier.
const (
	FieldPub     = "pub"
	FieldEdition = "edition"
	FieldDate    = "date"
	FieldByline  = "byline"
	FieldLength  = "length"
	FieldSection = "section"
	FieldHead    = "head"
	FieldBody    = "body"
)

// requiredFields must be non-empty after classification; a miss is reported
// as a diagnostic, never as an error.
var requiredFields = []string{FieldPub, FieldDate, FieldHead, FieldBody}

// FieldSet is an in-progress mapping of field name to extracted value for a
// single article. All recognized keys start empty and are filled
// incrementally by the field classifier.
type FieldSet map[string]string

// NewFieldSet returns a FieldSet with every recognized key set to "".
func NewFieldSet() FieldSet {
	return FieldSet{
		FieldPub:     "",
		FieldEdition: "",
		FieldDate:    "",
		FieldByline:  "",
		FieldLength:  "",
		FieldSection: "",
		FieldHead:    "",
		FieldBody:    "",
	}
}

// Record represents the structured output for one extracted article.
// All fields are text-typed; Length holds a digit-only string rather than an
// integer because export lengths may be empty or exceed safe integer range.
type Record struct {
	ID      string `json:"id,omitempty"`
	File    string `json:"file"`
	Pub     string `json:"pub"`
	Edition string `json:"edition"`
	Date    string `json:"date"`
	Byline  string `json:"byline"`
	Length  string `json:"length"`
	Section string `json:"section"`
	Head    string `json:"head"`
	Body    string `json:"body"`

	// ContentHash identifies the article's content independent of its
	// source file; set on storage.
	ContentHash string `json:"contentHash,omitempty"`

	// Position is the article's 0-based position within its source file.
	Position int `json:"position"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.File == "" {
		return Errorf(EINVALID, "record source file required")
	}
	return nil
}

// Hash returns a stable hex digest of the record's identifying content.
// Two exports of the same article hash identically even when they appear in
// different files.
func (r *Record) Hash() string {
	h := xxhash.New()
	for _, part := range []string{r.Pub, r.Date, r.Head, r.Body} {
		_, _ = h.WriteString(part)
		_, _ = h.WriteString("\x00")
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Diagnostic reports a required field that could not be extracted for one
// article. Diagnostics are warnings, not errors: the record is still
// produced with empty values for inspection.
type Diagnostic struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AssembleRecord merges a completed FieldSet into a Record for the given
// source file name and reports a diagnostic for every required field left
// empty after classification.
func AssembleRecord(fields FieldSet, file string) (Record, []Diagnostic) {
	rec := Record{
		File:    file,
		Pub:     fields[FieldPub],
		Edition: fields[FieldEdition],
		Date:    fields[FieldDate],
		Byline:  fields[FieldByline],
		Length:  fields[FieldLength],
		Section: fields[FieldSection],
		Head:    fields[FieldHead],
		Body:    fields[FieldBody],
	}

	var diags []Diagnostic
	for _, field := range requiredFields {
		if fields[field] == "" {
			diags = append(diags, Diagnostic{
				Field:   field,
				Message: fmt.Sprintf("could not extract %s", field),
			})
		}
	}
	return rec, diags
}

// RecordWriter writes records to storage.
type RecordWriter interface {
	CreateRecords(ctx context.Context, recs []*Record) error
}

// RecordService represents a service for managing extracted records.
type RecordService interface {
	// CreateRecord creates a new record.
	CreateRecord(ctx context.Context, rec *Record) error

	// CreateRecords creates multiple records in a batch.
	CreateRecords(ctx context.Context, recs []*Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error

	// DeleteRecordsByFile removes all records extracted from a source file.
	DeleteRecordsByFile(ctx context.Context, file string) error
}

// SortOrder represents the sort order for record queries.
type SortOrder string

// SortOrder constants for RecordFilter.
const (
	SortByPosition SortOrder = "position"
	SortByDate     SortOrder = "date"
)

// RecordFilter represents a filter for FindRecords. DateFrom and DateTo are
// inclusive ISO date bounds; records with an empty date never match a bound.
type RecordFilter struct {
	ID       *string `json:"id"`
	File     *string `json:"file"`
	Pub      *string `json:"pub"`
	DateFrom *string `json:"dateFrom"`
	DateTo   *string `json:"dateTo"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}

// DuplicateFilter flags records whose content was already observed earlier
// in a batch. Implementations may be probabilistic (false positives allowed,
// false negatives not).
type DuplicateFilter interface {
	// Seen reports whether an equivalent record was added before, and adds
	// the record.
	Seen(rec *Record) bool
}
