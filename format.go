package clipdoc

import (
	"encoding/csv"
	"io"
	"strings"
)

// csvHeader is the column order used by WriteCSV.
var csvHeader = []string{
	"file", "pub", "edition", "date", "byline", "length", "section", "head", "body",
}

// WriteCSV writes records as CSV with a header row, one row per record, in
// the order given.
func WriteCSV(w io.Writer, recs []*Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.File, rec.Pub, rec.Edition, rec.Date, rec.Byline,
			rec.Length, rec.Section, rec.Head, rec.Body,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatRecord formats a record for console display. The body is truncated
// unless full is set.
func FormatRecord(rec *Record, full bool) string {
	body := rec.Body
	if !full && len(body) > 120 {
		body = strings.TrimSpace(body[:120]) + "..."
	}

	var b strings.Builder
	b.WriteString(rec.Pub)
	if rec.Date != "" {
		b.WriteString("  " + rec.Date)
	}
	if rec.Edition != "" {
		b.WriteString("  (" + rec.Edition + ")")
	}
	b.WriteString("\n  " + rec.Head)
	if rec.Byline != "" {
		b.WriteString("\n  by " + rec.Byline)
	}
	if rec.Section != "" || rec.Length != "" {
		meta := rec.Section
		if rec.Length != "" {
			if meta != "" {
				meta += ", "
			}
			meta += rec.Length + " words"
		}
		b.WriteString("\n  " + meta)
	}
	if body != "" {
		b.WriteString("\n  " + body)
	}
	b.WriteString("\n  [" + rec.File + "]")
	return b.String()
}
