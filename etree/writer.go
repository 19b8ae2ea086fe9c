// Package etree provides XML serialization of extracted records.
package etree

import (
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/clipdoc"
)

// Writer serializes record sets as an XML document, one <record> element per
// article with the eight extraction fields as child elements.
type Writer struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// NewWriter creates a Writer with two-space indentation.
func NewWriter() *Writer {
	return &Writer{Indent: 2}
}

// WriteRecords writes the records to out as a single XML document.
func (w *Writer) WriteRecords(out io.Writer, recs []*clipdoc.Record) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("records")
	for _, rec := range recs {
		el := root.CreateElement("record")
		el.CreateAttr("file", rec.File)
		if rec.ID != "" {
			el.CreateAttr("id", rec.ID)
		}

		el.CreateElement("pub").SetText(rec.Pub)
		el.CreateElement("edition").SetText(rec.Edition)
		el.CreateElement("date").SetText(rec.Date)
		el.CreateElement("byline").SetText(rec.Byline)
		el.CreateElement("length").SetText(rec.Length)
		el.CreateElement("section").SetText(rec.Section)
		el.CreateElement("head").SetText(rec.Head)
		el.CreateElement("body").SetText(rec.Body)
	}

	doc.Indent(w.Indent)
	_, err := doc.WriteTo(out)
	return err
}
