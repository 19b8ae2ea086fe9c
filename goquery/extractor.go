// Package goquery implements article splitting and field classification on
// top of PuerkitoBio/goquery's lenient HTML parsing.
package goquery

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipdoc"
	"golang.org/x/net/html"
)

// Ensure Extractor implements clipdoc.Extractor at compile time.
var _ clipdoc.Extractor = (*Extractor)(nil)

// Field label prefixes emitted by the export format.
const (
	bylinePrefix  = "BYLINE: "
	sectionPrefix = "SECTION: "
	lengthPrefix  = "LENGTH: "
)

// reservedPrefixes disqualify a block from body-text candidacy. SECTION and
// LENGTH never reach the body rule because their label branches run first.
var reservedPrefixes = []string{
	bylinePrefix,
	"URL: ",
	"LOAD-DATE: ",
	"LANGUAGE: ",
	"GRAPHIC: ",
	"PUBLICATION-TYPE: ",
	"JOURNAL-CODE: ",
}

// Options configure one extraction run.
type Options struct {
	// Separator is the display token inserted between joined body
	// paragraphs. Defaults to "|".
	Separator string

	// Grammar selects the locale date grammar. Defaults to English.
	Grammar *clipdoc.DateGrammar

	// RawDate stores the date block text verbatim instead of parsing it.
	RawDate bool
}

// Extractor splits normalized export markup into article containers and
// classifies each container's content blocks into record fields.
type Extractor struct {
	opts Options
}

// NewExtractor creates an Extractor with the given options, applying
// defaults for unset values.
func NewExtractor(opts Options) *Extractor {
	if opts.Separator == "" {
		opts.Separator = "|"
	}
	if opts.Grammar == nil {
		opts.Grammar = clipdoc.EnglishDates
	}
	return &Extractor{opts: opts}
}

// Extract parses the normalized markup and produces one Extraction per
// article container, in order of appearance.
func (e *Extractor) Extract(markup, file string) ([]*clipdoc.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, clipdoc.Errorf(clipdoc.EUNPARSEABLE, "failed to parse markup for %s: %v", file, err)
	}

	var out []*clipdoc.Extraction
	selector := fmt.Sprintf("doc[id^=%q]", clipdoc.DocIDPrefix)
	doc.Find(selector).Each(func(pos int, article *goquery.Selection) {
		fields := e.classify(article)
		rec, diags := clipdoc.AssembleRecord(fields, file)
		rec.Position = pos
		out = append(out, &clipdoc.Extraction{Record: rec, Diagnostics: diags})
	})
	return out, nil
}

// classify walks the article's content blocks in document order and assigns
// each to a field by ordinal position or leading label. Blocks whose
// flattened text is empty do not consume an ordinal slot.
func (e *Extractor) classify(article *goquery.Selection) clipdoc.FieldSet {
	fields := clipdoc.NewFieldSet()
	longest := 0
	ordinal := 0

	for _, block := range contentBlocks(article) {
		text := flatten(block.Text())
		if text == "" {
			continue
		}
		ordinal++

		switch {
		case ordinal == 2:
			fields[clipdoc.FieldPub] = text
		case ordinal == 3:
			e.classifyDate(fields, text)
		case ordinal == 4:
			fields[clipdoc.FieldHead] = text
		case ordinal >= 5:
			longest = e.classifyLabeled(fields, block, text, longest)
		}
	}
	return fields
}

// classifyDate fills the date field from the third block, either verbatim or
// through the grammar. A grammar mismatch leaves date (and edition) empty;
// no date is guessed.
func (e *Extractor) classifyDate(fields clipdoc.FieldSet, text string) {
	if e.opts.RawDate {
		fields[clipdoc.FieldDate] = text
		return
	}
	parsed, ok := e.opts.Grammar.ParseDate(text)
	if !ok {
		return
	}
	fields[clipdoc.FieldDate] = parsed.ISO
	if parsed.Edition != "" {
		fields[clipdoc.FieldEdition] = parsed.Edition
	}
}

// classifyLabeled handles blocks past the positional ones: labeled metadata
// first, then the running-maximum body heuristic. The true body is
// interleaved among metadata blocks whose labels are not exhaustively known,
// so the largest block carrying no reserved label wins.
func (e *Extractor) classifyLabeled(fields clipdoc.FieldSet, block *goquery.Selection, text string, longest int) int {
	switch {
	case strings.HasPrefix(text, bylinePrefix):
		fields[clipdoc.FieldByline] = strings.TrimSpace(strings.TrimPrefix(text, bylinePrefix))
	case strings.HasPrefix(text, sectionPrefix):
		fields[clipdoc.FieldSection] = strings.TrimSpace(strings.TrimPrefix(text, sectionPrefix))
	case strings.HasPrefix(text, lengthPrefix):
		fields[clipdoc.FieldLength] = digitsOnly(strings.TrimPrefix(text, lengthPrefix))
	default:
		if n := utf8.RuneCountInString(text); n > longest && !hasReservedPrefix(text) {
			fields[clipdoc.FieldBody] = e.joinParagraphs(block)
			longest = n
		}
	}
	return longest
}

// joinParagraphs flattens each paragraph element inside the block and joins
// them with the separator token. A block without paragraph elements
// contributes its own flattened text as a single paragraph.
func (e *Extractor) joinParagraphs(block *goquery.Selection) string {
	var parts []string
	block.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := flatten(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return flatten(block.Text())
	}
	return strings.Join(parts, " "+e.opts.Separator+" ")
}

// contentBlocks returns the article's direct element children in document
// order. Exports wrap the visible blocks in a single DOCFULL container; when
// that is the only element child it is unwrapped so the blocks inside it are
// enumerated instead.
func contentBlocks(article *goquery.Selection) []*goquery.Selection {
	if len(article.Nodes) == 0 {
		return nil
	}
	root := article.Nodes[0]
	if only := soleElementChild(root); only != nil && only.Data == "docfull" {
		root = only
	}

	var blocks []*goquery.Selection
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		blocks = append(blocks, article.FindNodes(c))
	}
	return blocks
}

// soleElementChild returns n's only element child, or nil if n has zero or
// more than one.
func soleElementChild(n *html.Node) *html.Node {
	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if only != nil {
			return nil
		}
		only = c
	}
	return only
}

// flatten trims leading/trailing whitespace and collapses internal runs of
// whitespace to single spaces.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// digitsOnly strips every non-digit character.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func hasReservedPrefix(text string) bool {
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
