package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/clipdoc"
	"github.com/fwojciec/clipdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleLines wraps content blocks in the raw export form of a single
// article, malformations included.
func articleLines(blocks ...string) []string {
	lines := []string{
		"<!-- Hide XML section from browser",
		"<DOC NUMBER=1>",
		"<DOCFULL> -->",
	}
	lines = append(lines, blocks...)
	return append(lines, "</DOC> -->")
}

func normalize(t *testing.T, lines []string) string {
	t.Helper()
	return clipdoc.NewNormalizer().Normalize(lines)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts a complete article", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV CLASS="c0">ignored</DIV>`,
			`<DIV CLASS="c1">The Irish Times</DIV>`,
			`<DIV CLASS="c2">June 12, 1995, Monday</DIV>`,
			`<DIV CLASS="c3">Local news roundup</DIV>`,
			`<DIV CLASS="c4">BYLINE: Staff Reporter</DIV>`,
			`<DIV CLASS="c4">LENGTH: 342 words</DIV>`,
			`<DIV CLASS="c4">SECTION: News</DIV>`,
			`<DIV CLASS="c5"><P>The council met on Monday to discuss the budget.</P><P>No decision was reached.</P></DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)

		rec := extractions[0].Record
		assert.Equal(t, "export.html", rec.File)
		assert.Equal(t, "The Irish Times", rec.Pub)
		assert.Equal(t, "1995-06-12", rec.Date)
		assert.Equal(t, "Local news roundup", rec.Head)
		assert.Equal(t, "Staff Reporter", rec.Byline)
		assert.Equal(t, "342", rec.Length)
		assert.Equal(t, "News", rec.Section)
		assert.Equal(t, "The council met on Monday to discuss the budget. | No decision was reached.", rec.Body)
		assert.Empty(t, rec.Edition)
		assert.Empty(t, extractions[0].Diagnostics)
	})

	t.Run("captures edition from the date phrase", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995, Monday, City Edition</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "1995-06-12", extractions[0].Record.Date)
		assert.Equal(t, "City Edition", extractions[0].Record.Edition)
	})

	t.Run("raw date mode stores the date block verbatim", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995, Monday</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{RawDate: true}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "June 12, 1995, Monday", extractions[0].Record.Date)
		assert.Empty(t, extractions[0].Record.Edition)
	})

	t.Run("grammar mismatch leaves date empty without failing", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>not a date at all</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Empty(t, extractions[0].Record.Date)
		assert.Empty(t, extractions[0].Record.Edition)
		assert.Equal(t, "Heading", extractions[0].Record.Head)
	})

	t.Run("parses German dates with the German grammar", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignoriert</DIV>`,
			`<DIV>Die Tageszeitung</DIV>`,
			`<DIV>12. Juni 1995 Montag</DIV>`,
			`<DIV>Schlagzeile</DIV>`,
			`<DIV>Textkoerper des Artikels.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{
			Grammar: clipdoc.GermanDates,
		}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "1995-06-12", extractions[0].Record.Date)
	})

	t.Run("empty blocks do not consume an ordinal slot", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>   </DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV></DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "The Irish Times", extractions[0].Record.Pub)
		assert.Equal(t, "1995-06-12", extractions[0].Record.Date)
		assert.Equal(t, "Heading", extractions[0].Record.Head)
	})

	t.Run("largest untagged block wins body", func(t *testing.T) {
		t.Parallel()

		small := strings.Repeat("a", 50)
		large := strings.Repeat("b", 200)
		medium := strings.Repeat("c", 120)

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>`+small+`</DIV>`,
			`<DIV>`+large+`</DIV>`,
			`<DIV>`+medium+`</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, large, extractions[0].Record.Body)
	})

	t.Run("labeled blocks never become body", func(t *testing.T) {
		t.Parallel()

		longName := strings.Repeat("J", 200)

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Some body text</DIV>`,
			`<DIV>BYLINE: `+longName+`</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, longName, extractions[0].Record.Byline)
		assert.Equal(t, "Some body text", extractions[0].Record.Body)
	})

	t.Run("reserved prefixes are excluded from body candidacy", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Short body.</DIV>`,
			`<DIV>LOAD-DATE: `+strings.Repeat("x", 300)+`</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "Short body.", extractions[0].Record.Body)
	})

	t.Run("custom separator joins paragraphs", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV><P>One.</P><P>Two.</P></DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{Separator: "#"}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "One. # Two.", extractions[0].Record.Body)
	})

	t.Run("line-break tags separate adjacent text runs", func(t *testing.T) {
		t.Parallel()

		markup := normalize(t, articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish<BR>Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		))

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 1)
		assert.Equal(t, "The Irish Times", extractions[0].Record.Pub)
	})

	t.Run("enumerates multiple articles in source order", func(t *testing.T) {
		t.Parallel()

		var lines []string
		for _, pub := range []string{"First Paper", "Second Paper", "Third Paper"} {
			lines = append(lines, articleLines(
				`<DIV>ignored</DIV>`,
				`<DIV>`+pub+`</DIV>`,
				`<DIV>June 12, 1995</DIV>`,
				`<DIV>Heading</DIV>`,
				`<DIV>Body text for the article.</DIV>`,
			)...)
		}
		markup := normalize(t, lines)

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 3)
		for i, pub := range []string{"First Paper", "Second Paper", "Third Paper"} {
			assert.Equal(t, pub, extractions[i].Record.Pub)
			assert.Equal(t, i, extractions[i].Record.Position)
		}
	})

	t.Run("missing head yields a diagnostic but extraction continues", func(t *testing.T) {
		t.Parallel()

		lines := append(articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>The Irish Times</DIV>`,
			`<DIV>June 12, 1995</DIV>`,
		), articleLines(
			`<DIV>ignored</DIV>`,
			`<DIV>Second Paper</DIV>`,
			`<DIV>June 13, 1995</DIV>`,
			`<DIV>Heading</DIV>`,
			`<DIV>Body text for the article.</DIV>`,
		)...)
		markup := normalize(t, lines)

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(markup, "export.html")

		require.NoError(t, err)
		require.Len(t, extractions, 2)

		assert.Empty(t, extractions[0].Record.Head)
		fields := make([]string, 0, len(extractions[0].Diagnostics))
		for _, d := range extractions[0].Diagnostics {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, clipdoc.FieldHead)

		// The second article in the same file is unaffected.
		assert.Equal(t, "Second Paper", extractions[1].Record.Pub)
		assert.Empty(t, extractions[1].Diagnostics)
	})

	t.Run("markup without article containers yields no extractions", func(t *testing.T) {
		t.Parallel()

		extractions, err := goquery.NewExtractor(goquery.Options{}).Extract(
			"<html><body><p>nothing here</p></body></html>", "export.html")

		require.NoError(t, err)
		assert.Empty(t, extractions)
	})
}
