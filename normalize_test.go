package clipdoc_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/clipdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("assigns distinct identifiers to repeated article markers", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"<DOC NUMBER=1>",
			"<DIV>first</DIV>",
			"<DOC NUMBER=1>",
			"<DIV>second</DIV>",
			"<DOC NUMBER=1>",
		}

		out := clipdoc.NewNormalizer().Normalize(lines)

		for i := 0; i < 3; i++ {
			assert.Contains(t, out, fmt.Sprintf(`<DOC ID="doc_id_%d">`, i))
		}
		assert.NotContains(t, out, "<DOC NUMBER=1>")
	})

	t.Run("counter is global across calls", func(t *testing.T) {
		t.Parallel()

		n := clipdoc.NewNormalizer()
		first := n.Normalize([]string{"<DOC NUMBER=1>"})
		second := n.Normalize([]string{"<DOC NUMBER=1>"})

		assert.Contains(t, first, `doc_id_0`)
		assert.Contains(t, second, `doc_id_1`)
	})

	t.Run("strips the browser-hiding comment opener", func(t *testing.T) {
		t.Parallel()

		out := clipdoc.NewNormalizer().Normalize([]string{
			"<!-- Hide XML section from browser",
			"<DIV>kept</DIV>",
		})

		assert.NotContains(t, out, "<!--")
		assert.Contains(t, out, "<DIV>kept</DIV>")
	})

	t.Run("closes comments before swallowed container tags", func(t *testing.T) {
		t.Parallel()

		out := clipdoc.NewNormalizer().Normalize([]string{
			"<DOCFULL> -->",
			"</DOC> -->",
		})

		assert.Contains(t, out, "--> <DOCFULL>")
		assert.Contains(t, out, "--> </DOC>")
	})

	t.Run("inserts a space after line-break tags", func(t *testing.T) {
		t.Parallel()

		out := clipdoc.NewNormalizer().Normalize([]string{"one<BR>two"})

		assert.Contains(t, out, "<BR> two")
	})

	t.Run("is idempotent for marker rewrites", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"<!-- Hide XML section from browser",
			"<DOC NUMBER=1>",
			"<DOCFULL> -->",
			"<DIV>text</DIV>",
			"</DOC> -->",
		}

		once := clipdoc.NewNormalizer().Normalize(lines)
		twice := clipdoc.NewNormalizer().Normalize(strings.Split(once, "\n"))

		// Already-unique identifiers are untouched because the literal
		// marker pattern no longer appears.
		require.Contains(t, once, `doc_id_0`)
		assert.Contains(t, twice, `doc_id_0`)
		assert.NotContains(t, twice, `doc_id_1`)
	})

	t.Run("uniqueness holds for many markers", func(t *testing.T) {
		t.Parallel()

		var lines []string
		for i := 0; i < 25; i++ {
			lines = append(lines, "<DOC NUMBER=1>")
		}

		out := clipdoc.NewNormalizer().Normalize(lines)

		for i := 0; i < 25; i++ {
			assert.Equal(t, 1, strings.Count(out, fmt.Sprintf(`"doc_id_%d"`, i)))
		}
	})
}
