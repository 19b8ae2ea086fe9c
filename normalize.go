package clipdoc

import (
	"fmt"
	"strings"
)

// DocIDPrefix prefixes the synthetic article identifiers assigned during
// normalization. The splitter locates article containers by this prefix.
const DocIDPrefix = "doc_id_"

// Literal markers of the export format's known malformations. The export
// tool hides its structural tags from browsers inside HTML comments and
// repeats an identical article-start marker for every article in a file.
const (
	hideCommentMarker = "<!-- Hide XML section from browser"
	docStartMarker    = "<DOC NUMBER=1>"
	docFullMarker     = "<DOCFULL> -->"
	docCloseMarker    = "</DOC> -->"
	lineBreakTag      = "<BR>"
)

// Normalizer rewrites the export format's known malformations line by line
// so that a lenient HTML parser can build a tree from the result. All
// rewrites are literal substring replacements applied in a fixed order.
//
// The article-start marker is rewritten to a tag carrying a unique numeric
// identifier; the counter starts at 0 and increments with every occurrence,
// never reset or reused, so every container in a file gets a distinct
// identifier even though the source repeats the same literal marker.
type Normalizer struct {
	nextID int
}

// NewNormalizer returns a Normalizer with its identifier counter at 0.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize applies the ordered rewrites to each line of one export file and
// returns the transformed lines rejoined with newlines. Only parseability is
// established here; the meaning of the resulting tree is not validated.
func (n *Normalizer) Normalize(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = n.normalizeLine(line)
	}
	return strings.Join(out, "\n")
}

func (n *Normalizer) normalizeLine(line string) string {
	// Strip the comment opener that would otherwise swallow the markup
	// following it.
	line = strings.ReplaceAll(line, hideCommentMarker, "")

	// Rewrite each article-start marker with a fresh identifier.
	for strings.Contains(line, docStartMarker) {
		tag := fmt.Sprintf("<DOC ID=%q>", fmt.Sprintf("%s%d", DocIDPrefix, n.nextID))
		n.nextID++
		line = strings.Replace(line, docStartMarker, tag, 1)
	}

	// Close the hiding comments before the tags they would swallow.
	line = strings.ReplaceAll(line, docFullMarker, "--> <DOCFULL>")
	line = strings.ReplaceAll(line, docCloseMarker, "--> </DOC>")

	// Text runs separated only by a line-break tag must not concatenate
	// without a separator when the tree is flattened.
	line = strings.ReplaceAll(line, lineBreakTag, lineBreakTag+" ")

	return line
}
