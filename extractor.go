package clipdoc

// Extraction pairs one article's assembled record with the non-fatal
// diagnostics produced while classifying it.
type Extraction struct {
	Record      Record       `json:"record"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Duplicate marks a record whose content was already seen earlier in
	// the batch. Set by the batch processor, not by extractors.
	Duplicate bool `json:"duplicate,omitempty"`
}

// Extractor turns normalized markup into one Extraction per article found,
// in order of appearance. Implementations must tolerate minor structural
// irregularities: a malformed article yields a partial record with
// diagnostics, never an error. Only markup that cannot be parsed into a tree
// at all returns EUNPARSEABLE.
type Extractor interface {
	// Extract processes the normalized markup of one export file. The file
	// name is carried into every produced record.
	Extract(markup, file string) ([]*Extraction, error)
}
