package clipdoc

// Source supplies export files to the extraction pipeline.
// Implementations hide where the files live and how they are read.
type Source interface {
	// Discover returns the ordered list of export files under path. A path
	// naming a single file returns just that file; a directory is filtered
	// to markup files. Returns ENOTFOUND when path does not exist.
	Discover(path string) ([]string, error)

	// ReadLines reads one file as UTF-8 text split into lines.
	// Returns ENOTFOUND when the file does not exist.
	ReadLines(path string) ([]string, error)
}
