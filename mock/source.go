package mock

import "github.com/fwojciec/clipdoc"

var _ clipdoc.Source = (*Source)(nil)

// Source is a mock implementation of clipdoc.Source.
type Source struct {
	DiscoverFn  func(path string) ([]string, error)
	ReadLinesFn func(path string) ([]string, error)
}

func (s *Source) Discover(path string) ([]string, error) {
	return s.DiscoverFn(path)
}

func (s *Source) ReadLines(path string) ([]string, error) {
	return s.ReadLinesFn(path)
}
