package mock

import "github.com/fwojciec/domindex"

var _ domindex.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of domindex.Summarizer.
type Summarizer struct {
	SummarizeFn func(rawHTML string, idx *domindex.Index, sourceURL string) (domindex.Meta, domindex.Stats, error)
}

func (s *Summarizer) Summarize(rawHTML string, idx *domindex.Index, sourceURL string) (domindex.Meta, domindex.Stats, error) {
	return s.SummarizeFn(rawHTML, idx, sourceURL)
}
