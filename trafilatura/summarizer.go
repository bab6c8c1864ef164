// Package trafilatura implements a metadata-enriched document summarizer
// on top of go-trafilatura, which looks beyond the <title> element
// (opengraph, JSON+LD, twitter cards) for documents with sparse head
// metadata.
package trafilatura

import (
	"strings"
	"time"

	"github.com/fwojciec/domindex"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Summarizer implements domindex.Summarizer at compile time.
var _ domindex.Summarizer = (*Summarizer)(nil)

// Summarizer wraps go-trafilatura metadata extraction.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize extracts title and description via trafilatura metadata.
// Extraction is best-effort: a document trafilatura cannot handle falls
// back to the "No title" placeholder rather than failing the summary.
// Stats come from index cardinalities alone.
func (s *Summarizer) Summarize(rawHTML string, idx *domindex.Index, sourceURL string) (domindex.Meta, domindex.Stats, error) {
	meta := domindex.Meta{
		SourceURL:   sourceURL,
		Title:       domindex.NoTitle,
		GeneratedAt: time.Now().UTC(),
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result != nil {
		if title := strings.TrimSpace(result.Metadata.Title); title != "" {
			meta.Title = title
		}
		meta.Description = strings.TrimSpace(result.Metadata.Description)
	}

	return meta, domindex.ComputeStats(idx), nil
}
