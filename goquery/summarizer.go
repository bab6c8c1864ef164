// Package goquery implements the document summarizer using CSS selectors
// over the page head.
package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/domindex"
)

// Ensure Summarizer implements domindex.Summarizer at compile time.
var _ domindex.Summarizer = (*Summarizer)(nil)

// Summarizer derives document metadata from the first <title> and
// <meta name="description"> elements, and aggregate statistics from an
// already-built index.
type Summarizer struct{}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{}
}

// Summarize extracts title and description from rawHTML. A document
// without a title gets the "No title" placeholder; a missing description
// stays empty. Stats come from index cardinalities alone.
func (s *Summarizer) Summarize(rawHTML string, idx *domindex.Index, sourceURL string) (domindex.Meta, domindex.Stats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return domindex.Meta{}, domindex.Stats{}, domindex.Errorf(domindex.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = domindex.NoTitle
	}
	description, _ := doc.Find(`meta[name="description"]`).First().Attr("content")

	meta := domindex.Meta{
		SourceURL:   sourceURL,
		Title:       title,
		Description: strings.TrimSpace(description),
		GeneratedAt: time.Now().UTC(),
	}
	return meta, domindex.ComputeStats(idx), nil
}
