package domindex

import (
	"sort"
	"time"
)

// NoTitle is the placeholder title for documents without a <title>.
const NoTitle = "No title"

// Meta holds document-level metadata for one indexed result.
type Meta struct {
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Stats holds aggregate counts derived from a built Index.
type Stats struct {
	ElementCount int      `json:"elementCount"`
	LinkCount    int      `json:"linkCount"`
	ImageCount   int      `json:"imageCount"`
	HeadingCount int      `json:"headingCount"`
	DistinctTags []string `json:"distinctTags"`
}

// Result is one indexed document: metadata, the multi-keyed index, and
// aggregate statistics. A Result is immutable once built.
type Result struct {
	Meta  Meta   `json:"meta"`
	Index *Index `json:"index"`
	Stats Stats  `json:"stats"`
}

// Summarizer derives document metadata and aggregate statistics for an
// already-indexed document.
type Summarizer interface {
	// Summarize extracts the title and description from rawHTML and
	// computes stats from idx. Stats come from index cardinalities alone;
	// implementations must not traverse the document for counting.
	Summarize(rawHTML string, idx *Index, sourceURL string) (Meta, Stats, error)
}

// ComputeStats derives Stats purely from index cardinalities.
// DistinctTags is sorted lexicographically.
func ComputeStats(idx *Index) Stats {
	tags := make([]string, 0, len(idx.ByTag))
	for tag := range idx.ByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return Stats{
		ElementCount: len(idx.ByPath),
		LinkCount:    len(idx.Links),
		ImageCount:   len(idx.Images),
		HeadingCount: len(idx.Headings),
		DistinctTags: tags,
	}
}
