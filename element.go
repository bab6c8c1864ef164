package domindex

import "unicode/utf8"

// Character caps applied to indexed text fields. Values longer than a cap
// are cut to exactly that many characters; a value of exactly cap length
// is kept whole.
const (
	MaxElementText = 200 // Element.Text and heading text
	MaxLinkText    = 100 // anchor link text
	MaxAltText     = 100 // image alt text
	MaxTextContent = 300 // TextFragment.Content
)

// Thresholds and bounds for text fragment indexing.
const (
	// MinContentLen is the minimum trimmed length (exclusive) for a text
	// node to enter the TextContent collection.
	MinContentLen = 10

	// MaxTextEntries caps the TextContent collection. Qualifying fragments
	// beyond the cap are skipped; traversal continues for element indexing.
	MaxTextEntries = 100
)

// Element is the indexed projection of one HTML element node.
// Specialized fields are populated conditionally per tag: Href/LinkText
// for anchors, Src/Alt for images, HeadingLevel for h1-h6, RowCount for
// tables, Action/Method for forms. URL-bearing attributes (href, src) are
// resolved to absolute form against the document base URL exactly once,
// at index-build time.
type Element struct {
	Tag        string            `json:"tag"`
	Path       string            `json:"path"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Text       string            `json:"text,omitempty"`

	Href         string `json:"href,omitempty"`
	LinkText     string `json:"linkText,omitempty"`
	Src          string `json:"src,omitempty"`
	Alt          string `json:"alt,omitempty"`
	HeadingLevel int    `json:"headingLevel,omitempty"`
	RowCount     int    `json:"rowCount,omitempty"`
	Action       string `json:"action,omitempty"`
	Method       string `json:"method,omitempty"`
}

// TextFragment is the indexed projection of one qualifying text node.
type TextFragment struct {
	Content string `json:"content"`
	Path    string `json:"path"`
}

// Truncate hard-cuts s to at most max characters. The cut counts runes,
// not bytes, so multi-byte text never splits mid-character. It is not
// word-aware.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
