package html

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/domindex"
	"golang.org/x/net/html"
)

// DefaultMaxNodes bounds how many nodes a single Build visits before
// failing fast with ETOOLARGE.
const DefaultMaxNodes = 50000

// skipTags are subtrees excluded from indexing entirely: they carry no
// queryable page content.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"meta":     true,
	"link":     true,
}

// Indexer walks a parsed HTML tree once and builds the multi-keyed index.
// The zero value is not usable; construct with NewIndexer. An Indexer is
// stateless across calls and safe for concurrent use.
type Indexer struct {
	maxNodes int
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithMaxNodes caps the number of nodes visited per Build.
// Defaults to DefaultMaxNodes if not specified or non-positive.
func WithMaxNodes(n int) Option {
	return func(ix *Indexer) {
		if n > 0 {
			ix.maxNodes = n
		}
	}
}

// NewIndexer creates a new Indexer.
func NewIndexer(opts ...Option) *Indexer {
	ix := &Indexer{maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Build traverses root and every descendant in document (pre-order)
// order and returns the populated index. href and src attributes are
// resolved against baseURL exactly once, here. The parse tree is never
// mutated.
//
// Build returns EINVALID for a nil root, an unparseable base URL, or a
// cyclic tree, and ETOOLARGE when the document exceeds the node cap.
func (ix *Indexer) Build(root *html.Node, baseURL string) (*domindex.Index, error) {
	if root == nil {
		return nil, domindex.Errorf(domindex.EINVALID, "nil root node")
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, domindex.Errorf(domindex.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	idx := domindex.NewIndex()

	// Explicit stack instead of recursion to bound stack depth on deep or
	// adversarial documents. Children are pushed last-first so they pop
	// in document order.
	stack := []*html.Node{root}
	seen := make(map[*html.Node]bool)
	visited := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[n] {
			return nil, domindex.Errorf(domindex.EINVALID, "cyclic node at %q", BuildPath(n))
		}
		seen[n] = true
		visited++
		if visited > ix.maxNodes {
			return nil, domindex.Errorf(domindex.ETOOLARGE, "document exceeds %d nodes", ix.maxNodes)
		}

		switch n.Type {
		case html.ElementNode:
			if skipTags[n.Data] {
				continue // do not descend
			}
			if err := indexElement(idx, n, base); err != nil {
				return nil, err
			}
		case html.TextNode:
			indexText(idx, n)
		}

		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return idx, nil
}

// indexElement projects n into the index. body and html wrappers are
// traversal roots, not content, and get no entry of their own. A subtree
// whose links form a cycle yields EINVALID.
func indexElement(idx *domindex.Index, n *html.Node, base *url.URL) error {
	if n.Data == "body" || n.Data == "html" {
		return nil
	}

	path := BuildPath(n)
	text, ok := collapseText(n)
	if !ok {
		return domindex.Errorf(domindex.EINVALID, "cyclic node at %q", path)
	}
	el := &domindex.Element{
		Tag:        n.Data,
		Path:       path,
		Attributes: attributes(n),
		Text:       domindex.Truncate(text, domindex.MaxElementText),
	}

	switch {
	case n.Data == "a":
		if href := el.Attributes["href"]; href != "" {
			resolved := resolveURL(base, href)
			el.Attributes["href"] = resolved
			el.Href = resolved
			el.LinkText = domindex.Truncate(text, domindex.MaxLinkText)
			idx.Links = append(idx.Links, domindex.Link{Text: el.LinkText, URL: resolved, Path: path})
		}
	case n.Data == "img":
		if src := el.Attributes["src"]; src != "" {
			resolved := resolveURL(base, src)
			el.Attributes["src"] = resolved
			el.Src = resolved
			el.Alt = domindex.Truncate(el.Attributes["alt"], domindex.MaxAltText)
			idx.Images = append(idx.Images, domindex.Image{Src: resolved, Alt: el.Alt, Path: path})
		}
	case headingLevel(n.Data) > 0:
		el.HeadingLevel = headingLevel(n.Data)
		if el.Text != "" {
			idx.Headings = append(idx.Headings, domindex.Heading{Text: el.Text, Level: el.HeadingLevel, Path: path})
		}
	case n.Data == "table":
		rows, ok := countRows(n)
		if !ok {
			return domindex.Errorf(domindex.EINVALID, "cyclic node at %q", path)
		}
		el.RowCount = rows
		idx.Tables = append(idx.Tables, domindex.Table{Path: path, Rows: el.RowCount})
	case n.Data == "form":
		el.Action = el.Attributes["action"]
		el.Method = strings.ToUpper(el.Attributes["method"])
		if el.Method == "" {
			el.Method = "GET"
		}
		idx.Forms = append(idx.Forms, domindex.Form{Path: path, Action: el.Action, Method: el.Method})
	}

	idx.Add(el)
	return nil
}

// indexText appends a TextContent entry for meaningful text nodes, up to
// the collection cap. Fragments beyond the cap are skipped whole, never
// truncated mid-list.
func indexText(idx *domindex.Index, n *html.Node) {
	trimmed := strings.TrimSpace(n.Data)
	if utf8.RuneCountInString(trimmed) <= domindex.MinContentLen {
		return
	}
	if len(idx.TextContent) >= domindex.MaxTextEntries {
		return
	}

	parentPath := FallbackPath
	if n.Parent != nil && n.Parent.Type == html.ElementNode {
		parentPath = BuildPath(n.Parent)
	}
	idx.TextContent = append(idx.TextContent, domindex.TextFragment{
		Content: domindex.Truncate(trimmed, domindex.MaxTextContent),
		Path:    TextPath(parentPath, n),
	})
}

// attributes converts the node's ordered attribute pairs into a map.
// The first occurrence wins on duplicate keys. A missing value is kept
// as an empty string. The class value is normalized to a single
// space-joined string.
func attributes(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		if _, ok := attrs[a.Key]; ok {
			continue
		}
		attrs[a.Key] = a.Val
	}
	if class, ok := attrs["class"]; ok {
		attrs["class"] = strings.Join(strings.Fields(class), " ")
	}
	return attrs
}

// walkSubtree visits n and its descendants in document order, calling
// visit for each node. visit reports whether to descend into the node's
// children. walkSubtree returns false when it revisits a node, which only
// happens when the tree's links form a cycle.
func walkSubtree(n *html.Node, visit func(*html.Node) bool) bool {
	stack := []*html.Node{n}
	seen := make(map[*html.Node]bool)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			return false
		}
		seen[cur] = true
		if !visit(cur) {
			continue
		}
		for c := cur.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
	return true
}

// collapseText returns the whitespace-collapsed text of n's subtree,
// excluding skipped subtrees. ok is false for a cyclic subtree.
func collapseText(n *html.Node) (text string, ok bool) {
	var parts []string
	ok = walkSubtree(n, func(cur *html.Node) bool {
		if cur.Type == html.ElementNode && cur != n && skipTags[cur.Data] {
			return false
		}
		if cur.Type == html.TextNode {
			if t := strings.TrimSpace(cur.Data); t != "" {
				parts = append(parts, t)
			}
		}
		return true
	})
	if !ok {
		return "", false
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), true
}

// countRows counts descendant tr elements. ok is false for a cyclic
// subtree.
func countRows(n *html.Node) (rows int, ok bool) {
	ok = walkSubtree(n, func(cur *html.Node) bool {
		if cur.Type == html.ElementNode && cur.Data == "tr" {
			rows++
		}
		return true
	})
	if !ok {
		return 0, false
	}
	return rows, true
}

func headingLevel(tag string) int {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return int(tag[1] - '0')
	}
	return 0
}
