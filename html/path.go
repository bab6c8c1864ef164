// Package html implements the structural path builder and the document
// indexer on top of golang.org/x/net/html parse trees.
package html

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// maxPathHops bounds the ancestor walk so a structurally inconsistent
// tree (cyclic parent links) cannot loop forever.
const maxPathHops = 256

// FallbackPath marks nodes whose ancestor chain never reaches a
// recognized root within the hop bound. It is still a usable key within
// one traversal's output, just not a precise location.
const FallbackPath = "/unknown[1]"

// BuildPath returns the structural path of n: '/'-separated tag[pos]
// segments from the document body (or the nearest detached root) down to
// n. pos is 1 plus the count of preceding element siblings sharing the
// same tag, XPath tag[n] semantics; siblings of other tags and text
// siblings never affect the count. The root segment is always body[1]
// when a body exists; the html wrapper is never emitted.
//
// The result is deterministic for an unmutated tree, which makes it a
// valid unique key for by-path lookups.
func BuildPath(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return FallbackPath
	}

	var segs []string
	hops := 0
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		hops++
		if hops > maxPathHops {
			return FallbackPath
		}
		if cur.Data == "body" {
			segs = append(segs, "body[1]")
			break
		}
		if cur.Data == "html" {
			break
		}
		segs = append(segs, cur.Data+"["+strconv.Itoa(elementPosition(cur))+"]")
	}
	if len(segs) == 0 {
		return FallbackPath
	}

	// Segments were collected leaf-first.
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return "/" + strings.Join(segs, "/")
}

// TextPath returns the path of a text node: its parent's path plus a
// text()[k] segment, where k counts preceding text-node siblings only.
func TextPath(parentPath string, n *html.Node) string {
	pos := 1
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.TextNode {
			pos++
		}
	}
	return parentPath + "/text()[" + strconv.Itoa(pos) + "]"
}

// elementPosition returns the 1-based position of n among preceding
// element siblings with the same tag.
func elementPosition(n *html.Node) int {
	pos := 1
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && s.Data == n.Data {
			pos++
		}
	}
	return pos
}
