package html

import "net/url"

// resolveURL resolves ref against base using standard relative-URL
// resolution: same-document fragments, protocol-relative, and absolute
// references all normalize correctly. A ref that cannot be parsed is
// returned literally; that is a defect in the input, not a recoverable
// condition, and the literal keeps the index usable.
func resolveURL(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if base == nil {
		return parsed.String()
	}
	return base.ResolveReference(parsed).String()
}
