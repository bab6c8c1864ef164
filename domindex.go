// Package domindex converts parsed HTML documents into structured,
// queryable indexes. Every element receives a stable structural path and
// elements are grouped into lookup tables by tag, class, id, and path,
// plus specialized collections for links, images, headings, tables, and
// forms. A time-bounded result cache and an ephemeral session store let a
// serving layer answer filtered queries without re-indexing the source.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. html/,
// goquery/, mem/).
package domindex
