package domindex

// Link is one entry in the links collection. URL is absolute.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Image is one entry in the images collection. Src is absolute.
type Image struct {
	Src  string `json:"src"`
	Alt  string `json:"alt"`
	Path string `json:"path"`
}

// Heading is one entry in the headings collection.
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
	Path  string `json:"path"`
}

// Table is one entry in the tables collection.
type Table struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// Form is one entry in the forms collection.
type Form struct {
	Path   string `json:"path"`
	Action string `json:"action"`
	Method string `json:"method"`
}

// Index is the multi-keyed lookup structure over all elements of one
// document. ByTag and ByClass preserve document (pre-order) order; ByPath
// keys are unique within one index; ByID keeps the last writer when a
// document reuses an id.
type Index struct {
	ByTag   map[string][]*Element `json:"byTag"`
	ByClass map[string][]*Element `json:"byClass"`
	ByID    map[string]*Element   `json:"byId"`
	ByPath  map[string]*Element   `json:"byPath"`

	Links       []Link         `json:"links"`
	Images      []Image        `json:"images"`
	Headings    []Heading      `json:"headings"`
	Tables      []Table        `json:"tables"`
	Forms       []Form         `json:"forms"`
	TextContent []TextFragment `json:"textContent"`
}

// NewIndex returns an empty Index with initialized lookup tables.
func NewIndex() *Index {
	return &Index{
		ByTag:   make(map[string][]*Element),
		ByClass: make(map[string][]*Element),
		ByID:    make(map[string]*Element),
		ByPath:  make(map[string]*Element),
	}
}

// Add inserts el into the lookup tables. Elements must be added in
// document order; Add appends, never reorders. A duplicate id overwrites
// the previous ByID entry (ids are assumed unique; a duplicate is a
// caller data error), while the element stays reachable via ByTag and
// ByPath.
func (idx *Index) Add(el *Element) {
	idx.ByTag[el.Tag] = append(idx.ByTag[el.Tag], el)
	idx.ByPath[el.Path] = el
	if class := el.Attributes["class"]; class != "" {
		idx.ByClass[class] = append(idx.ByClass[class], el)
	}
	if id := el.Attributes["id"]; id != "" {
		idx.ByID[id] = el
	}
}

// ElementsByTag returns all elements with the exact tag, in document
// order. A missing tag yields an empty result, not an error.
func (idx *Index) ElementsByTag(tag string) []*Element {
	return idx.ByTag[tag]
}

// ElementsByClass returns all elements whose normalized class string
// matches exactly, in document order.
func (idx *Index) ElementsByClass(class string) []*Element {
	return idx.ByClass[class]
}

// ElementByID returns the element with the given id attribute.
// The bool result is false if no element carries the id.
func (idx *Index) ElementByID(id string) (*Element, bool) {
	el, ok := idx.ByID[id]
	return el, ok
}

// ElementByPath returns the element at the exact structural path.
// The bool result is false if the path does not exist.
func (idx *Index) ElementByPath(path string) (*Element, bool) {
	el, ok := idx.ByPath[path]
	return el, ok
}
