package domain

// Structure is the rendering kind of an outline node.
type Structure string

const (
	StructureHeadline  Structure = "headline"
	StructureList      Structure = "list"
	StructureParagraph Structure = "paragraph"
)

// Reserved attribute names.
const (
	AttrText      = "text"
	AttrStructure = "structure"
)

// Attribute is a single name/value pair of an outline element.
type Attribute struct {
	Name  string
	Value string
}

// Outline is one node of the OPML body tree.
type Outline struct {
	Attributes []Attribute // All attributes, in document order, including text
	Children   []*Outline
	Line       int // 1-based line of the element start tag, 0 if unknown
}

// Attr returns the value of the named attribute and whether it is present.
func (o *Outline) Attr(name string) (string, bool) {
	for _, a := range o.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns the outline label.
func (o *Outline) Text() string {
	v, _ := o.Attr(AttrText)
	return v
}

// Properties returns the attributes other than text and structure, in document order.
func (o *Outline) Properties() []Attribute {
	var props []Attribute
	for _, a := range o.Attributes {
		if a.Name == AttrText || a.Name == AttrStructure {
			continue
		}
		props = append(props, a)
	}
	return props
}

// Classify returns the structure kind of the node. An explicit structure
// attribute always wins, then any extra attribute makes a headline, then
// children make a list. Everything else is a paragraph.
func (o *Outline) Classify() Structure {
	if s, ok := o.Attr(AttrStructure); ok {
		return Structure(s)
	}
	for _, a := range o.Attributes {
		if a.Name != AttrText {
			return StructureHeadline
		}
	}
	if len(o.Children) > 0 {
		return StructureList
	}
	return StructureParagraph
}

// Head holds the OPML head metadata fields.
type Head struct {
	Fields []Field
}

// Field is a single head metadata element.
type Field struct {
	Name string
	Text string
}

// Lookup returns the first field with the given name.
func (h *Head) Lookup(name string) (Field, bool) {
	if h == nil {
		return Field{}, false
	}
	for _, f := range h.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Document is a parsed OPML document.
type Document struct {
	FilePath string
	Head     *Head
	Body     *Outline // Root node; its children are the top-level entries
}
