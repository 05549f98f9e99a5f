package document

import "strings"

// Kind distinguishes documents with structure from flat text.
type Kind int

const (
	PlainText Kind = iota // PDF, plain text, CSV
	Markup                // HTML, Markdown, DOCX
)

func (k Kind) String() string {
	switch k {
	case PlainText:
		return "plain_text"
	case Markup:
		return "markup"
	}
	return "unknown"
}

// Document is a fetched resource, created once per request and read-only afterward.
type Document struct {
	Kind  Kind
	Title string // From <title> or the file name; may be empty
	Text  string // Set for PlainText documents
	Root  *Node  // Set for Markup documents
}

// NewPlainText wraps extracted text.
func NewPlainText(title, text string) *Document {
	return &Document{Kind: PlainText, Title: title, Text: text}
}

// NewMarkup wraps an element tree.
func NewMarkup(title string, root *Node) *Document {
	return &Document{Kind: Markup, Title: title, Root: root}
}

// FullText returns all text of the document regardless of kind.
func (d *Document) FullText() string {
	if d.Kind == Markup {
		if d.Root == nil {
			return ""
		}
		return d.Root.Text()
	}
	return d.Text
}

// Node is one element or text node of a materialized markup tree.
// Children are held in a slice so sibling traversal is an index walk
// rather than a cursor over a live parser tree.
type Node struct {
	Tag      string // Lower-case element name; empty for text nodes
	Data     string // Text of a text node
	Parent   *Node
	Children []*Node
}

// Element builds an element node and adopts the given children.
func Element(tag string, children ...*Node) *Node {
	n := &Node{Tag: strings.ToLower(tag)}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// Text builds a text node.
func Text(data string) *Node {
	return &Node{Data: data}
}

// Append adds c as the last child of n.
func (n *Node) Append(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// IsText reports whether n is a bare text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Text concatenates the text of n and all its descendants in document order.
func (n *Node) Text() string {
	if n.IsText() {
		return n.Data
	}
	var buf strings.Builder
	var walk func(*Node)
	walk = func(cur *Node) {
		if cur.IsText() {
			buf.WriteString(cur.Data)
			return
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// FindAll returns every descendant element of n whose tag is in tags,
// in document (pre-)order. n itself is not considered.
func (n *Node) FindAll(tags TagSet) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.IsText() {
				continue
			}
			if tags.Has(c.Tag) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Index returns the position of n among its parent's children, or -1 for a root.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	for i, c := range n.Parent.Children {
		if c == n {
			return i
		}
	}
	return -1
}

// FollowingSiblings returns the nodes after n under the same parent.
// The returned slice must not be modified.
func (n *Node) FollowingSiblings() []*Node {
	i := n.Index()
	if i < 0 {
		return nil
	}
	return n.Parent.Children[i+1:]
}

// TagSet is a set of lower-case element names.
type TagSet map[string]bool

// NewTagSet builds a TagSet from tag names.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[strings.ToLower(t)] = true
	}
	return s
}

// Has reports whether tag is in the set.
func (s TagSet) Has(tag string) bool {
	return s[tag]
}

// Union returns a new set holding the tags of s and other.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = true
	}
	for t := range other {
		out[t] = true
	}
	return out
}
