// Package sexpr renders the parenthesized documents of a LibrePCB library.
//
// A document is a tree of nodes drawn from a closed set of types (symbols,
// strings, numbers, flags, raw text, lines and lists).
// Rendering is a pure function of the tree, so two trees built from the same
// values always produce the same bytes.
package sexpr

// Node is one element of a document. The set of node types is closed: only
// the types declared in this package implement it.
type Node interface {
	node()
}

// Symbol is a bare token such as a UUID, an enum value or a timestamp.
type Symbol string

// String is free text. It is always rendered quoted and escaped.
type String string

// Float is a number rendered with FormatFloat.
type Float float64

// Bool renders as true or false.
type Bool bool

// Raw is preformatted text written verbatim. Continuation lines of a
// multi-line Raw are indented to the depth it is written at.
type Raw string

// Line groups nodes that share one line of a list body.
type Line []Node

// List is a parenthesized expression.
//
// Head nodes follow the tag on the opening line. Each Body node is written on
// its own line, indented one level deeper than the list itself, and the
// closing paren then gets a line of its own. A list without body renders on a
// single line.
type List struct {
	Tag  string
	Head []Node
	Body []Node
}

func (Symbol) node() {}
func (String) node() {}
func (Float) node() {}
func (Bool) node() {}
func (Raw) node() {}
func (Line) node() {}
func (*List) node() {}

// NewList returns a list with the given tag and head nodes.
func NewList(tag string, head ...Node) *List {
	return &List{Tag: tag, Head: head}
}

// Add appends nodes to the body, one line each.
func (l *List) Add(nodes ...Node) *List {
	l.Body = append(l.Body, nodes...)
	return l
}

// AddLine appends a single body line holding all given nodes.
func (l *List) AddLine(nodes ...Node) *List {
	l.Body = append(l.Body, Line(nodes))
	return l
}
