// Package mount models the places a stylesheet can be attached to: a small
// document tree with a head, plus file and fan-out targets for hosts without
// a document.
package mount

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a container in the document model: *Document, *Element or *Fragment.
type Node interface {
	isNode()
}

// Document is a root with a head and a body.
type Document struct {
	mu   sync.RWMutex
	Head *Element
	Body *Element
}

// Fragment is a detached root without a head, like a shadow root.
type Fragment struct {
	Children []*Element
}

// Element is a tagged node with attributes, text and children.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element

	text   string
	parent *Element
	owner  Node
}

func (*Document) isNode() {}
func (*Fragment) isNode() {}
func (*Element) isNode()  {}

// NewDocument returns a document with empty head and body.
func NewDocument() *Document {
	d := &Document{}
	d.Head = &Element{Tag: "head", owner: d}
	d.Body = &Element{Tag: "body", owner: d}
	return d
}

// NewFragment returns an empty detached root.
func NewFragment() *Fragment {
	return &Fragment{}
}

// NewElement creates a detached element.
func NewElement(tag string, attrs map[string]string) *Element {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return &Element{Tag: tag, Attrs: attrs}
}

// Append adds child to f and returns it.
func (f *Fragment) Append(child *Element) *Element {
	child.parent = nil
	child.setOwner(f)
	f.Children = append(f.Children, child)
	return child
}

// Append adds child under e and returns it.
func (e *Element) Append(child *Element) *Element {
	child.parent = e
	child.setOwner(e.owner)
	e.Children = append(e.Children, child)
	return child
}

func (e *Element) setOwner(owner Node) {
	e.owner = owner
	for _, c := range e.Children {
		c.setOwner(owner)
	}
}

// Root returns the document or fragment e belongs to, or the topmost
// element when e is detached.
func (e *Element) Root() Node {
	if e.owner != nil {
		return e.owner
	}
	top := e
	for top.parent != nil {
		top = top.parent
	}
	return top
}

// Text returns the element's text content.
func (e *Element) Text() string {
	if d, ok := e.owner.(*Document); ok {
		d.mu.RLock()
		defer d.mu.RUnlock()
	}
	return e.text
}

// SetText replaces the element's text content.
func (e *Element) SetText(text string) {
	if d, ok := e.owner.(*Document); ok {
		d.mu.Lock()
		defer d.mu.Unlock()
	}
	e.text = text
}

// HTML serializes the document.
func (d *Document) HTML() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	doc.AppendChild(root)
	root.AppendChild(toHTML(d.Head))
	root.AppendChild(toHTML(d.Body))

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toHTML(e *Element) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(e.Tag)), Data: e.Tag}

	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: e.Attrs[k]})
	}

	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, c := range e.Children {
		n.AppendChild(toHTML(c))
	}
	return n
}
