package mount

import (
	"errors"
	"fmt"

	"github.com/mariesavch/css-in-go/internal/log"
)

// MarkerAttr marks the style element owned by a provider.
const MarkerAttr = "data-cssgo"

// ErrUnsupportedRoot is returned when a root has nowhere to put a stylesheet.
var ErrUnsupportedRoot = errors.New("mount: unsupported root")

// StyleElement is a <style> element in a document head.
type StyleElement struct {
	el *Element
}

// SetText replaces the stylesheet text.
func (s *StyleElement) SetText(css string) {
	s.el.SetText(css)
}

// Text returns the current stylesheet text.
func (s *StyleElement) Text() string {
	return s.el.Text()
}

// Element returns the underlying element.
func (s *StyleElement) Element() *Element {
	return s.el
}

// Mount finds the marked style element in root's head, creating it when
// missing. Only documents are supported.
func Mount(root Node) (*StyleElement, error) {
	switch r := root.(type) {
	case *Document:
		if r.Head == nil {
			return nil, fmt.Errorf("%w: document has no head", ErrUnsupportedRoot)
		}
		return mountInHead(r), nil
	case *Fragment:
		return nil, fmt.Errorf("%w: fragment roots (shadow roots) have no head", ErrUnsupportedRoot)
	case *Element:
		return nil, fmt.Errorf("%w: <%s> is not a root; use MountNear", ErrUnsupportedRoot, r.Tag)
	case nil:
		return nil, fmt.Errorf("%w: nil root", ErrUnsupportedRoot)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedRoot, root)
	}
}

// MountNear mounts in the root el belongs to.
func MountNear(el *Element) (*StyleElement, error) {
	if el == nil {
		return nil, fmt.Errorf("%w: nil element", ErrUnsupportedRoot)
	}
	return Mount(el.Root())
}

// MustMount is like Mount but panics on error. Mount failures are setup
// mistakes, not runtime conditions.
func MustMount(root Node) *StyleElement {
	s, err := Mount(root)
	if err != nil {
		panic(err)
	}
	return s
}

func mountInHead(d *Document) *StyleElement {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, c := range d.Head.Children {
		if c.Tag == "style" {
			if _, ok := c.Attrs[MarkerAttr]; ok {
				log.Debug(log.CatMount, "Reusing existing style element")
				return &StyleElement{el: c}
			}
		}
	}

	el := d.Head.Append(NewElement("style", map[string]string{MarkerAttr: ""}))
	log.Debug(log.CatMount, "Mounted style element in head")
	return &StyleElement{el: el}
}
