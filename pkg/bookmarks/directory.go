package bookmarks

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/marks/pkg/errors"
)

// RootID is the element tag of the tree root
const RootID = "bookmarks"

// Directory is a composite node whose children are derived from the
// child elements of its backing element
type Directory struct {
	node
}

// NewDirectory creates a detached directory node. An empty id is
// derived from the display name.
func NewDirectory(id, name string) *Directory {
	el := etree.NewElement(nodeID(id, name))
	el.CreateAttr(AttrType, string(TypeDirectory))
	el.CreateAttr(AttrName, name)
	return &Directory{node{el: el}}
}

// NewRoot creates an empty root directory
func NewRoot() *Directory {
	return NewDirectory(RootID, "Bookmarks")
}

// Type returns TypeDirectory
func (d *Directory) Type() NodeType {
	return TypeDirectory
}

// TreePath returns the path from the root to this directory
func (d *Directory) TreePath() []Node {
	return treePath(d)
}

// Children constructs child nodes from the underlying child elements,
// dispatching on the stored type attribute. Nodes are rebuilt on every
// call; the element tree is the only persistent state.
func (d *Directory) Children() ([]Node, error) {
	els := d.el.ChildElements()
	children := make([]Node, 0, len(els))
	for _, el := range els {
		child, err := fromElement(el, d)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

// Child returns the child node with the given id
func (d *Directory) Child(id string) (Node, error) {
	for _, el := range d.el.ChildElements() {
		if el.Tag == id {
			return fromElement(el, d)
		}
	}
	return nil, errors.Newf(errors.ErrNodeNotFound, "no child %q in directory %q", id, d.ID())
}

// HasChild reports whether a child element with the given id exists
func (d *Directory) HasChild(id string) bool {
	for _, el := range d.el.ChildElements() {
		if el.Tag == id {
			return true
		}
	}
	return false
}

// AddChild attaches the node's element under this directory and
// rebinds its parent pointer
func (d *Directory) AddChild(child Node) {
	d.el.AddChild(child.Element())
	if s, ok := child.(parentSetter); ok {
		s.setParent(d)
	}
}

// RemoveChild detaches the node's element from this directory.
// Removing a node that is not a child is a no-op on the markup tree.
func (d *Directory) RemoveChild(child Node) {
	removed := d.el.RemoveChild(child.Element())
	if removed == nil {
		return
	}
	if s, ok := child.(parentSetter); ok {
		s.setParent(nil)
	}
}

// fromElement wraps an element in the node kind named by its type
// attribute. An unrecognized type is a fatal error: the tree cannot be
// reconstructed and traversal stops.
func fromElement(el *etree.Element, parent *Directory) (Node, error) {
	switch NodeType(el.SelectAttrValue(AttrType, "")) {
	case TypeDirectory:
		return &Directory{node{el: el, parent: parent}}, nil
	case TypeBookmark:
		return &Bookmark{node{el: el, parent: parent}}, nil
	default:
		return nil, errors.Newf(errors.ErrNodeTypeUnknown,
			"element %q has unrecognized type %q", el.Tag, el.SelectAttrValue(AttrType, "")).
			WithDetail("id", el.Tag)
	}
}

// FromElement wraps an existing element as a parentless node. The
// element's type attribute selects the node kind.
func FromElement(el *etree.Element) (Node, error) {
	return fromElement(el, nil)
}
