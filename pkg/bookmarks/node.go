package bookmarks

import (
	"regexp"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"github.com/arthur-debert/marks/pkg/errors"
)

// NodeType discriminates node kinds. It is stored as the "type"
// attribute on the backing element and drives deserialization dispatch.
type NodeType string

const (
	// TypeDirectory marks a composite node containing other nodes
	TypeDirectory NodeType = "directory"

	// TypeBookmark marks a leaf node carrying a URL
	TypeBookmark NodeType = "bookmark"
)

// Attribute names used on backing elements
const (
	AttrType = "type"
	AttrName = "name"
	AttrURL  = "url"
)

// Node is a bookmark tree node backed by a markup element
type Node interface {
	// ID returns the stable identifier, derived from the element tag
	ID() string

	// Type returns the node type discriminator
	Type() NodeType

	// DisplayName returns the display name stored on the element
	DisplayName() string

	// SetDisplayName writes the display name through to the element
	SetDisplayName(name string)

	// Parent returns the containing directory, or nil for the root
	Parent() *Directory

	// Element returns the backing markup element
	Element() *etree.Element

	// TreePath returns the ancestor chain from the root to this node,
	// this node included
	TreePath() []Node
}

// node holds the state shared by all node kinds
type node struct {
	el     *etree.Element
	parent *Directory
}

func (n *node) ID() string {
	return n.el.Tag
}

func (n *node) DisplayName() string {
	return n.el.SelectAttrValue(AttrName, "")
}

func (n *node) SetDisplayName(name string) {
	n.el.CreateAttr(AttrName, name)
}

func (n *node) Parent() *Directory {
	return n.parent
}

func (n *node) Element() *etree.Element {
	return n.el
}

func (n *node) setParent(p *Directory) {
	n.parent = p
}

// parentSetter lets directories rebind the parent pointer when a node
// is attached or detached
type parentSetter interface {
	setParent(*Directory)
}

// treePath walks parent links accumulating ancestors until the root,
// then reverses so the result is ordered root-first.
func treePath(n Node) []Node {
	var path []Node
	for cur := n; cur != nil; {
		path = append(path, cur)
		parent := cur.Parent()
		if parent == nil {
			break
		}
		cur = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// idPattern is the subset of XML element names node ids are drawn
// from: a letter or underscore, then letters, digits, dots, hyphens
// and underscores.
var idPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*$`)

// ValidateID checks that id can serve as an element tag. Ids are used
// verbatim as tags, so anything outside idPattern would produce a
// document the store cannot read back.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return errors.Newf(errors.ErrInvalidInput, "%q is not a valid node id", id)
	}
	return nil
}

// nodeID returns id unchanged when given, otherwise derives a stable
// identifier from the display name. Slugs are almost valid element
// tags already; digit-leading ones get an "n-" prefix since XML names
// cannot start with a digit.
func nodeID(id, name string) string {
	if id != "" {
		return id
	}
	s := slug.Make(name)
	if s == "" {
		return "untitled"
	}
	if !idPattern.MatchString(s) {
		s = "n-" + s
	}
	return s
}
