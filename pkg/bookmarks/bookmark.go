package bookmarks

import "github.com/beevik/etree"

// Bookmark is a leaf node carrying a URL in addition to its display name
type Bookmark struct {
	node
}

// NewBookmark creates a detached bookmark node. An empty id is derived
// from the display name.
func NewBookmark(id, name, url string) *Bookmark {
	el := etree.NewElement(nodeID(id, name))
	el.CreateAttr(AttrType, string(TypeBookmark))
	el.CreateAttr(AttrName, name)
	el.CreateAttr(AttrURL, url)
	return &Bookmark{node{el: el}}
}

// Type returns TypeBookmark
func (b *Bookmark) Type() NodeType {
	return TypeBookmark
}

// URL returns the bookmark URL stored on the element
func (b *Bookmark) URL() string {
	return b.el.SelectAttrValue(AttrURL, "")
}

// SetURL writes the URL through to the element
func (b *Bookmark) SetURL(url string) {
	b.el.CreateAttr(AttrURL, url)
}

// TreePath returns the path from the root to this bookmark
func (b *Bookmark) TreePath() []Node {
	return treePath(b)
}
