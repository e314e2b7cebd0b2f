// Package bookmarks defines the bookmark tree data model. Every node
// wraps a markup element (etree.Element) which is the single source of
// truth: node identity comes from the element tag, attributes hold the
// display name and URL, and directory children are derived on demand
// from child elements rather than cached.
package bookmarks
