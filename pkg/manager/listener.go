package manager

import "github.com/arthur-debert/marks/pkg/bookmarks"

// Listener observes tree mutations. Notification is synchronous, on
// the mutating goroutine: ParentChanged fires before ItemAdded and
// ItemRemoved.
type Listener interface {
	// ParentChanged fires when a directory's children changed
	ParentChanged(parent *bookmarks.Directory)

	// ItemAdded fires after a node was attached
	ItemAdded(node bookmarks.Node)

	// ItemRemoved fires after a node was detached
	ItemRemoved(node bookmarks.Node)

	// ItemUpdated fires after a node's attributes changed
	ItemUpdated(node bookmarks.Node)
}
