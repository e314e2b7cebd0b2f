// Package manager provides the bookmark manager service: it owns the
// tree root, applies mutations to the markup tree, and fans changes
// out to registered listeners. Consumers receive a Manager instance
// explicitly; there is no global registry.
package manager

import (
	"reflect"
	"strings"
	"sync"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/logging"
)

// Manager owns the bookmark tree and the listener registry
type Manager struct {
	root   *bookmarks.Directory
	logger zerolog.Logger

	// mu guards listener list replacement and the seeding flag. The
	// list itself is copy-on-write: notify works on a snapshot, so
	// listeners may register or remove themselves during fan-out.
	mu        sync.Mutex
	listeners []Listener
	seed      bool
	seeded    bool
}

// Option configures a Manager
type Option func(*Manager)

// WithSeeding enables one-time fixture seeding when the first listener
// registers on an empty tree. A demo convenience, off by default.
func WithSeeding() Option {
	return func(m *Manager) {
		m.seed = true
	}
}

// New creates a Manager with an empty root directory
func New(opts ...Option) *Manager {
	m := &Manager{
		root:   bookmarks.NewRoot(),
		logger: logging.GetLogger("manager"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the root directory
func (m *Manager) Root() *bookmarks.Directory {
	return m.root
}

// AddListener registers a listener. The first registration seeds
// fixture bookmarks if seeding is enabled and the tree is empty;
// later registrations never reseed.
func (m *Manager) AddListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Listener, len(m.listeners), len(m.listeners)+1)
	copy(next, m.listeners)
	m.listeners = append(next, l)

	if m.seed && !m.seeded {
		m.seeded = true
		if len(m.root.Element().ChildElements()) == 0 {
			m.seedFixtures()
		}
	}
}

// RemoveListener unregisters a listener. Listeners are matched by
// identity, so register pointer types; a listener whose dynamic type
// is not comparable cannot be matched and is left registered. Unknown
// listeners are ignored.
func (m *Manager) RemoveListener(l Listener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Listener, 0, len(m.listeners))
	for _, existing := range m.listeners {
		if existing != l {
			next = append(next, existing)
		}
	}
	m.listeners = next
}

// snapshot returns the current listener list for iteration
func (m *Manager) snapshot() []Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listeners
}

// AddNode attaches node under parent, then notifies ParentChanged
// followed by ItemAdded.
func (m *Manager) AddNode(parent *bookmarks.Directory, node bookmarks.Node) {
	parent.AddChild(node)
	m.logger.Debug().
		Str("parent", parent.ID()).
		Str("node", node.ID()).
		Str("type", string(node.Type())).
		Msg("node added")

	for _, l := range m.snapshot() {
		l.ParentChanged(parent)
		l.ItemAdded(node)
	}
}

// RemoveNode detaches node from parent, then notifies ParentChanged
// followed by ItemRemoved. Removing a node that is not a child leaves
// the markup tree untouched but still notifies.
func (m *Manager) RemoveNode(parent *bookmarks.Directory, node bookmarks.Node) {
	parent.RemoveChild(node)
	m.logger.Debug().
		Str("parent", parent.ID()).
		Str("node", node.ID()).
		Msg("node removed")

	for _, l := range m.snapshot() {
		l.ParentChanged(parent)
		l.ItemRemoved(node)
	}
}

// UpdateNode notifies ItemUpdated. The node's attribute setters have
// already written through to the markup tree, so there is nothing to
// mutate here. Membership in the tree is not checked; the caller is
// trusted.
func (m *Manager) UpdateNode(node bookmarks.Node) {
	m.logger.Debug().Str("node", node.ID()).Msg("node updated")

	for _, l := range m.snapshot() {
		l.ItemUpdated(node)
	}
}

// State returns a deep clone of the root element, suitable for
// serialization
func (m *Manager) State() *etree.Element {
	return m.root.Element().Copy()
}

// LoadState merges the children of an incoming root element into the
// existing root
func (m *Manager) LoadState(root *etree.Element) {
	for _, el := range root.ChildElements() {
		m.root.Element().AddChild(el.Copy())
	}
	m.logger.Debug().
		Int("children", len(m.root.Element().ChildElements())).
		Msg("state loaded")
}

// Resolve walks a slash-separated id path from the root and returns
// the node it names. An empty path resolves to the root.
func (m *Manager) Resolve(path string) (bookmarks.Node, error) {
	var cur bookmarks.Node = m.root
	for _, seg := range splitPath(path) {
		dir, ok := cur.(*bookmarks.Directory)
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"%q is a bookmark, not a directory", cur.ID())
		}
		child, err := dir.Child(seg)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}

// ResolveDir resolves a path that must name a directory
func (m *Manager) ResolveDir(path string) (*bookmarks.Directory, error) {
	n, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}
	dir, ok := n.(*bookmarks.Directory)
	if !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "%q is not a directory", path)
	}
	return dir, nil
}

func splitPath(path string) []string {
	var segs []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

// seedFixtures populates the demo bookmark set. Called with mu held,
// before any listener can observe the tree, so no notifications fire.
func (m *Manager) seedFixtures() {
	reading := bookmarks.NewDirectory("reading", "Reading List")
	m.root.AddChild(reading)
	reading.AddChild(bookmarks.NewBookmark("go-blog", "The Go Blog", "https://go.dev/blog"))
	m.root.AddChild(bookmarks.NewBookmark("go-dev", "Go", "https://go.dev"))

	m.logger.Debug().Msg("seeded fixture bookmarks")
}
