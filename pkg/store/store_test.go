package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/marks/pkg/bookmarks"
	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/manager"
	"github.com/arthur-debert/marks/pkg/store"
)

func tempStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "bookmarks.xml"))
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	m := manager.New()
	work := bookmarks.NewDirectory("work", "Work")
	m.AddNode(m.Root(), work)
	m.AddNode(work, bookmarks.NewBookmark("ci", "CI", "https://ci.example.com"))
	m.AddNode(m.Root(), bookmarks.NewBookmark("news", "News", "https://news.example.com"))

	require.NoError(t, s.Save(m))

	restored := manager.New()
	require.NoError(t, s.Load(restored))

	children, err := restored.Root().Children()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, "work", children[0].ID())
	assert.Equal(t, "news", children[1].ID())

	ci, err := restored.Resolve("work/ci")
	require.NoError(t, err)
	bookmark, ok := ci.(*bookmarks.Bookmark)
	require.True(t, ok)
	assert.Equal(t, "CI", bookmark.DisplayName())
	assert.Equal(t, "https://ci.example.com", bookmark.URL())
}

func TestRoundTripWithDigitLeadingName(t *testing.T) {
	s := tempStore(t)

	m := manager.New()
	m.AddNode(m.Root(), bookmarks.NewBookmark("", "2FA Guide", "https://2fa.example.com"))

	require.NoError(t, s.Save(m))

	restored := manager.New()
	require.NoError(t, s.Load(restored))

	children, err := restored.Root().Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "n-2fa-guide", children[0].ID())
	assert.Equal(t, "2FA Guide", children[0].DisplayName())
}

func TestLoadMissingFileIsEmptyTree(t *testing.T) {
	s := tempStore(t)

	m := manager.New()
	require.NoError(t, s.Load(m))

	children, err := m.Root().Children()
	require.NoError(t, err)
	assert.Empty(t, children)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.xml")
	require.NoError(t, os.WriteFile(path, []byte("<bookmarks"), 0644))

	err := store.New(path).Load(manager.New())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreParse))
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "bookmarks.xml")
	s := store.New(path)

	require.NoError(t, s.Save(manager.New()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveOverwritesAtomically(t *testing.T) {
	s := tempStore(t)

	first := manager.New()
	first.AddNode(first.Root(), bookmarks.NewBookmark("old", "Old", "https://old.example.com"))
	require.NoError(t, s.Save(first))

	second := manager.New()
	second.AddNode(second.Root(), bookmarks.NewBookmark("new", "New", "https://new.example.com"))
	require.NoError(t, s.Save(second))

	restored := manager.New()
	require.NoError(t, s.Load(restored))

	children, err := restored.Root().Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "new", children[0].ID())

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSavedDocumentShape(t *testing.T) {
	s := tempStore(t)

	m := manager.New()
	m.AddNode(m.Root(), bookmarks.NewBookmark("go-blog", "The Go Blog", "https://go.dev/blog"))
	require.NoError(t, s.Save(m))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "<bookmarks")
	assert.Contains(t, content, `type="bookmark"`)
	assert.Contains(t, content, `name="The Go Blog"`)
	assert.Contains(t, content, `url="https://go.dev/blog"`)
}
